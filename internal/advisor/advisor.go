// Package advisor runs the evaluation loop: it paces polling of the session
// API, screens the tender feed, invokes the engine on one snapshot per cycle,
// and renders the advisory for the operator.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tenderbot-go/internal/book"
	"tenderbot-go/internal/engine"
	"tenderbot-go/internal/market"
	"tenderbot-go/internal/metrics"
	"tenderbot-go/internal/tender"
)

// ErrSessionClosed signals that the session clock has passed the trading window.
var ErrSessionClosed = errors.New("session closed")

// Session is the slice of the session API the advisor needs.
type Session interface {
	Tick(ctx context.Context) (int, error)
	Tenders(ctx context.Context) ([]tender.Offer, error)
	Books(ctx context.Context, tickers []string) (map[string]book.Book, error)
}

const (
	defaultPollInterval = time.Second
	defaultOpenTick     = 5
	defaultCloseTick    = 295
)

// Advisor owns one evaluation loop. The only state carried across cycles is
// the currently held accepted tender, tracked until its expiry tick passes.
type Advisor struct {
	session  Session
	engine   *engine.Engine
	universe *market.Universe
	log      zerolog.Logger
	out      io.Writer

	poll      time.Duration
	openTick  int
	closeTick int
	marker    string

	held *tender.Offer
}

// Option configures Advisor construction parameters.
type Option func(*Advisor)

// WithPollInterval overrides the default cycle cadence.
func WithPollInterval(d time.Duration) Option {
	return func(a *Advisor) {
		if d > 0 {
			a.poll = d
		}
	}
}

// WithTickWindow sets the open/close ticks between which evaluation runs.
func WithTickWindow(openTick, closeTick int) Option {
	return func(a *Advisor) {
		if closeTick > openTick {
			a.openTick = openTick
			a.closeTick = closeTick
		}
	}
}

// WithCaptionMarker overrides the substring used to screen institutional tenders.
func WithCaptionMarker(marker string) Option {
	return func(a *Advisor) {
		if marker != "" {
			a.marker = marker
		}
	}
}

// WithOutput redirects the rendered advisory (default stdout).
func WithOutput(w io.Writer) Option {
	return func(a *Advisor) {
		if w != nil {
			a.out = w
		}
	}
}

// New wires an advisor over a session client and an evaluation engine.
func New(sess Session, eng *engine.Engine, universe *market.Universe, log zerolog.Logger, opts ...Option) *Advisor {
	a := &Advisor{
		session:   sess,
		engine:    eng,
		universe:  universe,
		log:       log,
		out:       os.Stdout,
		poll:      defaultPollInterval,
		openTick:  defaultOpenTick,
		closeTick: defaultCloseTick,
		marker:    tender.DefaultCaptionMarker,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run cycles until the session closes or the context is canceled. Cycle
// failures are logged and the loop keeps going; only cancellation and session
// close stop it.
func (a *Advisor) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.poll)
	defer ticker.Stop()

	for {
		if err := a.Cycle(ctx); err != nil {
			if errors.Is(err, ErrSessionClosed) {
				a.log.Info().Msg("session closed, advisor stopping")
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.log.Warn().Err(err).Msg("evaluation cycle failed")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Cycle performs one evaluation pass over a fresh snapshot.
func (a *Advisor) Cycle(ctx context.Context) error {
	tick, err := a.session.Tick(ctx)
	if err != nil {
		return fmt.Errorf("fetch tick: %w", err)
	}
	if tick >= a.closeTick {
		return ErrSessionClosed
	}
	if tick <= a.openTick {
		a.log.Debug().Int("tick", tick).Msg("waiting for the session window to open")
		return nil
	}

	if a.held != nil && a.held.Expired(tick) {
		a.log.Info().Str("ticker", a.held.Ticker).Int("expires", a.held.Expires).Msg("accepted tender expired")
		a.held = nil
	}

	offer, ok, err := a.currentOffer(ctx, tick)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	books, err := a.session.Books(ctx, a.universe.RelevantTickers(offer.Ticker))
	if err != nil {
		return fmt.Errorf("fetch books: %w", err)
	}

	decision, err := a.engine.Evaluate(books, offer)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownInstrument) {
			a.log.Warn().Str("ticker", offer.Ticker).Msg("tender for unknown instrument skipped")
			return nil
		}
		return fmt.Errorf("evaluate tender: %w", err)
	}
	metrics.EvaluationsTotal.WithLabelValues(string(decision.Outcome)).Inc()

	id := uuid.NewString()
	a.render(id, tick, offer, decision)
	a.log.Info().
		Str("advisory", id).
		Int("tick", tick).
		Str("ticker", offer.Ticker).
		Str("action", string(offer.Action)).
		Str("decision", string(decision.Outcome)).
		Float64("sourced", decision.Sourcing.Quantity).
		Msg("tender evaluated")

	if decision.Outcome == engine.Accept && a.held == nil {
		held := offer
		a.held = &held
	}
	return nil
}

func (a *Advisor) currentOffer(ctx context.Context, tick int) (tender.Offer, bool, error) {
	if a.held != nil {
		return *a.held, true, nil
	}

	offers, err := a.session.Tenders(ctx)
	if err != nil {
		return tender.Offer{}, false, fmt.Errorf("fetch tenders: %w", err)
	}
	offers = tender.Filter(offers, a.marker)
	if len(offers) == 0 {
		a.log.Debug().Int("tick", tick).Msg("no institutional tenders this cycle")
		return tender.Offer{}, false, nil
	}

	// Only the most recent offer is evaluated per cycle.
	offer := offers[0]
	if offer.Expired(tick) {
		a.log.Debug().Str("ticker", offer.Ticker).Msg("tender already expired")
		return tender.Offer{}, false, nil
	}
	return offer, true, nil
}
