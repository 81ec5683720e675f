// Package engine evaluates institutional tender offers against resting
// order-book liquidity: it sources the tendered quantity across the relevant
// markets at a volume-weighted average cost, then classifies the hedge as
// Accept, Neutral, or Decline.
package engine

import (
	"errors"
	"fmt"

	"tenderbot-go/internal/book"
	"tenderbot-go/internal/market"
	"tenderbot-go/internal/tender"
)

// ErrInvalidOffer flags a tender snapshot missing a required field. The cycle
// is abandoned, not retried.
var ErrInvalidOffer = errors.New("invalid tender offer")

// ErrUnknownInstrument flags a tender for an instrument outside the
// configured universe.
var ErrUnknownInstrument = errors.New("unknown instrument")

// Outcome is the three-way advisory classification for a tender.
type Outcome string

const (
	// Accept: the full quantity can be hedged at a favorable price.
	Accept Outcome = "Accept"
	// Neutral: the price is favorable but only part of the quantity can be hedged.
	Neutral Outcome = "Neutral"
	// Decline: the hedge price is unfavorable, or no liquidity exists at all.
	Decline Outcome = "Decline"
)

// Sourcing is the result of aggregating liquidity for one tender.
type Sourcing struct {
	// Quantity actually sourced, capped at the buffered tender quantity.
	Quantity float64
	// WAC is the volume-weighted average cost of the sourced quantity.
	// When Quantity is zero it holds +Inf; check Priced before formatting.
	WAC float64
	// Breakdown attributes sourced quantity to the market role it came from.
	Breakdown map[string]float64
}

// Priced reports whether WAC is meaningful.
func (s Sourcing) Priced() bool {
	return s.Quantity > 0
}

// Decision pairs the advisory outcome with its economics.
type Decision struct {
	Outcome  Outcome
	Sourcing Sourcing
	// PotentialGain is set for Accept and Neutral, computed on the sourced quantity.
	PotentialGain float64
	// PotentialLossPct is set when liquidity sufficed but the price did not.
	PotentialLossPct float64
	Reason           string
}

// Engine holds the instrument universe and evaluation knobs. It is stateless
// across evaluations; each call works on one snapshot.
type Engine struct {
	universe *market.Universe
	buffer   float64
}

// Option configures Engine construction parameters.
type Option func(*Engine)

// WithLiquidityBuffer over-sources a safety margin beyond the tendered
// quantity so execution slippage does not leave the hedge short.
func WithLiquidityBuffer(fraction float64) Option {
	return func(e *Engine) {
		if fraction >= 0 {
			e.buffer = fraction
		}
	}
}

// New constructs an engine over the given universe.
func New(universe *market.Universe, opts ...Option) *Engine {
	e := &Engine{universe: universe}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate aggregates liquidity for the offer and applies the decision policy.
func (e *Engine) Evaluate(books map[string]book.Book, offer tender.Offer) (Decision, error) {
	sourcing, err := e.Aggregate(books, offer)
	if err != nil {
		return Decision{}, err
	}
	return Decide(sourcing, offer), nil
}

func (e *Engine) validate(offer tender.Offer) error {
	if offer.Ticker == "" {
		return fmt.Errorf("%w: missing ticker", ErrInvalidOffer)
	}
	if offer.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %.2f", ErrInvalidOffer, offer.Quantity)
	}
	if offer.Price <= 0 {
		return fmt.Errorf("%w: price must be positive, got %.2f", ErrInvalidOffer, offer.Price)
	}
	if !offer.Action.Valid() {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidOffer, offer.Action)
	}
	if base := market.BaseTicker(offer.Ticker); !e.universe.Known(base) {
		return fmt.Errorf("%w: %s", ErrUnknownInstrument, base)
	}
	return nil
}
