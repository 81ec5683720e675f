// Package market models the instrument universe: which tickers an instrument
// trades under and which market role each ticker plays.
package market

import "strings"

const (
	// MainQualifier suffixes the main-market listing of a dual-listed instrument.
	MainQualifier = "_M"
	// AltQualifier suffixes the alternative-market listing of a dual-listed instrument.
	AltQualifier = "_A"
)

// Role names used when attributing sourced quantity to a market.
const (
	RoleMain        = "Main Market"
	RoleAlternative = "Alternative Market"
	RoleNormal      = "Normal"
)

// Instrument declares one tradable base instrument.
type Instrument struct {
	Base       string
	DualListed bool
	Spillover  []string
}

// Universe is the fixed set of instruments a session trades. Market selection
// is a table lookup here rather than ticker string comparisons scattered
// through the engine, so adding an instrument is a config change.
type Universe struct {
	instruments []Instrument
	index       map[string]Instrument
}

// NewUniverse builds a universe from the configured instrument list.
func NewUniverse(instruments []Instrument) *Universe {
	u := &Universe{index: make(map[string]Instrument, len(instruments))}
	for _, inst := range instruments {
		base := strings.TrimSpace(inst.Base)
		if base == "" {
			continue
		}
		inst.Base = base
		if _, seen := u.index[base]; seen {
			continue
		}
		u.instruments = append(u.instruments, inst)
		u.index[base] = inst
	}
	return u
}

// BaseTicker strips any market qualifier, returning the base instrument.
func BaseTicker(ticker string) string {
	if i := strings.Index(ticker, "_"); i >= 0 {
		return ticker[:i]
	}
	return ticker
}

// Qualified reports whether the ticker carries a market-qualifier suffix.
func Qualified(ticker string) bool {
	return strings.Contains(ticker, "_")
}

// Role maps a ticker to the market role it trades under.
func Role(ticker string) string {
	switch {
	case strings.HasSuffix(ticker, MainQualifier):
		return RoleMain
	case strings.HasSuffix(ticker, AltQualifier):
		return RoleAlternative
	default:
		return RoleNormal
	}
}

// Known reports whether the base instrument belongs to the universe.
func (u *Universe) Known(base string) bool {
	_, ok := u.index[base]
	return ok
}

// Instruments returns the configured instruments in declaration order.
func (u *Universe) Instruments() []Instrument {
	out := make([]Instrument, len(u.instruments))
	copy(out, u.instruments)
	return out
}

// RelevantTickers selects the market set consulted for a tendered ticker.
// A qualified ticker pulls the Main/Alternative pair of every dual-listed
// instrument in the universe; a bare ticker pulls each instrument's single
// market plus any configured spillover instruments. The engine's base-ticker
// filter then discards orders belonging to other instruments.
func (u *Universe) RelevantTickers(tendered string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(ticker string) {
		if ticker == "" {
			return
		}
		if _, dup := seen[ticker]; dup {
			return
		}
		seen[ticker] = struct{}{}
		out = append(out, ticker)
	}

	if Qualified(tendered) {
		for _, inst := range u.instruments {
			if !inst.DualListed {
				continue
			}
			add(inst.Base + MainQualifier)
			add(inst.Base + AltQualifier)
		}
		return out
	}

	for _, inst := range u.instruments {
		add(inst.Base)
		for _, spill := range inst.Spillover {
			add(strings.TrimSpace(spill))
		}
	}
	return out
}
