// Package tender models institutional block-trade offers and the screening
// applied to the raw tender feed.
package tender

import (
	"strings"

	"tenderbot-go/internal/book"
)

// Action tags which side of a tender the institution is taking.
type Action string

const (
	// ActionBuy means the institution buys the tendered quantity from the desk.
	ActionBuy Action = "BUY"
	// ActionSell means the institution sells the tendered quantity to the desk.
	ActionSell Action = "SELL"
)

// DefaultCaptionMarker identifies institutional tenders in the raw feed;
// auction entries carry different captions and are screened out.
const DefaultCaptionMarker = "An institution would like to"

// Valid reports whether the action is one of the two known directions.
func (a Action) Valid() bool {
	return a == ActionBuy || a == ActionSell
}

// HedgeSide returns the order-book side the desk must transact on to offset
// the position taken on from the tender. A BUY tender leaves the desk short,
// so the hedge consumes asks; a SELL tender leaves it long, so the hedge
// consumes bids. This mapping is a deliberate configuration choice pinned by
// tests (see DESIGN.md), not something to re-derive from the action verb.
func (a Action) HedgeSide() book.Side {
	if a == ActionSell {
		return book.Bids
	}
	return book.Asks
}

// Offer is one institutional tender, valid until the expiry tick.
type Offer struct {
	Caption  string  `json:"caption"`
	Ticker   string  `json:"ticker"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Action   Action  `json:"action"`
	Expires  int     `json:"expires"`
}

// Expired reports whether the offer is void at the given tick.
func (o Offer) Expired(tick int) bool {
	return o.Expires < tick
}

// Filter keeps offers whose caption contains the institutional marker,
// preserving feed order (most recent first).
func Filter(offers []Offer, marker string) []Offer {
	if marker == "" {
		marker = DefaultCaptionMarker
	}
	out := make([]Offer, 0, len(offers))
	for _, offer := range offers {
		if strings.Contains(offer.Caption, marker) {
			out = append(out, offer)
		}
	}
	return out
}
