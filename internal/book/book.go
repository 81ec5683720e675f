// Package book standardizes order-book payloads shared between the session client and the engine.
package book

// Side selects which half of a book an evaluation consumes.
type Side string

const (
	// Bids is the buy side of a book, best (highest) price first.
	Bids Side = "bids"
	// Asks is the sell side of a book, best (lowest) price first.
	Asks Side = "asks"
)

// Order models one resting order in a market's book. Orders are snapshot
// inputs; the engine never mutates them or submits fills against them.
type Order struct {
	Ticker         string  `json:"ticker"`
	Price          float64 `json:"price"`
	Quantity       float64 `json:"quantity"`
	QuantityFilled float64 `json:"quantity_filled"`
}

// Available reports the unexecuted remainder of the order, never negative.
func (o Order) Available() float64 {
	if rem := o.Quantity - o.QuantityFilled; rem > 0 {
		return rem
	}
	return 0
}

// Book holds both sides of one market's resting liquidity.
type Book struct {
	Bids []Order `json:"bids"`
	Asks []Order `json:"asks"`
}

// Side returns the requested half of the book.
func (b Book) Side(s Side) []Order {
	if s == Bids {
		return b.Bids
	}
	return b.Asks
}
