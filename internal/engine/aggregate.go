package engine

import (
	"math"
	"sort"
	"strings"

	"tenderbot-go/internal/book"
	"tenderbot-go/internal/market"
	"tenderbot-go/internal/tender"
)

// Aggregate sources the buffered tender quantity against the relevant order
// books, cheapest hedge liquidity first, and returns the sourced quantity,
// its weighted average cost, and a per-market-role breakdown.
//
// Markets missing from the books map contribute zero orders; that is a
// liquidity condition, not an error. A single linear pass over the sorted
// order list both consumes quantity and folds the incremental weighted mean.
func (e *Engine) Aggregate(books map[string]book.Book, offer tender.Offer) (Sourcing, error) {
	if err := e.validate(offer); err != nil {
		return Sourcing{}, err
	}

	side := offer.Action.HedgeSide()
	var orders []book.Order
	for _, ticker := range e.universe.RelevantTickers(offer.Ticker) {
		b, ok := books[ticker]
		if !ok {
			continue
		}
		orders = append(orders, b.Side(side)...)
	}

	// Drop spillover orders that belong to a different base instrument.
	base := market.BaseTicker(offer.Ticker)
	relevant := orders[:0]
	for _, order := range orders {
		if strings.Contains(order.Ticker, base) {
			relevant = append(relevant, order)
		}
	}

	// Execution priority: cheapest asks first when hedging by buying,
	// richest bids first when hedging by selling. Equal prices keep feed order.
	sort.SliceStable(relevant, func(i, j int) bool {
		if side == book.Asks {
			return relevant[i].Price < relevant[j].Price
		}
		return relevant[i].Price > relevant[j].Price
	})

	target := offer.Quantity * (1 + e.buffer)
	sourcing := Sourcing{
		WAC: math.Inf(1),
		Breakdown: map[string]float64{
			market.RoleMain:        0,
			market.RoleAlternative: 0,
			market.RoleNormal:      0,
		},
	}

	for _, order := range relevant {
		if sourcing.Quantity >= target {
			break
		}
		available := order.Available()
		if available <= 0 {
			continue
		}
		taken := math.Min(available, target-sourcing.Quantity)
		previous := sourcing.Quantity
		sourcing.Quantity += taken
		if previous == 0 {
			sourcing.WAC = order.Price
		} else {
			sourcing.WAC = (sourcing.WAC*previous + taken*order.Price) / sourcing.Quantity
		}
		sourcing.Breakdown[market.Role(order.Ticker)] += taken
	}

	return sourcing, nil
}
