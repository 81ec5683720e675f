package engine

import (
	"math"

	"tenderbot-go/internal/tender"
)

// Reasons attached to declined advisories.
const (
	reasonThinAndUnfavorable = "insufficient liquidity and unfavorable price"
	reasonUnfavorablePrice   = "sufficient liquidity but unfavorable price"
	reasonPartialFavorable   = "favorable price but only partial liquidity"
)

// Decide classifies an aggregation result against the tender's terms.
//
// A hedge is favorable when the weighted average cost beats the offer price
// on the hedging side: buying back below the price the institution pays, or
// selling out above the price the institution charges. Sufficiency compares
// the sourced quantity to the tendered quantity itself; the buffer only
// widens what Aggregate is allowed to source.
func Decide(sourcing Sourcing, offer tender.Offer) Decision {
	sufficient := sourcing.Quantity >= offer.Quantity

	favorable := false
	if sourcing.Priced() {
		if offer.Action == tender.ActionSell {
			favorable = sourcing.WAC > offer.Price
		} else {
			favorable = sourcing.WAC < offer.Price
		}
	}

	decision := Decision{Sourcing: sourcing}
	switch {
	case sufficient && favorable:
		decision.Outcome = Accept
		decision.PotentialGain = math.Abs(sourcing.WAC-offer.Price) * sourcing.Quantity
	case !sufficient && favorable:
		decision.Outcome = Neutral
		decision.Reason = reasonPartialFavorable
		decision.PotentialGain = math.Abs(sourcing.WAC-offer.Price) * sourcing.Quantity
	case !sufficient:
		decision.Outcome = Decline
		decision.Reason = reasonThinAndUnfavorable
	default:
		decision.Outcome = Decline
		decision.Reason = reasonUnfavorablePrice
		decision.PotentialLossPct = math.Abs(sourcing.WAC-offer.Price) / offer.Price * 100
	}
	return decision
}
