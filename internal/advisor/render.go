package advisor

import (
	"fmt"
	"sort"

	"tenderbot-go/internal/engine"
	"tenderbot-go/internal/market"
	"tenderbot-go/internal/tender"
)

// render writes the operator-facing advisory block. The WAC sentinel is never
// formatted as a price; an unpriced result renders as "n/a".
func (a *Advisor) render(id string, tick int, offer tender.Offer, decision engine.Decision) {
	fmt.Fprintln(a.out, "------------- Tender Details ----------------")
	fmt.Fprintf(a.out, "Advisory %s | Tick %d\n", id, tick)
	fmt.Fprintf(a.out, "%s %s %.0f @ %.2f (expires tick %d)\n",
		offer.Ticker, offer.Action, offer.Quantity, offer.Price, offer.Expires)
	fmt.Fprintln(a.out, "---------------- Decision -------------------")
	fmt.Fprintf(a.out, "Decision: %s\n", decision.Outcome)
	if decision.Reason != "" {
		fmt.Fprintf(a.out, "Reason: %s\n", decision.Reason)
	}

	wac := "n/a"
	if decision.Sourcing.Priced() {
		wac = fmt.Sprintf("%.2f", decision.Sourcing.WAC)
	}
	fmt.Fprintf(a.out, "Sourced: %.0f  WAC: %s\n", decision.Sourcing.Quantity, wac)

	roles := make([]string, 0, len(decision.Sourcing.Breakdown))
	for role := range decision.Sourcing.Breakdown {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	fmt.Fprint(a.out, "Market Quantities:")
	for _, role := range roles {
		fmt.Fprintf(a.out, " %s=%.0f", role, decision.Sourcing.Breakdown[role])
	}
	fmt.Fprintln(a.out)

	switch decision.Outcome {
	case engine.Accept:
		fmt.Fprintf(a.out, "Market to Reverse Trade: %s\n", market.Role(offer.Ticker))
		fmt.Fprintf(a.out, "Potential Gain: %.2f\n", decision.PotentialGain)
	case engine.Neutral:
		fmt.Fprintf(a.out, "Potential Gain (partial): %.2f\n", decision.PotentialGain)
	case engine.Decline:
		if decision.PotentialLossPct > 0 {
			fmt.Fprintf(a.out, "Potential Loss: -%.2f%%\n", decision.PotentialLossPct)
		}
	}
	fmt.Fprintln(a.out)
}
