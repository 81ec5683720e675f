package tender

import (
	"testing"

	"tenderbot-go/internal/book"
)

func TestHedgeSideMapping(t *testing.T) {
	// Pinned mapping: BUY tenders hedge on asks, SELL tenders hedge on bids.
	if got := ActionBuy.HedgeSide(); got != book.Asks {
		t.Fatalf("expected BUY to hedge on asks, got %s", got)
	}
	if got := ActionSell.HedgeSide(); got != book.Bids {
		t.Fatalf("expected SELL to hedge on bids, got %s", got)
	}
}

func TestActionValid(t *testing.T) {
	if !ActionBuy.Valid() || !ActionSell.Valid() {
		t.Fatalf("expected BUY and SELL to be valid")
	}
	if Action("HOLD").Valid() {
		t.Fatalf("expected unknown action to be invalid")
	}
}

func TestFilterKeepsInstitutionalOffers(t *testing.T) {
	offers := []Offer{
		{Caption: "An institution would like to sell you 10,000 shares", Ticker: "CRZY_M"},
		{Caption: "Auction for 5,000 shares closing soon", Ticker: "CRZY_M"},
		{Caption: "An institution would like to buy 2,000 shares", Ticker: "TAME"},
	}
	got := Filter(offers, DefaultCaptionMarker)
	if len(got) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(got))
	}
	if got[0].Ticker != "CRZY_M" || got[1].Ticker != "TAME" {
		t.Fatalf("unexpected order after filter: %+v", got)
	}
}

func TestFilterDefaultsMarker(t *testing.T) {
	offers := []Offer{{Caption: "An institution would like to buy"}}
	if got := Filter(offers, ""); len(got) != 1 {
		t.Fatalf("expected default marker to apply, got %d offers", len(got))
	}
}

func TestExpired(t *testing.T) {
	offer := Offer{Expires: 120}
	if offer.Expired(120) {
		t.Fatalf("offer should still be live at its expiry tick")
	}
	if !offer.Expired(121) {
		t.Fatalf("offer should be expired past its expiry tick")
	}
}
