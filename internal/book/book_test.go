package book

import "testing"

func TestAvailable(t *testing.T) {
	order := Order{Ticker: "CRZY_M", Price: 9.5, Quantity: 400, QuantityFilled: 150}
	if got := order.Available(); got != 250 {
		t.Fatalf("expected available 250, got %.2f", got)
	}
}

func TestAvailableNeverNegative(t *testing.T) {
	order := Order{Ticker: "CRZY_M", Price: 9.5, Quantity: 100, QuantityFilled: 130}
	if got := order.Available(); got != 0 {
		t.Fatalf("expected available clamped to 0, got %.2f", got)
	}
}

func TestSideSelection(t *testing.T) {
	b := Book{
		Bids: []Order{{Ticker: "CRZY", Price: 9.9}},
		Asks: []Order{{Ticker: "CRZY", Price: 10.1}},
	}
	if got := b.Side(Bids); len(got) != 1 || got[0].Price != 9.9 {
		t.Fatalf("unexpected bids: %+v", got)
	}
	if got := b.Side(Asks); len(got) != 1 || got[0].Price != 10.1 {
		t.Fatalf("unexpected asks: %+v", got)
	}
}
