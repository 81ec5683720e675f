package market

import (
	"reflect"
	"testing"
)

func testUniverse() *Universe {
	return NewUniverse([]Instrument{
		{Base: "CRZY", DualListed: true},
		{Base: "TAME", DualListed: true, Spillover: []string{"BBSN"}},
	})
}

func TestBaseTicker(t *testing.T) {
	cases := map[string]string{
		"CRZY_M": "CRZY",
		"CRZY_A": "CRZY",
		"TAME":   "TAME",
		"BBSN":   "BBSN",
	}
	for ticker, expected := range cases {
		if got := BaseTicker(ticker); got != expected {
			t.Fatalf("BaseTicker(%s): expected %s, got %s", ticker, expected, got)
		}
	}
}

func TestRole(t *testing.T) {
	cases := map[string]string{
		"CRZY_M": RoleMain,
		"TAME_A": RoleAlternative,
		"BBSN":   RoleNormal,
	}
	for ticker, expected := range cases {
		if got := Role(ticker); got != expected {
			t.Fatalf("Role(%s): expected %s, got %s", ticker, expected, got)
		}
	}
}

func TestRelevantTickersQualified(t *testing.T) {
	u := testUniverse()
	got := u.RelevantTickers("CRZY_M")
	expected := []string{"CRZY_M", "CRZY_A", "TAME_M", "TAME_A"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestRelevantTickersBare(t *testing.T) {
	u := testUniverse()
	got := u.RelevantTickers("TAME")
	expected := []string{"CRZY", "TAME", "BBSN"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestKnown(t *testing.T) {
	u := testUniverse()
	if !u.Known("CRZY") {
		t.Fatalf("expected CRZY to be known")
	}
	if u.Known("WILD") {
		t.Fatalf("expected WILD to be unknown")
	}
}

func TestNewUniverseSkipsBlankAndDuplicate(t *testing.T) {
	u := NewUniverse([]Instrument{
		{Base: " CRZY "},
		{Base: ""},
		{Base: "CRZY"},
	})
	if len(u.Instruments()) != 1 {
		t.Fatalf("expected 1 instrument, got %d", len(u.Instruments()))
	}
	if !u.Known("CRZY") {
		t.Fatalf("expected trimmed CRZY to be known")
	}
}
