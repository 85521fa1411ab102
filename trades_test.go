package ledgers

import (
	"errors"
	"slices"
	"testing"
)

func TestTrades_PairsLegsByRefID(t *testing.T) {
	trades := NewTrades()
	trades.Add(mustClassify(t, record("trade", "XXBT", "1", "0", "T42")))
	trades.Add(mustClassify(t, record("trade", "ZUSD", "-100", "0", "T42")))

	if trades.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", trades.Len())
	}
	for refid, trade := range trades.All() {
		if refid != "T42" {
			t.Errorf("refid = %q, want %q", refid, "T42")
		}
		if !trade.Complete() {
			t.Fatal("trade with both legs is not complete")
		}
		if trade.Buy.Asset != "XXBT" || trade.Sell.Asset != "ZUSD" {
			t.Errorf("legs = buy %q, sell %q, want buy XXBT, sell ZUSD", trade.Buy.Asset, trade.Sell.Asset)
		}
	}
}

func TestTrades_LastWriteWinsPerSide(t *testing.T) {
	trades := NewTrades()
	trades.Add(mustClassify(t, record("trade", "XXBT", "1", "0", "T1")))
	trades.Add(mustClassify(t, record("trade", "XETH", "2", "0", "T1")))

	if trades.Replaced() != 1 {
		t.Errorf("Replaced() = %d, want 1", trades.Replaced())
	}
	for _, trade := range trades.All() {
		if trade.Buy.Asset != "XETH" {
			t.Errorf("buy leg = %q, want the later leg XETH", trade.Buy.Asset)
		}
		if trade.Sell != nil {
			t.Error("sell leg is set but only buy legs were added")
		}
	}
}

func TestTradeTotals_Add(t *testing.T) {
	trade := Trade{
		Buy:  ptr(mustClassify(t, record("trade", "XXBT", "1", "0", "T42"))),
		Sell: ptr(mustClassify(t, record("trade", "ZUSD", "-100", "0", "T42"))),
	}

	totals := NewTradeTotals()
	if err := totals.Add(trade); err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}

	total, ok := totals.Total(Pair{Buy: "XXBT", Sell: "ZUSD"})
	if !ok {
		t.Fatal("pair (XXBT, ZUSD) is missing")
	}
	if want := A("1", "0"); !total.Buys.Equal(want) {
		t.Errorf("Buys = %v, want %v", total.Buys, want)
	}
	if want := A("100", "0"); !total.Sells.Equal(want) {
		t.Errorf("Sells = %v, want %v", total.Sells, want)
	}
}

func TestTradeTotals_AddIncomplete(t *testing.T) {
	totals := NewTradeTotals()
	oneLegged := Trade{Buy: ptr(mustClassify(t, record("trade", "XXBT", "1", "0", "T1")))}
	if err := totals.Add(oneLegged); !errors.Is(err, ErrIncompleteTrade) {
		t.Fatalf("Add() error = %v, want %v", err, ErrIncompleteTrade)
	}
	if totals.Len() != 0 {
		t.Errorf("incomplete trade contributed to totals: Len() = %d", totals.Len())
	}
}

func TestTradeTotals_Fold(t *testing.T) {
	trades := NewTrades()
	// Two complete trades on the same pair, one on another pair, and one
	// incomplete trade.
	trades.Add(mustClassify(t, record("trade", "XXBT", "1", "-0.002", "T1")))
	trades.Add(mustClassify(t, record("trade", "ZUSD", "-100", "-0.26", "T1")))
	trades.Add(mustClassify(t, record("trade", "XXBT", "0.5", "0", "T2")))
	trades.Add(mustClassify(t, record("trade", "ZUSD", "-50", "0", "T2")))
	trades.Add(mustClassify(t, record("trade", "XETH", "10", "0", "T3")))
	trades.Add(mustClassify(t, record("trade", "ZEUR", "-300", "0", "T3")))
	trades.Add(mustClassify(t, record("trade", "XXBT", "9", "0", "T4")))

	totals := NewTradeTotals()
	if skipped := totals.Fold(trades); skipped != 1 {
		t.Errorf("Fold() skipped = %d, want 1", skipped)
	}
	if totals.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", totals.Len())
	}

	var gotPairs []Pair
	for pair := range totals.All() {
		gotPairs = append(gotPairs, pair)
	}
	wantPairs := []Pair{{Buy: "XXBT", Sell: "ZUSD"}, {Buy: "XETH", Sell: "ZEUR"}}
	if !slices.Equal(gotPairs, wantPairs) {
		t.Errorf("All() pairs = %v, want %v", gotPairs, wantPairs)
	}

	total, _ := totals.Total(Pair{Buy: "XXBT", Sell: "ZUSD"})
	if want := A("1.5", "0.002"); !total.Buys.Equal(want) {
		t.Errorf("Buys = %v, want %v", total.Buys, want)
	}
	if want := A("150", "0.26"); !total.Sells.Equal(want) {
		t.Errorf("Sells = %v, want %v", total.Sells, want)
	}
}

func ptr(e Entry) *Entry { return &e }
