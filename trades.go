package ledgers

import (
	"fmt"
	"iter"
)

// Trade is a pairing slot for the two legs of a single trade execution.
// The export records one execution as two rows sharing a reference id: a
// positive-amount row for the asset bought and a negative-amount row for
// the asset sold. A leg is nil until its row has been seen.
type Trade struct {
	Buy  *Entry
	Sell *Entry
}

// Complete reports whether both legs are present.
func (t Trade) Complete() bool { return t.Buy != nil && t.Sell != nil }

// Trades pairs buy and sell legs by reference id.
//
// A later row with the same reference id and side replaces the earlier leg
// (last-write-wins per side). Such input is ambiguous: it either re-states
// a leg or collides two distinct trades under one id, so replacements are
// counted and surfaced rather than merged silently.
type Trades struct {
	order    []string // reference ids in first-seen order
	byRef    map[string]*Trade
	replaced int
}

// NewTrades creates an empty pairer.
func NewTrades() *Trades {
	return &Trades{byRef: make(map[string]*Trade)}
}

// Add files the entry as the buy or sell leg of its trade. It must only be
// called with entries of kind Buy or Sell.
func (t *Trades) Add(e Entry) {
	trade, ok := t.byRef[e.RefID]
	if !ok {
		trade = &Trade{}
		t.byRef[e.RefID] = trade
		t.order = append(t.order, e.RefID)
	}
	leg := &trade.Buy
	if e.Kind == Sell {
		leg = &trade.Sell
	}
	if *leg != nil {
		t.replaced++
	}
	entry := e
	*leg = &entry
}

// Replaced returns how many legs were overwritten by later rows with the
// same reference id and side.
func (t *Trades) Replaced() int { return t.replaced }

// Len returns the number of distinct reference ids seen.
func (t *Trades) Len() int { return len(t.order) }

// All iterates over trades in first-seen reference id order.
func (t *Trades) All() iter.Seq2[string, Trade] {
	return func(yield func(string, Trade) bool) {
		for _, refid := range t.order {
			if !yield(refid, *t.byRef[refid]) {
				return
			}
		}
	}
}

// Pair identifies a trading pair by the asset bought and the asset sold.
type Pair struct {
	Buy  string
	Sell string
}

func (p Pair) String() string { return fmt.Sprintf("%s for %s", p.Buy, p.Sell) }

// TradeTotal accumulates both sides of a trading pair.
type TradeTotal struct {
	Buys  AmountWithFee
	Sells AmountWithFee
}

// TradeTotals accumulates per-pair totals across all paired trades.
// Iteration follows first-seen pair order, like Totals.
type TradeTotals struct {
	order []Pair
	pairs map[Pair]TradeTotal
}

// NewTradeTotals creates an empty aggregator.
func NewTradeTotals() *TradeTotals {
	return &TradeTotals{pairs: make(map[Pair]TradeTotal)}
}

// Add folds one trade into its pair's totals. Both legs must be present:
// a one-legged trade returns ErrIncompleteTrade and contributes nothing.
func (t *TradeTotals) Add(trade Trade) error {
	if !trade.Complete() {
		return ErrIncompleteTrade
	}
	pair := Pair{Buy: trade.Buy.Asset, Sell: trade.Sell.Asset}
	total, ok := t.pairs[pair]
	if !ok {
		t.order = append(t.order, pair)
	}
	// Entry amounts are stored as absolute values, so the pair totals
	// accumulate magnitudes on both sides.
	total.Buys = total.Buys.Add(trade.Buy.Amount)
	total.Sells = total.Sells.Add(trade.Sell.Amount)
	t.pairs[pair] = total
	return nil
}

// Fold adds every complete trade from the pairer and returns how many
// incomplete trades were skipped.
func (t *TradeTotals) Fold(trades *Trades) (skipped int) {
	for _, trade := range trades.All() {
		if err := t.Add(trade); err != nil {
			skipped++
		}
	}
	return skipped
}

// Len returns the number of distinct pairs accumulated.
func (t *TradeTotals) Len() int { return len(t.order) }

// All iterates over pair totals in first-seen order.
func (t *TradeTotals) All() iter.Seq2[Pair, TradeTotal] {
	return func(yield func(Pair, TradeTotal) bool) {
		for _, pair := range t.order {
			if !yield(pair, t.pairs[pair]) {
				return
			}
		}
	}
}

// Total returns the accumulated totals for a pair, and whether that pair
// was ever seen.
func (t *TradeTotals) Total(pair Pair) (TradeTotal, bool) {
	total, ok := t.pairs[pair]
	return total, ok
}
