package ledgers

import (
	"encoding/csv"
	"fmt"
	"io"
)

// tradeColumns is the fixed export header: the cross product of
// {buy, sell} and {asset, amount, fee}.
var tradeColumns = []string{"buy_asset", "buy_amount", "buy_fee", "sell_asset", "sell_amount", "sell_fee"}

// EncodeTradeTotals writes the trade totals to w as CSV: the six-column
// header exactly once (even for zero rows), then one row per trading pair
// in first-seen order. Fields are comma-delimited, lines end with a single
// newline, and fields containing delimiters are double-quoted.
func EncodeTradeTotals(w io.Writer, totals *TradeTotals) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(tradeColumns); err != nil {
		return fmt.Errorf("writing trade totals header: %w", err)
	}
	for pair, total := range totals.All() {
		row := []string{
			pair.Buy,
			total.Buys.Amount().String(),
			total.Buys.Fee().String(),
			pair.Sell,
			total.Sells.Amount().String(),
			total.Sells.Fee().String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing trade totals for %s: %w", pair, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
