// Package renderer renders aggregation results as markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ledgers"
	md "github.com/nao1215/markdown"
)

// ReportOptions holds configuration for rendering a totals report.
type ReportOptions struct {
	// Pretty also renders fiat totals in their currency display format.
	Pretty bool
}

// Report renders the full run report: warnings first, then one section per
// entry kind present and a final trade section. Sections and lines follow
// first-seen order, which the aggregates preserve.
func Report(r *ledgers.Report, opts ReportOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.Unprocessed > 0 {
		doc.PlainText(fmt.Sprintf("WARNING: %d unprocessed entries", r.Unprocessed))
	}
	if r.ReplacedLegs > 0 {
		doc.PlainText(fmt.Sprintf("WARNING: %d trade legs replaced by later rows with the same refid", r.ReplacedLegs))
	}
	if r.IncompleteTrades > 0 {
		doc.PlainText(fmt.Sprintf("WARNING: %d incomplete trades skipped", r.IncompleteTrades))
	}

	for kind := range r.Totals.Kinds() {
		doc.H2(fmt.Sprintf("Total %s", kind))
		var lines []string
		for asset, total := range r.Totals.Assets(kind) {
			lines = append(lines, totalLine(asset, total, opts.Pretty))
		}
		if len(lines) > 0 {
			doc.BulletList(lines...)
		}
	}

	doc.H2("Total trade")
	var lines []string
	for pair, total := range r.TradeTotals.All() {
		lines = append(lines, tradeLine(pair, total, opts.Pretty))
	}
	if len(lines) > 0 {
		doc.BulletList(lines...)
	}

	return doc.String()
}

// totalLine formats one asset total as "<asset>: <amount>, fees: <fee>".
func totalLine(asset string, total ledgers.AmountWithFee, pretty bool) string {
	return fmt.Sprintf("%s: %s", asset, amountString(asset, total, pretty))
}

// tradeLine formats one pair total as
// "<buy> for <sell>: <buy totals> for <sell totals>".
func tradeLine(pair ledgers.Pair, total ledgers.TradeTotal, pretty bool) string {
	return fmt.Sprintf("%s for %s: %s for %s",
		pair.Buy, pair.Sell,
		amountString(pair.Buy, total.Buys, pretty),
		amountString(pair.Sell, total.Sells, pretty))
}

func amountString(asset string, total ledgers.AmountWithFee, pretty bool) string {
	if !pretty {
		return total.String()
	}
	code, ok := fiatCurrency(asset)
	if !ok {
		return total.String()
	}
	return fmt.Sprintf("%s (%s), fees: %s", total.Amount(), fiatString(code, total.Amount()), total.Fee())
}
