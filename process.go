package ledgers

import "iter"

// Report is the outcome of a single processing pass over a ledger export.
type Report struct {
	Totals      *Totals
	TradeTotals *TradeTotals

	// Unprocessed counts records that failed classification. They are
	// dropped from every aggregate.
	Unprocessed int
	// ReplacedLegs counts trade legs overwritten by a later row with the
	// same reference id and side.
	ReplacedLegs int
	// IncompleteTrades counts reference ids that never received both legs.
	IncompleteTrades int
}

// Process consumes the record source once, front to back, classifying each
// record and folding it into the per-kind totals and, for buy and sell
// legs, into the trade pairer. After the last record, completed trades are
// folded into per-pair totals.
//
// Classification failures never abort the run: the record is counted as
// unprocessed and processing continues. An error from the source itself is
// fatal and returned before any aggregate is produced.
func Process(records iter.Seq2[Record, error]) (*Report, error) {
	totals := NewTotals()
	trades := NewTrades()
	unprocessed := 0

	for rec, err := range records {
		if err != nil {
			return nil, err
		}
		entry, err := Classify(rec)
		if err != nil {
			unprocessed++
			continue
		}
		totals.Add(entry)
		if entry.Kind == Buy || entry.Kind == Sell {
			trades.Add(entry)
		}
	}

	tradeTotals := NewTradeTotals()
	skipped := tradeTotals.Fold(trades)

	return &Report{
		Totals:           totals,
		TradeTotals:      tradeTotals,
		Unprocessed:      unprocessed,
		ReplacedLegs:     trades.Replaced(),
		IncompleteTrades: skipped,
	}, nil
}
