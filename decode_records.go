package ledgers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
)

// requiredColumns are the export columns the classifier reads. Kraken
// exports carry more (txid, time, aclass, balance); extra columns stay on
// the record and are ignored downstream.
var requiredColumns = []string{"type", "asset", "amount", "fee", "refid"}

// DecodeRecords returns a lazy, one-shot sequence of header-keyed records
// from a CSV ledger export. The first line is the header; every following
// line becomes one Record keyed by it.
//
// The sequence is not restartable. A missing required column or a read
// error yields that error once and ends the sequence; an empty input (no
// header at all) yields nothing.
func DecodeRecords(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		cr := csv.NewReader(r)

		header, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(nil, fmt.Errorf("reading ledger export header: %w", err))
			return
		}

		columns := make(map[string]int, len(header))
		for i, name := range header {
			columns[name] = i
		}
		for _, name := range requiredColumns {
			if _, ok := columns[name]; !ok {
				yield(nil, fmt.Errorf("ledger export is missing the %q column", name))
				return
			}
		}

		for {
			row, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("reading ledger export: %w", err))
				return
			}
			rec := make(Record, len(header))
			for i, name := range header {
				rec[name] = row[i]
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}
