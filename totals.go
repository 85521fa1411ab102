package ledgers

import "iter"

// assetTotals accumulates per-asset amounts for one entry kind.
type assetTotals struct {
	order  []string // assets in first-seen order
	totals map[string]AmountWithFee
}

func (t *assetTotals) add(asset string, amount AmountWithFee) {
	if _, ok := t.totals[asset]; !ok {
		t.order = append(t.order, asset)
	}
	t.totals[asset] = t.totals[asset].Add(amount)
}

// Totals accumulates validated entries per kind and asset. It grows
// monotonically as entries are folded in and is read once at the end of the
// run. Iteration follows first-seen order: the order of report sections and
// lines is an observable part of the output contract, so keys are never
// sorted here.
type Totals struct {
	order []EntryKind
	kinds map[EntryKind]*assetTotals
}

// NewTotals creates an empty accumulator.
func NewTotals() *Totals {
	return &Totals{kinds: make(map[EntryKind]*assetTotals)}
}

// Add folds the entry's amount into the slot for its kind and asset,
// creating the slot with a zero value if absent. The entry is already
// validated; Add has no error conditions.
func (t *Totals) Add(e Entry) {
	at, ok := t.kinds[e.Kind]
	if !ok {
		at = &assetTotals{totals: make(map[string]AmountWithFee)}
		t.kinds[e.Kind] = at
		t.order = append(t.order, e.Kind)
	}
	at.add(e.Asset, e.Amount)
}

// Kinds iterates over the entry kinds present, in first-seen order.
func (t *Totals) Kinds() iter.Seq[EntryKind] {
	return func(yield func(EntryKind) bool) {
		for _, kind := range t.order {
			if !yield(kind) {
				return
			}
		}
	}
}

// Assets iterates over the assets accumulated for a kind, in first-seen
// order, with their running totals.
func (t *Totals) Assets(kind EntryKind) iter.Seq2[string, AmountWithFee] {
	return func(yield func(string, AmountWithFee) bool) {
		at, ok := t.kinds[kind]
		if !ok {
			return
		}
		for _, asset := range at.order {
			if !yield(asset, at.totals[asset]) {
				return
			}
		}
	}
}

// Total returns the accumulated amount for a kind and asset, and whether
// that slot exists.
func (t *Totals) Total(kind EntryKind, asset string) (AmountWithFee, bool) {
	at, ok := t.kinds[kind]
	if !ok {
		return AmountWithFee{}, false
	}
	total, ok := at.totals[asset]
	return total, ok
}
