package ledgers

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Record is one raw row of a ledger export, keyed by column header. The
// classifier reads the "type", "asset", "amount", "fee" and "refid" keys;
// any other columns the export carries are ignored.
type Record map[string]string

// EntryKind is the semantic type of a ledger entry.
type EntryKind int

const (
	// Deposit credits an asset to the account.
	Deposit EntryKind = iota
	// Withdrawal debits an asset from the account.
	Withdrawal
	// Buy is the leg of a trade that credits an asset.
	Buy
	// Sell is the leg of a trade that debits an asset.
	Sell
)

func (k EntryKind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Entry is a classified and validated ledger row. Amount holds the absolute
// value of the row's amount and fee; the sign lives in Kind. Entries are
// immutable once constructed.
type Entry struct {
	RefID  string
	Asset  string
	Kind   EntryKind
	Amount AmountWithFee
}

// Classify turns a raw record into a validated Entry.
//
// The type field resolves through the closed kind set: "deposit",
// "withdrawal", and "trade", where a trade is a Buy when its amount is
// positive and a Sell when negative. Any other type is an unknown kind.
// The fee must not be positive, and the amount sign must be consistent
// with the kind (Deposit and Buy positive, Withdrawal and Sell negative).
func Classify(rec Record) (Entry, error) {
	amount, err := decimal.NewFromString(rec["amount"])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: amount %q", ErrFormat, rec["amount"])
	}
	fee, err := decimal.NewFromString(rec["fee"])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: fee %q", ErrFormat, rec["fee"])
	}

	kind, err := classifyKind(rec["type"], amount)
	if err != nil {
		return Entry{}, err
	}

	if fee.IsPositive() {
		return Entry{}, fmt.Errorf("%w: %s on %s of %s", ErrInvalidFee, fee, kind, rec["asset"])
	}
	if err := validateSign(kind, amount); err != nil {
		return Entry{}, err
	}

	return Entry{
		RefID:  rec["refid"],
		Asset:  rec["asset"],
		Kind:   kind,
		Amount: AmountWithFee{amount: amount, fee: fee}.Abs(),
	}, nil
}

// classifyKind resolves the textual type field to an EntryKind. The sign of
// the amount disambiguates a trade into its buy or sell leg.
func classifyKind(typ string, amount decimal.Decimal) (EntryKind, error) {
	switch typ {
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	case "trade":
		switch {
		case amount.IsPositive():
			return Buy, nil
		case amount.IsNegative():
			return Sell, nil
		default:
			return 0, ErrZeroAmount
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, typ)
	}
}

// validateSign checks that the amount sign is consistent with the kind.
func validateSign(kind EntryKind, amount decimal.Decimal) error {
	switch kind {
	case Deposit, Buy:
		if !amount.IsPositive() {
			return fmt.Errorf("%w: %s requires a positive amount, got %s", ErrInvalidAmount, kind, amount)
		}
	case Withdrawal, Sell:
		if !amount.IsNegative() {
			return fmt.Errorf("%w: %s requires a negative amount, got %s", ErrInvalidAmount, kind, amount)
		}
	}
	return nil
}
