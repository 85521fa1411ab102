package ledgers

import "errors"

// Classification and aggregation errors. Call sites wrap them with record
// context using fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	// ErrUnknownKind reports a type field outside the recognized set.
	ErrUnknownKind = errors.New("unknown entry kind")
	// ErrFormat reports an amount or fee field that is not a decimal.
	ErrFormat = errors.New("malformed decimal field")
	// ErrZeroAmount reports a trade row whose amount is zero, which cannot
	// be resolved to a buy or a sell.
	ErrZeroAmount = errors.New("zero trade amount")
	// ErrInvalidAmount reports an amount whose sign contradicts the entry kind.
	ErrInvalidAmount = errors.New("amount sign does not match entry kind")
	// ErrInvalidFee reports a positive fee. Fees are recorded as costs, so a
	// credit fee means the export is corrupt.
	ErrInvalidFee = errors.New("positive fee")
	// ErrIncompleteTrade reports a trade that never received both legs.
	ErrIncompleteTrade = errors.New("incomplete trade")
)
