package ledgers

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | string | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case string:
		return decimal.RequireFromString(v)
	default:
		panic("unsupported type")
	}
}

// AmountWithFee is the unit of accumulation everywhere: a principal amount
// and the fee charged for moving it, both exact decimals. The zero value is
// (0, 0) and is usable. Every operation returns a new value.
type AmountWithFee struct {
	amount decimal.Decimal
	fee    decimal.Decimal
}

// A builds an AmountWithFee from an amount and a fee.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | string | decimal.Decimal](amount, fee T) AmountWithFee {
	return AmountWithFee{amount: newDecimal(amount), fee: newDecimal(fee)}
}

func (a AmountWithFee) Amount() decimal.Decimal { return a.amount }
func (a AmountWithFee) Fee() decimal.Decimal    { return a.fee }

// Add returns the componentwise sum of a and b.
func (a AmountWithFee) Add(b AmountWithFee) AmountWithFee {
	return AmountWithFee{amount: a.amount.Add(b.amount), fee: a.fee.Add(b.fee)}
}

// Abs returns the componentwise absolute value of a.
func (a AmountWithFee) Abs() AmountWithFee {
	return AmountWithFee{amount: a.amount.Abs(), fee: a.fee.Abs()}
}

func (a AmountWithFee) Equal(b AmountWithFee) bool {
	return a.amount.Equal(b.amount) && a.fee.Equal(b.fee)
}
func (a AmountWithFee) IsZero() bool { return a.amount.IsZero() && a.fee.IsZero() }

// String renders the pair the way report lines expect it: "<amount>, fees: <fee>".
func (a AmountWithFee) String() string {
	return fmt.Sprintf("%s, fees: %s", a.amount, a.fee)
}
