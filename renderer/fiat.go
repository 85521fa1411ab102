package renderer

import (
	"strings"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// fiatCurrency maps a ledger asset symbol to an ISO currency code when the
// asset is fiat. Kraken prefixes fiat assets with Z (ZUSD, ZEUR), so the
// symbol is tried both as-is and with that prefix stripped.
func fiatCurrency(asset string) (string, bool) {
	if money.GetCurrency(asset) != nil {
		return asset, true
	}
	if code, ok := strings.CutPrefix(asset, "Z"); ok && money.GetCurrency(code) != nil {
		return code, true
	}
	return "", false
}

// fiatString renders a decimal value in the currency's display format,
// rounded to the currency's minor unit.
func fiatString(code string, value decimal.Decimal) string {
	cur := money.GetCurrency(code)
	minor := value.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}
