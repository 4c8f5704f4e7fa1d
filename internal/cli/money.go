package cli

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatAmount renders amount in currency's display format. Unknown currency codes
// fall back to the plain two-decimal string.
func formatAmount(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2)
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := amount.Mul(factor).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}
