package dto

import (
	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatBRL renders a decimal amount as Brazilian Real for display
// (e.g., "R$1.234,56"). The value is rounded to cents for formatting only;
// the exact decimal always travels alongside in the response.
func FormatBRL(v decimal.Decimal) string {
	return money.New(toCents(v), money.BRL).Display()
}

// FormatUSD renders a decimal amount as US Dollars for display
// (e.g., "$1,234.56").
func FormatUSD(v decimal.Decimal) string {
	return money.New(toCents(v), money.USD).Display()
}

func toCents(v decimal.Decimal) int64 {
	return v.Shift(2).Round(0).IntPart()
}
