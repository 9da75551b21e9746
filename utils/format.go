package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount as "$1,234" with no decimals.
func FormatMoney(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("$%d", d.Round(0).IntPart())
}

// FormatAmount renders an amount with two decimals, e.g. "71,462.04".
func FormatAmount(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
