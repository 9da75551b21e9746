package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"hotel-backend/utils"
)

// Shared pricing constants.
var (
	taxRate        = decimal.RequireFromString("0.24")
	nightSurcharge = decimal.RequireFromString("1.30")
)

// DateLayout is the calendar date format used by reservations and evaluations.
const DateLayout = "2006-01-02"

// TimestampLayout is used for guest history and service requests.
const TimestampLayout = "2006-01-02 15:04"

// ApplyTax returns subtotal plus the fixed 24% room tax.
func ApplyTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(subtotal.Mul(taxRate))
}

// ApplyNightSurcharge adds 30% to cost when the hour part of an "HH:MM"
// string falls between 22:00 and 06:00. Unparseable hours leave cost as is.
func ApplyNightSurcharge(cost decimal.Decimal, hour string) decimal.Decimal {
	head, _, _ := strings.Cut(strings.TrimSpace(hour), ":")
	h, err := strconv.Atoi(head)
	if err != nil {
		return cost
	}
	if h >= 22 || h < 6 {
		return cost.Mul(nightSurcharge)
	}
	return cost
}

// PerformanceBonus derives the evaluation bonus from the mean rating.
func PerformanceBonus(baseSalary decimal.Decimal, evaluations []Evaluation) decimal.Decimal {
	if len(evaluations) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, e := range evaluations {
		sum = sum.Add(decimal.NewFromFloat(e.Rating))
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(evaluations))))

	switch {
	case mean.GreaterThanOrEqual(decimal.RequireFromString("4.5")):
		return baseSalary.Mul(decimal.RequireFromString("0.15"))
	case mean.GreaterThanOrEqual(decimal.NewFromInt(4)):
		return baseSalary.Mul(decimal.RequireFromString("0.10"))
	case mean.GreaterThanOrEqual(decimal.RequireFromString("3.5")):
		return baseSalary.Mul(decimal.RequireFromString("0.05"))
	}
	return decimal.Zero
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func lookupPrice(table map[string]int64, key string, def int64) decimal.Decimal {
	if p, ok := table[strings.ToLower(strings.TrimSpace(key))]; ok {
		return money(p)
	}
	return money(def)
}

func formatMoney(d decimal.Decimal) string {
	return utils.FormatMoney(d)
}
