// Package format renders bill amounts and tip percentages for display.
package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/tipsplit/internal/models"
)

// Printers carry per-call state, so each call gets its own.
func printer() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

// Currency formats an amount in dollars with two decimals and digit grouping,
// e.g. "$1,234.50".
func Currency(amount decimal.Decimal) string {
	return printer().Sprintf("$%.2f", amount.Round(2).InexactFloat64())
}

// Percent formats a tip fraction as a whole percentage, e.g. 0.2 -> "20%".
// Halves round up, as amounts do: 0.125 -> "13%".
func Percent(fraction float64) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return printer().Sprintf("%v%%", fraction)
	}
	pct := decimal.NewFromFloat(fraction).Shift(2).Round(0)
	return printer().Sprintf("%s%%", pct.String())
}

// Display holds the display strings for one computed split.
type Display struct {
	Tip            string   `json:"tip"`
	Total          string   `json:"total"`
	TotalPerPerson string   `json:"total_per_person"`
	Percentage     string   `json:"percentage"`
	Shares         []string `json:"shares"`
}

// NewDisplay formats every amount of a result, plus its per-person shares.
func NewDisplay(result models.BillResult, shares []decimal.Decimal) Display {
	d := Display{
		Tip:            Currency(result.TipAmount),
		Total:          Currency(result.TotalAmount),
		TotalPerPerson: Currency(result.TotalPerPerson),
		Percentage:     Percent(result.Input.TipPercentage),
		Shares:         make([]string, len(shares)),
	}
	for i, s := range shares {
		d.Shares[i] = Currency(s)
	}
	return d
}
