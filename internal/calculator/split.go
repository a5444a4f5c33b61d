package calculator

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tipsplit/internal/models"
)

// ErrInvalidInput is returned when the bill amount is missing, not a number,
// or negative. Split count and tip percentage never produce it: they are
// clamped instead.
var ErrInvalidInput = errors.New("invalid input")

const centPlaces = 2

// DefaultMaxSplit is the split limit used by callers that hand Shares to
// untrusted input.
const DefaultMaxSplit = 100

// Parsed bills are limited in magnitude and precision so a short string like
// "1e100000000" cannot turn into a huge rounding computation.
const maxBillExponent = 30

var maxBillAmount = decimal.New(1, maxBillExponent)

// ComputeSplit computes the tip, the total and the amount each person pays.
//
//	tip        = bill × tipPercentage
//	total      = bill + tip
//	per person = total / splitCount
//
// Split counts below 1 are treated as 1 and tip percentages are clamped to
// [0, 1]. Intermediate values are exact; each result field is rounded to
// cents, half-up.
func ComputeSplit(in models.BillInput) (models.BillResult, error) {
	if math.IsNaN(in.BillAmount) || math.IsInf(in.BillAmount, 0) {
		return models.BillResult{}, fmt.Errorf("bill amount %v is not a finite number: %w", in.BillAmount, ErrInvalidInput)
	}
	if in.BillAmount < 0 {
		return models.BillResult{}, fmt.Errorf("bill amount %v is negative: %w", in.BillAmount, ErrInvalidInput)
	}
	return computeSplit(decimal.NewFromFloat(in.BillAmount), in)
}

func computeSplit(bill decimal.Decimal, in models.BillInput) (models.BillResult, error) {
	if math.IsNaN(in.TipPercentage) {
		return models.BillResult{}, fmt.Errorf("tip percentage is not a number: %w", ErrInvalidInput)
	}

	normalized := models.BillInput{
		BillAmount:    in.BillAmount,
		SplitCount:    max(in.SplitCount, 1),
		TipPercentage: clampTip(in.TipPercentage),
	}

	tip := bill.Mul(decimal.NewFromFloat(normalized.TipPercentage))
	total := bill.Add(tip)
	perPerson := total.Div(decimal.NewFromInt(int64(normalized.SplitCount)))

	return models.BillResult{
		Input:          normalized,
		TipAmount:      tip.Round(centPlaces),
		TotalAmount:    total.Round(centPlaces),
		TotalPerPerson: perPerson.Round(centPlaces),
	}, nil
}

// ParseBillAmount converts the text typed into the bill field into an amount.
// Surrounding whitespace, a leading "$" and thousands separators are accepted.
func ParseBillAmount(text string) (float64, error) {
	d, err := parseBill(text)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func parseBill(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("bill amount is empty: %w", ErrInvalidInput)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bill amount %q is not a number: %w", text, ErrInvalidInput)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("bill amount %q is negative: %w", text, ErrInvalidInput)
	}
	if exp := d.Exponent(); exp > maxBillExponent || exp < -maxBillExponent || d.GreaterThan(maxBillAmount) {
		return decimal.Zero, fmt.Errorf("bill amount %q is out of range: %w", text, ErrInvalidInput)
	}
	return d, nil
}

// ComputeSplitText parses raw bill text and computes the split. The parsed
// amount stays exact, so large bills keep their cents.
func ComputeSplitText(billText string, splitCount int, tipPercentage float64) (models.BillResult, error) {
	bill, err := parseBill(billText)
	if err != nil {
		return models.BillResult{}, err
	}
	return computeSplit(bill, models.BillInput{
		BillAmount:    bill.InexactFloat64(),
		SplitCount:    splitCount,
		TipPercentage: tipPercentage,
	})
}

// Shares divides the result's total into cent-exact amounts, one per person.
// The shares always sum to TotalAmount; leftover cents go one each to the
// first shares. Callers bound the split count: one value is allocated per
// person.
func Shares(result models.BillResult) []decimal.Decimal {
	n := max(result.Input.SplitCount, 1)
	cents := result.TotalAmount.Round(centPlaces).Shift(centPlaces).BigInt()

	base, rem := new(big.Int).QuoRem(cents, big.NewInt(int64(n)), new(big.Int))
	extra := int(rem.Int64()) // rem < n
	shares := make([]decimal.Decimal, n)
	for i := range shares {
		c := base
		if i < extra {
			c = new(big.Int).Add(base, big.NewInt(1))
		}
		shares[i] = decimal.NewFromBigInt(c, -centPlaces)
	}
	return shares
}

// SnapTip moves a tip percentage to the nearest position of a slider with
// the given number of intermediate steps. A slider with 5 steps has 7
// positions: 0, 1/6, 2/6, ..., 1. Zero or negative steps mean a continuous
// slider, in which case the value is only clamped.
func SnapTip(value float64, steps int) float64 {
	v := clampTip(value)
	if steps <= 0 || math.IsNaN(v) {
		return v
	}
	intervals := float64(steps + 1)
	return math.Round(v*intervals) / intervals
}

func clampTip(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
