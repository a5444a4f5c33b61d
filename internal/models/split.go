package models

import "github.com/shopspring/decimal"

// BillInput holds the values collected from the bill form.
// It is passed by value into the calculator and never mutated there.
type BillInput struct {
	// BillAmount is the pre-tip cost of the bill.
	// Must be zero or positive.
	BillAmount float64 `json:"bill_amount"`

	// SplitCount is the number of people sharing the bill.
	// Anything below 1 is treated as 1.
	SplitCount int `json:"split_count"`

	// TipPercentage is the gratuity as a fraction of the bill (0.2 = 20%).
	// Values outside [0, 1] are clamped.
	TipPercentage float64 `json:"tip_percentage"`
}

// BillResult is the output of one split computation.
// Every amount is rounded to cents, half-up.
type BillResult struct {
	// Input is the normalized input the amounts were computed from:
	// split count and tip percentage after clamping.
	Input BillInput `json:"input"`

	// TipAmount is BillAmount × TipPercentage.
	TipAmount decimal.Decimal `json:"tip_amount"`

	// TotalAmount is BillAmount + TipAmount.
	TotalAmount decimal.Decimal `json:"total_amount"`

	// TotalPerPerson is TotalAmount / SplitCount.
	TotalPerPerson decimal.Decimal `json:"total_per_person"`
}
