// Package models defines the value types shared by the tip calculator and
// its callers.
//
// # Models
//
//   - BillInput: the bill amount, split count and tip percentage entered on the form
//   - BillResult: the tip, total and per-person amounts derived from a BillInput
//
// Both are plain values. Nothing here has an identity or a lifecycle beyond a
// single computation, and nothing is persisted.
//
// # Money
//
// Input amounts are float64 because they come straight from form fields and
// sliders. Output amounts are decimal.Decimal so that cent rounding is exact
// and sums of shares add up to the total without float drift.
package models
