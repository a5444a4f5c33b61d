// Package form holds the state of the bill form: the bill text, the split
// stepper and the tip slider.
//
// State is a value. Every setter returns a new State, and the caller decides
// when to recompute by calling Result.
package form

import (
	"strings"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/models"
)

// DefaultTipSteps is the number of intermediate stops on the tip slider.
const DefaultTipSteps = 5

// State is a snapshot of the bill form.
type State struct {
	BillText string
	Split    int
	Tip      float64
	TipSteps int
}

// New returns an empty form: no bill, one person, no tip.
func New(tipSteps int) State {
	return State{Split: 1, TipSteps: tipSteps}
}

// SetBill replaces the bill text.
func (s State) SetBill(text string) State {
	s.BillText = text
	return s
}

// SetTip moves the slider, snapping to its nearest stop.
func (s State) SetTip(value float64) State {
	s.Tip = calculator.SnapTip(value, s.TipSteps)
	return s
}

// IncrementSplit adds one person.
func (s State) IncrementSplit() State {
	s.Split = max(s.Split, 1) + 1
	return s
}

// DecrementSplit removes one person. The split never drops below 1.
func (s State) DecrementSplit() State {
	s.Split = max(s.Split-1, 1)
	return s
}

// Valid reports whether a bill has been entered. Until it has, the split
// and tip controls have nothing to act on.
func (s State) Valid() bool {
	return strings.TrimSpace(s.BillText) != ""
}

// Result computes the split for the current state.
func (s State) Result() (models.BillResult, error) {
	return calculator.ComputeSplitText(s.BillText, s.Split, s.Tip)
}
