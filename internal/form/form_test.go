package form

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tipsplit/internal/calculator"
)

func TestNew(t *testing.T) {
	s := New(DefaultTipSteps)
	if s.Split != 1 {
		t.Errorf("Split = %d, want 1", s.Split)
	}
	if s.Tip != 0 {
		t.Errorf("Tip = %v, want 0", s.Tip)
	}
	if s.Valid() {
		t.Error("empty form should not be valid")
	}
}

func TestSplitStepper(t *testing.T) {
	s := New(DefaultTipSteps)

	s = s.DecrementSplit()
	if s.Split != 1 {
		t.Errorf("after decrement from 1, Split = %d, want 1", s.Split)
	}

	s = s.IncrementSplit().IncrementSplit().IncrementSplit()
	if s.Split != 4 {
		t.Errorf("after three increments, Split = %d, want 4", s.Split)
	}

	for range 10 {
		s = s.DecrementSplit()
	}
	if s.Split != 1 {
		t.Errorf("after many decrements, Split = %d, want 1", s.Split)
	}

	// A zero value State starts from an invalid split and still recovers.
	var zero State
	if got := zero.IncrementSplit().Split; got != 2 {
		t.Errorf("zero State increment, Split = %d, want 2", got)
	}
	if got := zero.DecrementSplit().Split; got != 1 {
		t.Errorf("zero State decrement, Split = %d, want 1", got)
	}
}

func TestSetTip(t *testing.T) {
	s := New(DefaultTipSteps).SetTip(0.2)
	if math.Abs(s.Tip-1.0/6) > 1e-9 {
		t.Errorf("Tip = %v, want 1/6", s.Tip)
	}

	s = New(0).SetTip(0.2)
	if math.Abs(s.Tip-0.2) > 1e-9 {
		t.Errorf("continuous slider Tip = %v, want 0.2", s.Tip)
	}

	s = New(0).SetTip(3)
	if s.Tip != 1 {
		t.Errorf("Tip = %v, want clamped to 1", s.Tip)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"12", true},
		{"abc", true},
	}
	for _, tt := range tests {
		if got := New(0).SetBill(tt.text).Valid(); got != tt.want {
			t.Errorf("SetBill(%q).Valid() = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestResult(t *testing.T) {
	s := New(0).SetBill("100").IncrementSplit().IncrementSplit().IncrementSplit().SetTip(0.2)

	result, err := s.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if !result.TotalPerPerson.Equal(decimal.NewFromInt(30)) {
		t.Errorf("TotalPerPerson = %s, want 30", result.TotalPerPerson)
	}

	_, err = New(0).SetBill("lunch").Result()
	if !errors.Is(err, calculator.ErrInvalidInput) {
		t.Errorf("Result error = %v, want ErrInvalidInput", err)
	}
}

func TestSettersDoNotMutate(t *testing.T) {
	orig := New(DefaultTipSteps).SetBill("10")
	_ = orig.IncrementSplit().SetTip(1).SetBill("20")

	if orig.Split != 1 || orig.Tip != 0 || orig.BillText != "10" {
		t.Errorf("original state changed: %+v", orig)
	}
}
