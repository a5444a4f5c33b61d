package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/format"
	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/middleware"
)

// CalculateSplitRequest is the body of POST /v1/split.
// Split defaults to 1 and Tip to 0 when omitted.
type CalculateSplitRequest struct {
	Bill  string   `json:"bill" validate:"required,notblank"`
	Split *int     `json:"split,omitempty"`
	Tip   *float64 `json:"tip,omitempty"`
}

// CalculateSplitResponse carries amounts as fixed two-decimal strings.
type CalculateSplitResponse struct {
	TipAmount      string         `json:"tip_amount"`
	TotalAmount    string         `json:"total_amount"`
	TotalPerPerson string         `json:"total_per_person"`
	Shares         []string       `json:"shares"`
	Split          int            `json:"split"`
	Tip            float64        `json:"tip"`
	Display        format.Display `json:"display"`
}

// maxBodyBytes caps the POST body; a valid request is well under 1 KiB.
const maxBodyBytes = 64 << 10

// SplitService serves bill split computations over HTTP.
type SplitService struct {
	tipSteps int
	maxSplit int
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// NewSplitService creates a SplitService. Request tips are snapped to a
// slider with tipSteps intermediate stops; 0 keeps them continuous.
// Requests splitting between more than maxSplit people are rejected, since
// the response lists one share per person. A maxSplit below 1 selects
// calculator.DefaultMaxSplit.
func NewSplitService(tipSteps, maxSplit int, m *metrics.Metrics) *SplitService {
	if maxSplit < 1 {
		maxSplit = calculator.DefaultMaxSplit
	}
	return &SplitService{
		tipSteps: tipSteps,
		maxSplit: maxSplit,
		metrics:  m,
		validate: newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// String is not empty and not only whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// CalculateSplit handles POST /v1/split
func (s *SplitService) CalculateSplit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req CalculateSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, CodeTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body")
		return
	}
	s.respond(w, r, req)
}

// CalculateSplitQuery handles GET /v1/split?bill=..&split=..&tip=..
func (s *SplitService) CalculateSplitQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := CalculateSplitRequest{Bill: q.Get("bill")}

	if v := q.Get("split"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("split %q is not an integer", v))
			return
		}
		req.Split = &n
	}
	if v := q.Get("tip"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("tip %q is not a number", v))
			return
		}
		req.Tip = &p
	}

	s.respond(w, r, req)
}

func (s *SplitService) respond(w http.ResponseWriter, r *http.Request, req CalculateSplitRequest) {
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, validationMessage(err))
		return
	}

	resp, err := s.Compute(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, calculator.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
	default:
		slog.Error("CalculateSplit failed", "error", err, "request_id", middleware.GetRequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
	}
}

// Compute runs one split calculation for req.
func (s *SplitService) Compute(ctx context.Context, req CalculateSplitRequest) (*CalculateSplitResponse, error) {
	split := 1
	if req.Split != nil {
		split = *req.Split
	}
	if err := s.validate.Var(split, "max="+strconv.Itoa(s.maxSplit)); err != nil {
		s.metrics.Computations.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, fmt.Errorf("split %d exceeds the limit of %d people: %w", split, s.maxSplit, calculator.ErrInvalidInput)
	}
	tip := 0.0
	if req.Tip != nil {
		tip = calculator.SnapTip(*req.Tip, s.tipSteps)
	}

	result, err := calculator.ComputeSplitText(req.Bill, split, tip)
	if err != nil {
		s.metrics.Computations.WithLabelValues(metrics.ResultInvalid).Inc()
		slog.Debug("Split rejected", "bill", req.Bill, "error", err, "request_id", middleware.GetRequestID(ctx))
		return nil, err
	}
	s.metrics.Computations.WithLabelValues(metrics.ResultOK).Inc()

	shares := calculator.Shares(result)
	shareStrings := make([]string, len(shares))
	for i, sh := range shares {
		shareStrings[i] = sh.StringFixed(2)
	}

	slog.Debug("Split computed",
		"bill", result.Input.BillAmount,
		"split", result.Input.SplitCount,
		"tip", result.Input.TipPercentage,
		"total_per_person", result.TotalPerPerson.StringFixed(2),
		"request_id", middleware.GetRequestID(ctx),
	)

	return &CalculateSplitResponse{
		TipAmount:      result.TipAmount.StringFixed(2),
		TotalAmount:    result.TotalAmount.StringFixed(2),
		TotalPerPerson: result.TotalPerPerson.StringFixed(2),
		Shares:         shareStrings,
		Split:          result.Input.SplitCount,
		Tip:            result.Input.TipPercentage,
		Display:        format.NewDisplay(result, shares),
	}, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
