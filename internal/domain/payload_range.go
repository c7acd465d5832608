package domain

import (
	"math"
	"strconv"
	"strings"
)

// Inclusive closed payload mass interval [Low, High] in kilograms.
type PayloadRange struct {
	Low  float64
	High float64
}

// Contains reports whether kg lies inside the range, both ends inclusive.
func (r PayloadRange) Contains(kg float64) bool {
	return kg >= r.Low && kg <= r.High
}

// Validate rejects non-finite bounds and inverted ranges.
func (r PayloadRange) Validate() error {
	if math.IsNaN(r.Low) || math.IsInf(r.Low, 0) {
		return &InvalidQueryError{Field: "low", Value: formatFloat(r.Low), Reason: "must be a finite number"}
	}
	if math.IsNaN(r.High) || math.IsInf(r.High, 0) {
		return &InvalidQueryError{Field: "high", Value: formatFloat(r.High), Reason: "must be a finite number"}
	}
	if r.Low > r.High {
		return &InvalidQueryError{
			Field:  "range",
			Value:  formatFloat(r.Low) + ".." + formatFloat(r.High),
			Reason: "low must not exceed high",
		}
	}
	return nil
}

// ParsePayloadRange converts presentation input into a validated range.
// An empty bound takes the matching bound of fallback.
func ParsePayloadRange(low, high string, fallback PayloadRange) (PayloadRange, error) {
	r := fallback

	if s := strings.TrimSpace(low); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return PayloadRange{}, &InvalidQueryError{Field: "low", Value: s, Reason: "must be numeric"}
		}
		r.Low = v
	}

	if s := strings.TrimSpace(high); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return PayloadRange{}, &InvalidQueryError{Field: "high", Value: s, Reason: "must be numeric"}
		}
		r.High = v
	}

	if err := r.Validate(); err != nil {
		return PayloadRange{}, err
	}
	return r, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
