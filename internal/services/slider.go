package services

import (
	"fmt"
	"math"

	"spacex-launch-dashboard/internal/domain"
)

const DefaultSliderStep = 1000.0

// maxTicks caps the mark count so a tiny step cannot explode the page.
const maxTicks = 200

// maxSteps bounds the interval count before it is converted to an int.
const maxSteps = 1 << 24

// NewSliderScale rounds bounds outward to multiples of step and lays out tick marks.
func NewSliderScale(bounds domain.PayloadRange, step float64) (domain.SliderScale, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return domain.SliderScale{}, fmt.Errorf("slider scale: step must be positive, got %v", step)
	}
	if err := bounds.Validate(); err != nil {
		return domain.SliderScale{}, fmt.Errorf("slider scale: %w", err)
	}

	lo := math.Floor(bounds.Low/step) * step
	hi := math.Ceil(bounds.High/step) * step
	if hi == lo {
		hi = lo + step
	}

	steps := math.Round((hi - lo) / step)
	if math.IsNaN(steps) || math.IsInf(steps, 0) || steps > maxSteps {
		return domain.SliderScale{}, fmt.Errorf("slider scale: step %v is too small for payload range %v..%v", step, bounds.Low, bounds.High)
	}

	n := int(steps) + 1
	stride := 1
	if n > maxTicks {
		stride = (n + maxTicks - 1) / maxTicks
	}

	ticks := make([]float64, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		ticks = append(ticks, lo+float64(i)*step)
	}

	return domain.SliderScale{
		Min:     lo,
		Max:     hi,
		Step:    step,
		Ticks:   ticks,
		Default: bounds,
	}, nil
}
