package services

import (
	"testing"

	"spacex-launch-dashboard/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestNewSliderScaleRoundsOutward(t *testing.T) {
	s, err := NewSliderScale(domain.PayloadRange{Low: 362, High: 9600}, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Min != 0 || s.Max != 10000 {
		t.Fatalf("scale = %v..%v, want 0..10000", s.Min, s.Max)
	}
	want := []float64{0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000}
	if diff := cmp.Diff(want, s.Ticks); diff != "" {
		t.Fatalf("ticks mismatch (-want +got):\n%s", diff)
	}
	if s.Default != (domain.PayloadRange{Low: 362, High: 9600}) {
		t.Fatalf("default = %+v, want dataset bounds", s.Default)
	}
}

func TestNewSliderScaleSinglePoint(t *testing.T) {
	s, err := NewSliderScale(domain.PayloadRange{Low: 2000, High: 2000}, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Min != 2000 || s.Max != 3000 {
		t.Fatalf("scale = %v..%v, want 2000..3000", s.Min, s.Max)
	}
}

func TestNewSliderScaleCapsTicks(t *testing.T) {
	s, err := NewSliderScale(domain.PayloadRange{Low: 0, High: 100000}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Ticks) > maxTicks+1 {
		t.Fatalf("got %d ticks, want at most %d", len(s.Ticks), maxTicks+1)
	}
	if s.Ticks[0] != 0 {
		t.Fatalf("first tick = %v", s.Ticks[0])
	}
}

func TestNewSliderScaleRejectsTinyStep(t *testing.T) {
	for _, step := range []float64{1e-300, 1e-6} {
		if _, err := NewSliderScale(domain.PayloadRange{Low: 0, High: 9600}, step); err == nil {
			t.Errorf("step %v: expected error", step)
		}
	}
}

func TestNewSliderScaleRejectsBadStep(t *testing.T) {
	for _, step := range []float64{0, -1} {
		if _, err := NewSliderScale(domain.PayloadRange{Low: 0, High: 1}, step); err == nil {
			t.Errorf("step %v: expected error", step)
		}
	}
}
