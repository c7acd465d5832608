package domain

import "slices"

// SliderScale seeds the payload range control.
// Min and Max are the dataset bounds rounded outward to a multiple of Step
// (floor for Min, ceil for Max); Ticks run from Min to Max every Step.
// Default is the selection shown before the user moves the slider: the
// unrounded dataset bounds.
type SliderScale struct {
	Min     float64
	Max     float64
	Step    float64
	Ticks   []float64
	Default PayloadRange
}

// Clone returns a copy that shares no memory with s.
func (s SliderScale) Clone() SliderScale {
	s.Ticks = slices.Clone(s.Ticks)
	return s
}

// Headline figures for the loaded data set.
type LaunchSummary struct {
	Launches       int
	Successes      int
	MeanPayloadKg  float64
	SuccessRatePct float64
}
