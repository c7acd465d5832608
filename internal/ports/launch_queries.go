package ports

import "spacex-launch-dashboard/internal/domain"

// Read-only view of the loaded launch data used to seed the selector controls.
type LaunchCatalog interface {
	Sites() []string
	Bounds() domain.PayloadRange
	Slider() domain.SliderScale
	Summary() domain.LaunchSummary
}

// Filter/aggregate queries backing the two charts.
type LaunchQuerier interface {
	OutcomeDistribution(site string) (domain.Distribution, error)
	PayloadOutcomeRows(site string, rng domain.PayloadRange) ([]domain.LaunchRecord, error)
}
