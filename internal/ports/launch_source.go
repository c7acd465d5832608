package ports

import (
	"context"
	"spacex-launch-dashboard/internal/domain"
)

// Port: a boundary for reading launch records from a tabular source.
type LaunchSource interface {
	// Identify the source in logs and load errors.
	Name() string
	// Read every launch record in source order.
	// Malformed input is reported as *domain.DataLoadError.
	ListLaunches(ctx context.Context) ([]domain.LaunchRecord, error)
}
