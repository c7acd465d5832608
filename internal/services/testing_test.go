package services

import (
	"context"
	"testing"

	"spacex-launch-dashboard/internal/domain"
)

type staticSource struct {
	name    string
	records []domain.LaunchRecord
	err     error
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) ListLaunches(ctx context.Context) ([]domain.LaunchRecord, error) {
	return s.records, s.err
}

// exampleRecords is the three-launch dataset used throughout the docs.
func exampleRecords() []domain.LaunchRecord {
	return []domain.LaunchRecord{
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 500, Outcome: domain.OutcomeSuccess, BoosterVersion: "F9 v1.0  B0003"},
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 2000, Outcome: domain.OutcomeFailure, BoosterVersion: "F9 v1.0  B0004"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 1500, Outcome: domain.OutcomeSuccess, BoosterVersion: "F9 FT B1031.1"},
	}
}

func mustLoad(t *testing.T, recs []domain.LaunchRecord, opts StoreOptions) *LaunchStore {
	t.Helper()
	store, err := LoadStore(context.Background(), staticSource{name: "test", records: recs}, opts)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}
