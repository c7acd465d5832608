package services

import (
	"strings"

	"spacex-launch-dashboard/internal/domain"
)

// QueryEngine answers the dashboard's two questions over an immutable record
// set. It holds no mutable state and is safe for concurrent use.
type QueryEngine struct {
	records domain.RecordSet
}

func NewQueryEngine(records domain.RecordSet) *QueryEngine {
	return &QueryEngine{records: records}
}

// OutcomeDistribution counts launches per site when site is "ALL", otherwise
// counts success and failure for that one site.
// An unknown site yields an empty distribution.
func (q *QueryEngine) OutcomeDistribution(site string) (domain.Distribution, error) {
	if err := validateSite(site); err != nil {
		return nil, err
	}

	dist := domain.Distribution{}
	for r := range q.records.All() {
		if site == domain.SiteAll {
			dist[r.LaunchSite]++
			continue
		}
		if r.LaunchSite == site {
			dist[r.Outcome.Label()]++
		}
	}

	return dist, nil
}

// PayloadOutcomeRows filters by site (skipped for "ALL") and then by payload
// mass inside rng, both ends inclusive. Source order is preserved.
func (q *QueryEngine) PayloadOutcomeRows(site string, rng domain.PayloadRange) ([]domain.LaunchRecord, error) {
	if err := validateSite(site); err != nil {
		return nil, err
	}
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	rows := make([]domain.LaunchRecord, 0)
	for r := range q.records.All() {
		if site != domain.SiteAll && r.LaunchSite != site {
			continue
		}
		if !rng.Contains(r.PayloadMassKg) {
			continue
		}
		rows = append(rows, r)
	}

	return rows, nil
}

func validateSite(site string) error {
	if strings.TrimSpace(site) == "" {
		return &domain.InvalidQueryError{Field: "site", Reason: "must not be empty"}
	}
	return nil
}

// DistributionTitle returns the pie chart heading for a site selection.
func DistributionTitle(site string) string {
	if site == domain.SiteAll {
		return "Total Successful Launches by Site"
	}
	return "Successful Launches for " + site
}

// DistributionGroupBy names the category dimension of a distribution.
func DistributionGroupBy(site string) string {
	if site == domain.SiteAll {
		return "launch_site"
	}
	return "outcome"
}
