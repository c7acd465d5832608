package domain

import "strings"

// SiteAll is the site selector value that disables site filtering.
const SiteAll = "ALL"

// Binary classification of a launch attempt.
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Label returns the distribution key used for the outcome.
func (o Outcome) Label() string {
	if o == OutcomeSuccess {
		return "success"
	}
	return "failure"
}

// Valid reports whether o is one of the two known class labels.
func (o Outcome) Valid() bool { return o == OutcomeFailure || o == OutcomeSuccess }

// Represents a single historical launch attempt.
// Index is the record's zero-based position in the source, which lets
// callers observe that filtering keeps the original relative order.
// BoosterVersion is display-only and never filtered on.
type LaunchRecord struct {
	Index          int
	LaunchSite     string
	PayloadMassKg  float64
	Outcome        Outcome
	BoosterVersion string
}

// NormalizeSite trims a selector value; an empty value selects all sites.
func NormalizeSite(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return SiteAll
	}
	return site
}
