package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"spacex-launch-dashboard/internal/domain"
	"spacex-launch-dashboard/internal/platform/obs"
	"spacex-launch-dashboard/internal/ports"
)

// selection is the pair of inputs every chart is computed from.
type selection struct {
	Site  string
	Range domain.PayloadRange
}

// parseSelection reads site, low and high from the query string.
// A missing site selects all sites; missing bounds take the dataset bounds.
func parseSelection(r *http.Request, bounds domain.PayloadRange) (selection, error) {
	q := r.URL.Query()
	site := domain.NormalizeSite(q.Get("site"))

	rng, err := domain.ParsePayloadRange(q.Get("low"), q.Get("high"), bounds)
	if err != nil {
		return selection{Site: site, Range: bounds}, err
	}
	return selection{Site: site, Range: rng}, nil
}

// querySite reads the site for the JSON endpoints. An absent site selects all
// sites; a present but blank one is passed on so the engine rejects it.
func querySite(r *http.Request) string {
	q := r.URL.Query()
	if !q.Has("site") {
		return domain.SiteAll
	}
	return strings.TrimSpace(q.Get("site"))
}

// parseSelectionOrBounds falls back to the full dataset bounds on a malformed
// range. The returned error is non-nil when the fallback was used.
func parseSelectionOrBounds(r *http.Request, bounds domain.PayloadRange) (selection, error) {
	sel, err := parseSelection(r, bounds)
	if err != nil {
		log.Printf("req_id=%s invalid range, using dataset bounds: %v", obs.RequestID(r.Context()), err)
	}
	return sel, err
}

func outcomeDistribution(ctx context.Context, q ports.LaunchQuerier, site string) (_ domain.Distribution, err error) {
	defer obs.Time(ctx, "query.outcome_distribution")(&err)
	return q.OutcomeDistribution(site)
}

func payloadOutcomeRows(ctx context.Context, q ports.LaunchQuerier, sel selection) (_ []domain.LaunchRecord, err error) {
	defer obs.Time(ctx, "query.payload_outcome_rows")(&err)
	return q.PayloadOutcomeRows(sel.Site, sel.Range)
}
