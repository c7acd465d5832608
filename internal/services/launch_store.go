package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"spacex-launch-dashboard/internal/domain"
	"spacex-launch-dashboard/internal/ports"

	"github.com/montanaflynn/stats"
)

// StoreOptions tune how a LaunchStore is built.
type StoreOptions struct {
	// Sites is an optional hand-maintained selector list. When set, every site
	// present in the data must appear in it and its order is kept.
	Sites []string
	// SliderStep is the payload slider step in kg; zero means 1000.
	SliderStep float64
}

// LaunchStore owns the immutable launch record set and the values derived
// from it once at load time. It never changes after LoadStore returns.
type LaunchStore struct {
	source  string
	records domain.RecordSet
	bounds  domain.PayloadRange
	sites   []string
	slider  domain.SliderScale
	summary domain.LaunchSummary
}

// LoadStore reads every record from source, validates it and derives bounds,
// the site list and the slider scale. Any failure is a *domain.DataLoadError.
func LoadStore(ctx context.Context, source ports.LaunchSource, opts StoreOptions) (*LaunchStore, error) {
	name := source.Name()

	recs, err := source.ListLaunches(ctx)
	if err != nil {
		var le *domain.DataLoadError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &domain.DataLoadError{Source: name, Err: err}
	}
	if len(recs) == 0 {
		return nil, &domain.DataLoadError{Source: name, Err: errors.New("source contains no launch records")}
	}

	for i, r := range recs {
		if err := validateRecord(r); err != nil {
			err.Source = name
			err.Row = i + 1
			return nil, err
		}
	}

	set := domain.NewRecordSet(recs)
	payloads := set.Payloads()

	// stats only fails on empty input, which is ruled out above.
	lo, err := stats.Min(payloads)
	if err != nil {
		return nil, &domain.DataLoadError{Source: name, Err: fmt.Errorf("payload min: %w", err)}
	}
	hi, err := stats.Max(payloads)
	if err != nil {
		return nil, &domain.DataLoadError{Source: name, Err: fmt.Errorf("payload max: %w", err)}
	}
	mean, err := stats.Mean(payloads)
	if err != nil {
		return nil, &domain.DataLoadError{Source: name, Err: fmt.Errorf("payload mean: %w", err)}
	}

	sites, err := resolveSites(set, opts.Sites)
	if err != nil {
		return nil, &domain.DataLoadError{Source: name, Column: "Launch Site", Err: err}
	}

	step := opts.SliderStep
	if step == 0 {
		step = DefaultSliderStep
	}
	bounds := domain.PayloadRange{Low: lo, High: hi}
	slider, err := NewSliderScale(bounds, step)
	if err != nil {
		return nil, &domain.DataLoadError{Source: name, Err: err}
	}

	successes := 0
	for r := range set.All() {
		if r.Outcome == domain.OutcomeSuccess {
			successes++
		}
	}

	return &LaunchStore{
		source:  name,
		records: set,
		bounds:  bounds,
		sites:   sites,
		slider:  slider,
		summary: domain.LaunchSummary{
			Launches:       set.Len(),
			Successes:      successes,
			MeanPayloadKg:  mean,
			SuccessRatePct: 100 * float64(successes) / float64(set.Len()),
		},
	}, nil
}

func validateRecord(r domain.LaunchRecord) *domain.DataLoadError {
	switch {
	case r.LaunchSite == "":
		return &domain.DataLoadError{Column: "Launch Site", Err: errors.New("empty value")}
	case r.PayloadMassKg < 0 || math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0):
		return &domain.DataLoadError{Column: "Payload Mass (kg)", Err: fmt.Errorf("invalid payload %v", r.PayloadMassKg)}
	case !r.Outcome.Valid():
		return &domain.DataLoadError{Column: "class", Err: fmt.Errorf("invalid class %d", r.Outcome)}
	}
	return nil
}

// resolveSites derives the sorted distinct sites, or checks the configured list
// covers every site in the data.
func resolveSites(set domain.RecordSet, configured []string) ([]string, error) {
	seen := map[string]struct{}{}
	var distinct []string
	for r := range set.All() {
		if _, ok := seen[r.LaunchSite]; ok {
			continue
		}
		seen[r.LaunchSite] = struct{}{}
		distinct = append(distinct, r.LaunchSite)
	}
	sort.Strings(distinct)

	if len(configured) == 0 {
		return distinct, nil
	}

	var missing []string
	for _, s := range distinct {
		if !slices.Contains(configured, s) {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("sites %q present in data but missing from configured site list", missing)
	}
	if slices.Contains(configured, domain.SiteAll) {
		return nil, fmt.Errorf("configured site list must not contain the reserved value %q", domain.SiteAll)
	}

	return slices.Clone(configured), nil
}

func (s *LaunchStore) Source() string { return s.source }

// Records returns the record set handed to the query engine.
func (s *LaunchStore) Records() domain.RecordSet { return s.records }

// Bounds returns the dataset-wide payload min and max.
func (s *LaunchStore) Bounds() domain.PayloadRange { return s.bounds }

// Sites returns the ordered selector options, excluding the "ALL" sentinel.
func (s *LaunchStore) Sites() []string { return slices.Clone(s.sites) }

func (s *LaunchStore) Slider() domain.SliderScale { return s.slider.Clone() }

func (s *LaunchStore) Summary() domain.LaunchSummary { return s.summary }
