package services

import (
	"context"
	"errors"
	"testing"

	"spacex-launch-dashboard/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStoreDerivesBoundsAndSites(t *testing.T) {
	store := mustLoad(t, exampleRecords(), StoreOptions{})

	if b := store.Bounds(); b.Low != 500 || b.High != 2000 {
		t.Fatalf("bounds = %+v, want 500..2000", b)
	}
	if diff := cmp.Diff([]string{"CCAFS LC-40", "KSC LC-39A"}, store.Sites()); diff != "" {
		t.Fatalf("sites mismatch (-want +got):\n%s", diff)
	}

	sum := store.Summary()
	if sum.Launches != 3 || sum.Successes != 2 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.MeanPayloadKg != 4000.0/3 {
		t.Fatalf("mean payload = %v", sum.MeanPayloadKg)
	}
}

func TestLoadStoreIsImmutable(t *testing.T) {
	recs := exampleRecords()
	store := mustLoad(t, recs, StoreOptions{})

	recs[0].LaunchSite = "changed"
	sites := store.Sites()
	sites[0] = "changed"
	store.Slider().Ticks[0] = -1

	if store.Records().Records()[0].LaunchSite != "CCAFS LC-40" {
		t.Fatal("store observed source slice mutation")
	}
	if store.Sites()[0] != "CCAFS LC-40" {
		t.Fatal("Sites() must return a copy")
	}
	if store.Slider().Ticks[0] != 0 {
		t.Fatal("Slider() must return a copy")
	}
}

func TestLoadStoreConfiguredSites(t *testing.T) {
	configured := []string{"VAFB SLC-4E", "KSC LC-39A", "CCAFS LC-40", "CCAFS SLC-40"}
	store := mustLoad(t, exampleRecords(), StoreOptions{Sites: configured})

	if diff := cmp.Diff(configured, store.Sites()); diff != "" {
		t.Fatalf("configured order not kept (-want +got):\n%s", diff)
	}

	_, err := LoadStore(context.Background(), staticSource{name: "x", records: exampleRecords()},
		StoreOptions{Sites: []string{"CCAFS LC-40"}})
	var le *domain.DataLoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected DataLoadError for site list drift, got %v", err)
	}
	if le.Column != "Launch Site" {
		t.Fatalf("column = %q", le.Column)
	}
}

func TestLoadStoreFailures(t *testing.T) {
	cases := []struct {
		name string
		src  staticSource
	}{
		{"empty", staticSource{name: "empty"}},
		{"source error", staticSource{name: "broken", err: errors.New("disk on fire")}},
		{"bad outcome", staticSource{name: "bad", records: []domain.LaunchRecord{{LaunchSite: "A", Outcome: 7}}}},
		{"negative payload", staticSource{name: "bad", records: []domain.LaunchRecord{{LaunchSite: "A", PayloadMassKg: -3}}}},
		{"empty site", staticSource{name: "bad", records: []domain.LaunchRecord{{PayloadMassKg: 3}}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadStore(context.Background(), c.src, StoreOptions{})
			var le *domain.DataLoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected DataLoadError, got %v", err)
			}
			if le.Source != c.src.name {
				t.Fatalf("source = %q, want %q", le.Source, c.src.name)
			}
		})
	}
}

func TestLoadStoreRejectsInvalidStep(t *testing.T) {
	for _, step := range []float64{-5, 1e-300} {
		_, err := LoadStore(context.Background(), staticSource{name: "x", records: exampleRecords()},
			StoreOptions{SliderStep: step})
		var le *domain.DataLoadError
		if !errors.As(err, &le) {
			t.Fatalf("step %v: expected DataLoadError, got %v", step, err)
		}
	}
}
