package handlers

import (
	"net/http"

	"spacex-launch-dashboard/internal/api/dto"
	"spacex-launch-dashboard/internal/domain"
	"spacex-launch-dashboard/internal/ports"
	"spacex-launch-dashboard/internal/services"
)

// LaunchHandler exposes the query engine as read-only JSON endpoints.
type LaunchHandler struct {
	Catalog ports.LaunchCatalog
	Querier ports.LaunchQuerier
}

func (h *LaunchHandler) Sites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.SitesResponse{
		Sites:   h.Catalog.Sites(),
		Default: domain.SiteAll,
	})
}

func (h *LaunchHandler) Bounds(w http.ResponseWriter, r *http.Request) {
	b := h.Catalog.Bounds()
	s := h.Catalog.Slider()

	writeJSON(w, r, http.StatusOK, dto.BoundsResponse{
		Bounds: dto.RangeResponse{Low: b.Low, High: b.High},
		Slider: dto.SliderResponse{Min: s.Min, Max: s.Max, Step: s.Step, Ticks: s.Ticks},
	})
}

// Distribution returns per-site counts for "ALL", otherwise success/failure counts.
func (h *LaunchHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	site := querySite(r)

	dist, err := outcomeDistribution(r.Context(), h.Querier, site)
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistributionResponse{
		Site:    site,
		Title:   services.DistributionTitle(site),
		GroupBy: services.DistributionGroupBy(site),
		Counts:  dist,
		Total:   dist.Total(),
	})
}

// Rows returns the filtered records for the scatter chart in source order.
func (h *LaunchHandler) Rows(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r, h.Catalog.Bounds())
	if err != nil {
		writeQueryError(w, r, err)
		return
	}
	sel.Site = querySite(r)

	rows, err := payloadOutcomeRows(r.Context(), h.Querier, sel)
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	res := dto.RowsResponse{
		Site:  sel.Site,
		Range: dto.RangeResponse{Low: sel.Range.Low, High: sel.Range.High},
		Count: len(rows),
		Rows:  make([]dto.LaunchRowResponse, 0, len(rows)),
	}
	for _, rec := range rows {
		res.Rows = append(res.Rows, dto.LaunchRowResponse{
			LaunchSite:     rec.LaunchSite,
			PayloadMassKg:  rec.PayloadMassKg,
			Outcome:        int(rec.Outcome),
			OutcomeLabel:   rec.Outcome.Label(),
			BoosterVersion: rec.BoosterVersion,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
