package handlers

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	"spacex-launch-dashboard/internal/domain"
	"spacex-launch-dashboard/internal/platform/obs"
	"spacex-launch-dashboard/internal/ports"
	"spacex-launch-dashboard/internal/services"
)

// ChartRenderer draws the two dashboard charts.
type ChartRenderer interface {
	OutcomePie(w io.Writer, title string, dist domain.Distribution) error
	PayloadScatter(w io.Writer, rows []domain.LaunchRecord, xRange domain.PayloadRange) error
}

// ChartHandler serves the charts as SVG images. Malformed ranges fall back
// to the dataset bounds instead of failing the image.
type ChartHandler struct {
	Catalog  ports.LaunchCatalog
	Querier  ports.LaunchQuerier
	Renderer ChartRenderer
}

func (h *ChartHandler) OutcomePie(w http.ResponseWriter, r *http.Request) {
	site := domain.NormalizeSite(r.URL.Query().Get("site"))

	dist, err := outcomeDistribution(r.Context(), h.Querier, site)
	if err != nil {
		log.Printf("req_id=%s outcome pie: %v", obs.RequestID(r.Context()), err)
		dist = domain.Distribution{}
	}

	h.writeSVG(w, r, "chart.outcome_pie", func(buf io.Writer) error {
		return h.Renderer.OutcomePie(buf, services.DistributionTitle(site), dist)
	})
}

func (h *ChartHandler) PayloadScatter(w http.ResponseWriter, r *http.Request) {
	bounds := h.Catalog.Bounds()
	sel, _ := parseSelectionOrBounds(r, bounds)

	rows, err := payloadOutcomeRows(r.Context(), h.Querier, sel)
	if err != nil {
		rows = nil
	}

	h.writeSVG(w, r, "chart.payload_scatter", func(buf io.Writer) error {
		return h.Renderer.PayloadScatter(buf, rows, sel.Range)
	})
}

// writeSVG renders into a buffer first so a render failure can still become a 500.
func (h *ChartHandler) writeSVG(w http.ResponseWriter, r *http.Request, op string, render func(io.Writer) error) {
	var buf bytes.Buffer
	err := renderTimed(r.Context(), op, func() error { return render(&buf) })
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write svg failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func renderTimed(ctx context.Context, op string, fn func() error) (err error) {
	defer obs.Time(ctx, op)(&err)
	return fn()
}
