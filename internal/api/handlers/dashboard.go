package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"spacex-launch-dashboard/internal/domain"
	"spacex-launch-dashboard/internal/platform/obs"
	"spacex-launch-dashboard/internal/ports"
	"spacex-launch-dashboard/internal/services"
)

type siteOption struct {
	Value    string
	Label    string
	Selected bool
}

type dashboardView struct {
	Sites      []siteOption
	Site       string
	Range      domain.PayloadRange
	Slider     domain.SliderScale
	Summary    domain.LaunchSummary
	Notice     string
	PieTitle   string
	PieURL     string
	ScatterURL string
}

// DashboardHandler renders the HTML page. Charts are loaded by the page from
// the chart endpoints using the same selection.
type DashboardHandler struct {
	Catalog   ports.LaunchCatalog
	Templates *template.Template
}

func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	bounds := h.Catalog.Bounds()
	sel, err := parseSelectionOrBounds(r, bounds)

	view := dashboardView{
		Site:     sel.Site,
		Range:    sel.Range,
		Slider:   h.Catalog.Slider(),
		Summary:  h.Catalog.Summary(),
		PieTitle: services.DistributionTitle(sel.Site),
	}
	if err != nil {
		view.Notice = "Invalid payload range; showing the full dataset range instead."
	}

	view.Sites = append(view.Sites, siteOption{Value: domain.SiteAll, Label: "All Sites", Selected: sel.Site == domain.SiteAll})
	for _, s := range h.Catalog.Sites() {
		view.Sites = append(view.Sites, siteOption{Value: s, Label: s, Selected: sel.Site == s})
	}

	view.PieURL = "/charts/outcomes.svg?" + url.Values{"site": {sel.Site}}.Encode()
	view.ScatterURL = "/charts/payload.svg?" + url.Values{
		"site": {sel.Site},
		"low":  {strconv.FormatFloat(sel.Range.Low, 'f', -1, 64)},
		"high": {strconv.FormatFloat(sel.Range.High, 'f', -1, 64)},
	}.Encode()

	// Render to a buffer first so template errors never produce a half-written page.
	var buf bytes.Buffer
	if err := h.Templates.ExecuteTemplate(&buf, "dashboard.html", view); err != nil {
		log.Printf("req_id=%s template error: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write page failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
