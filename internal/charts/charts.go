// Package charts renders the dashboard's pie and scatter charts as SVG.
package charts

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"spacex-launch-dashboard/internal/domain"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 420

	ScatterTitle = "Payload vs. Launch Outcome"
	emptyMessage = "No launches match the current selection"
)

var palette = []drawing.Color{
	drawing.ColorFromHex("636efa"),
	drawing.ColorFromHex("ef553b"),
	drawing.ColorFromHex("00cc96"),
	drawing.ColorFromHex("ab63fa"),
	drawing.ColorFromHex("ffa15a"),
	drawing.ColorFromHex("19d3f3"),
	drawing.ColorFromHex("ff6692"),
	drawing.ColorFromHex("b6e880"),
}

var outcomeColors = map[string]drawing.Color{
	domain.OutcomeSuccess.Label(): drawing.ColorFromHex("2ca02c"),
	domain.OutcomeFailure.Label(): drawing.ColorFromHex("d62728"),
}

// Renderer draws charts with a stable color per launch site.
type Renderer struct {
	Width  int
	Height int
	colors map[string]drawing.Color
}

// NewRenderer assigns palette colors to sites in the given order.
func NewRenderer(sites []string) *Renderer {
	colors := make(map[string]drawing.Color, len(sites))
	for i, s := range sites {
		colors[s] = palette[i%len(palette)]
	}
	return &Renderer{Width: DefaultWidth, Height: DefaultHeight, colors: colors}
}

func (r *Renderer) siteColor(site string) drawing.Color {
	if c, ok := r.colors[site]; ok {
		return c
	}
	return chart.ColorAlternateGray
}

// OutcomePie draws dist as a pie with "label pct%" slice captions.
// An empty distribution renders a placeholder instead of failing.
func (r *Renderer) OutcomePie(w io.Writer, title string, dist domain.Distribution) error {
	total := dist.Total()
	if total == 0 {
		return r.placeholder(w, title)
	}

	values := make([]chart.Value, 0, len(dist))
	for _, k := range dist.Keys() {
		n := dist[k]
		if n == 0 {
			continue
		}
		color, ok := outcomeColors[k]
		if !ok {
			color = r.siteColor(k)
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", k, 100*float64(n)/float64(total)),
			Value: float64(n),
			Style: chart.Style{FillColor: color, StrokeColor: drawing.ColorWhite, StrokeWidth: 2},
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.SVG, &buf); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// PayloadScatter plots payload mass against outcome, one colored series per site.
// xRange fixes the x axis so the plot does not jump as points are filtered out.
func (r *Renderer) PayloadScatter(w io.Writer, rows []domain.LaunchRecord, xRange domain.PayloadRange) error {
	if len(rows) == 0 {
		return r.placeholder(w, ScatterTitle)
	}

	bySite := map[string]*chart.ContinuousSeries{}
	var order []string
	for _, row := range rows {
		s, ok := bySite[row.LaunchSite]
		if !ok {
			s = &chart.ContinuousSeries{
				Name:  row.LaunchSite,
				Style: pointStyle(r.siteColor(row.LaunchSite)),
			}
			bySite[row.LaunchSite] = s
			order = append(order, row.LaunchSite)
		}
		s.XValues = append(s.XValues, row.PayloadMassKg)
		s.YValues = append(s.YValues, float64(row.Outcome))
	}

	series := make([]chart.Series, 0, len(order))
	for _, site := range order {
		series = append(series, *bySite[site])
	}

	lo, hi := xRange.Low, xRange.High
	if hi <= lo {
		lo, hi = lo-500, hi+500
	}
	xr := &chart.ContinuousRange{Min: lo, Max: hi}
	yr := &chart.ContinuousRange{Min: -0.5, Max: 1.5}

	graph := chart.Chart{
		Title:      ScatterTitle,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Payload Mass (kg)",
			Range:          xr,
			ValueFormatter: kgFormatter,
		},
		YAxis: chart.YAxis{
			Name:  "Launch Outcome",
			Range: yr,
			Ticks: []chart.Tick{
				{Value: 0, Label: domain.OutcomeFailure.Label()},
				{Value: 1, Label: domain.OutcomeSuccess.Label()},
			},
		},
		Series: series,
	}

	// go-chart hands elements the final plot box; keep it to place the hover targets.
	var plot chart.Box
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
		func(_ chart.Renderer, canvas chart.Box, _ chart.Style) { plot = canvas },
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return fmt.Errorf("render scatter chart: %w", err)
	}

	svg := buf.String()
	end := strings.LastIndex(svg, "</svg>")
	if end < 0 {
		return fmt.Errorf("render scatter chart: missing closing svg tag")
	}
	_, err := io.WriteString(w, svg[:end]+pointHints(rows, plot, xr, yr)+svg[end:])
	return err
}

// pointHints overlays an invisible circle with a <title> on every plotted
// point so a browser shows the booster version on hover. Coordinates follow
// go-chart's own dot placement.
func pointHints(rows []domain.LaunchRecord, plot chart.Box, xr, yr *chart.ContinuousRange) string {
	var b strings.Builder
	b.WriteString(`<g class="point-hints" fill="#000000" fill-opacity="0">`)
	for _, row := range rows {
		if row.PayloadMassKg < xr.Min || row.PayloadMassKg > xr.Max {
			continue
		}
		x := plot.Left + xr.Translate(row.PayloadMassKg)
		y := plot.Bottom - yr.Translate(float64(row.Outcome))
		fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="8"><title>%s</title></circle>`, x, y, html.EscapeString(pointLabel(row)))
	}
	b.WriteString(`</g>`)
	return b.String()
}

// pointLabel is the hover text for one launch on the scatter chart.
func pointLabel(row domain.LaunchRecord) string {
	return fmt.Sprintf("%s | %s kg | %s | %s",
		row.BoosterVersion, strconv.FormatFloat(row.PayloadMassKg, 'f', -1, 64), row.Outcome.Label(), row.LaunchSite)
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    6,
		DotColor:    col,
	}
}

func kgFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return ""
}

// placeholder writes a titled, empty SVG. go-chart refuses to render charts
// without values, so the empty state is drawn by hand.
func (r *Renderer) placeholder(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
			`<text x="50%%" y="32" text-anchor="middle" font-family="Arial, sans-serif" font-size="18" fill="#003366">%s</text>`+
			`<text x="50%%" y="50%%" text-anchor="middle" font-family="Arial, sans-serif" font-size="14" fill="#999999">%s</text>`+
			`</svg>`,
		r.Width, r.Height, r.Width, r.Height, html.EscapeString(title), emptyMessage,
	)
	return err
}
