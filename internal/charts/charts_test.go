package charts

import (
	"bytes"
	"strings"
	"testing"

	"spacex-launch-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sites = []string{"CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"}

func TestOutcomePieRendersSVG(t *testing.T) {
	var buf bytes.Buffer
	dist := domain.Distribution{"CCAFS LC-40": 2, "KSC LC-39A": 1}

	require.NoError(t, NewRenderer(sites).OutcomePie(&buf, "Total Successful Launches by Site", dist))

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<svg"), "expected svg output")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "33.3%")
}

func TestOutcomePieSingleSlice(t *testing.T) {
	var buf bytes.Buffer
	dist := domain.Distribution{"success": 4, "failure": 0}

	require.NoError(t, NewRenderer(sites).OutcomePie(&buf, "Successful Launches for X", dist))
	assert.Contains(t, buf.String(), "<svg")
	assert.NotContains(t, buf.String(), emptyMessage)
}

func TestEmptyInputsRenderPlaceholder(t *testing.T) {
	r := NewRenderer(sites)

	var pie bytes.Buffer
	require.NoError(t, r.OutcomePie(&pie, "Successful Launches for <nowhere>", domain.Distribution{}))
	assert.Contains(t, pie.String(), emptyMessage)
	assert.Contains(t, pie.String(), "&lt;nowhere&gt;")

	var scatter bytes.Buffer
	require.NoError(t, r.PayloadScatter(&scatter, nil, domain.PayloadRange{Low: 0, High: 10}))
	assert.Contains(t, scatter.String(), emptyMessage)
	assert.Contains(t, scatter.String(), ScatterTitle)
}

func TestPayloadScatterRendersSeriesPerSite(t *testing.T) {
	rows := []domain.LaunchRecord{
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 500, Outcome: domain.OutcomeSuccess},
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 2000, Outcome: domain.OutcomeFailure},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 1500, Outcome: domain.OutcomeSuccess},
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(sites).PayloadScatter(&buf, rows, domain.PayloadRange{Low: 0, High: 2000}))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "KSC LC-39A")
	assert.Contains(t, out, "success")
}

func TestPayloadScatterAnnotatesBoosterVersion(t *testing.T) {
	rows := []domain.LaunchRecord{
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 2000, Outcome: domain.OutcomeFailure, BoosterVersion: "F9 v1.0  B0004"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 1500, Outcome: domain.OutcomeSuccess, BoosterVersion: "F9 FT <B1031.1>"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(sites).PayloadScatter(&buf, rows, domain.PayloadRange{Low: 1000, High: 2000}))

	out := buf.String()
	assert.Contains(t, out, `class="point-hints"`)
	assert.Contains(t, out, "<title>F9 v1.0  B0004 | 2000 kg | failure | CCAFS LC-40</title>")
	assert.Contains(t, out, "F9 FT &lt;B1031.1&gt;")
	assert.Equal(t, 2, strings.Count(out, "<title>"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</g></svg>"), "hints must sit inside the svg root")
}

func TestPayloadScatterDegenerateRange(t *testing.T) {
	rows := []domain.LaunchRecord{{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 9600, Outcome: domain.OutcomeSuccess}}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(sites).PayloadScatter(&buf, rows, domain.PayloadRange{Low: 9600, High: 9600}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestUnknownSiteFallsBackToGray(t *testing.T) {
	r := NewRenderer(sites)
	assert.Equal(t, palette[0], r.siteColor("CCAFS LC-40"))
	assert.Equal(t, palette[3], r.siteColor("VAFB SLC-4E"))
	assert.NotEqual(t, palette[0], r.siteColor("Boca Chica"))
}
