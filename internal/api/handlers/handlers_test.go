package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"spacex-launch-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) OutcomeDistribution(site string) (domain.Distribution, error) {
	args := m.Called(site)
	d, _ := args.Get(0).(domain.Distribution)
	return d, args.Error(1)
}

func (m *MockQuerier) PayloadOutcomeRows(site string, rng domain.PayloadRange) ([]domain.LaunchRecord, error) {
	args := m.Called(site, rng)
	rows, _ := args.Get(0).([]domain.LaunchRecord)
	return rows, args.Error(1)
}

type stubCatalog struct{}

func (stubCatalog) Sites() []string { return []string{"KSC LC-39A"} }

func (stubCatalog) Bounds() domain.PayloadRange { return domain.PayloadRange{Low: 0, High: 9600} }

func (stubCatalog) Slider() domain.SliderScale {
	return domain.SliderScale{Min: 0, Max: 10000, Step: 1000, Default: domain.PayloadRange{Low: 0, High: 9600}}
}

func (stubCatalog) Summary() domain.LaunchSummary { return domain.LaunchSummary{} }

type failingRenderer struct{}

func (failingRenderer) OutcomePie(io.Writer, string, domain.Distribution) error {
	return errors.New("no fonts")
}

func (failingRenderer) PayloadScatter(io.Writer, []domain.LaunchRecord, domain.PayloadRange) error {
	return errors.New("no fonts")
}

func TestRowsDefaultsToAllSitesAndBounds(t *testing.T) {
	q := &MockQuerier{}
	q.On("PayloadOutcomeRows", "ALL", domain.PayloadRange{Low: 0, High: 9600}).
		Return([]domain.LaunchRecord{}, nil).Once()

	h := &LaunchHandler{Catalog: stubCatalog{}, Querier: q}
	rec := httptest.NewRecorder()
	h.Rows(rec, httptest.NewRequest(http.MethodGet, "/api/rows", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	q.AssertExpectations(t)
}

func TestRowsUnexpectedErrorIs500(t *testing.T) {
	q := &MockQuerier{}
	q.On("PayloadOutcomeRows", "KSC LC-39A", mock.Anything).Return(nil, errors.New("boom"))

	h := &LaunchHandler{Catalog: stubCatalog{}, Querier: q}
	rec := httptest.NewRecorder()
	h.Rows(rec, httptest.NewRequest(http.MethodGet, "/api/rows?site=KSC+LC-39A", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestDistributionInvalidQueryIs400(t *testing.T) {
	q := &MockQuerier{}
	q.On("OutcomeDistribution", "").
		Return(nil, &domain.InvalidQueryError{Field: "site", Reason: "must not be empty"})

	h := &LaunchHandler{Catalog: stubCatalog{}, Querier: q}
	rec := httptest.NewRecorder()
	h.Distribution(rec, httptest.NewRequest(http.MethodGet, "/api/distribution?site=+", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"site"`)
	q.AssertExpectations(t)
}

func TestDistributionWithoutSiteSelectsAll(t *testing.T) {
	q := &MockQuerier{}
	q.On("OutcomeDistribution", "ALL").Return(domain.Distribution{"KSC LC-39A": 1}, nil).Once()

	h := &LaunchHandler{Catalog: stubCatalog{}, Querier: q}
	rec := httptest.NewRecorder()
	h.Distribution(rec, httptest.NewRequest(http.MethodGet, "/api/distribution", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	q.AssertExpectations(t)
}

type recordingRenderer struct {
	xRange domain.PayloadRange
}

func (*recordingRenderer) OutcomePie(io.Writer, string, domain.Distribution) error { return nil }

func (r *recordingRenderer) PayloadScatter(_ io.Writer, _ []domain.LaunchRecord, xRange domain.PayloadRange) error {
	r.xRange = xRange
	return nil
}

func TestScatterAxisFollowsSelectedRange(t *testing.T) {
	cases := map[string]domain.PayloadRange{
		"/charts/payload.svg?low=1000&high=2000": {Low: 1000, High: 2000},
		"/charts/payload.svg?low=oops":           {Low: 0, High: 9600},
		"/charts/payload.svg":                    {Low: 0, High: 9600},
	}
	for target, want := range cases {
		q := &MockQuerier{}
		q.On("PayloadOutcomeRows", "ALL", want).Return([]domain.LaunchRecord{}, nil).Once()

		rr := &recordingRenderer{}
		h := &ChartHandler{Catalog: stubCatalog{}, Querier: q, Renderer: rr}
		rec := httptest.NewRecorder()
		h.PayloadScatter(rec, httptest.NewRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, want, rr.xRange, target)
		q.AssertExpectations(t)
	}
}

func TestChartRenderFailureIs500(t *testing.T) {
	q := &MockQuerier{}
	q.On("OutcomeDistribution", "ALL").Return(domain.Distribution{"KSC LC-39A": 1}, nil)

	h := &ChartHandler{Catalog: stubCatalog{}, Querier: q, Renderer: failingRenderer{}}
	rec := httptest.NewRecorder()
	h.OutcomePie(rec, httptest.NewRequest(http.MethodGet, "/charts/outcomes.svg", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestParseSelection(t *testing.T) {
	bounds := domain.PayloadRange{Low: 0, High: 9600}

	sel, err := parseSelection(httptest.NewRequest(http.MethodGet, "/?site=+KSC+LC-39A+&low=1000", nil), bounds)
	require.NoError(t, err)
	assert.Equal(t, "KSC LC-39A", sel.Site)
	assert.Equal(t, domain.PayloadRange{Low: 1000, High: 9600}, sel.Range)

	sel, err = parseSelection(httptest.NewRequest(http.MethodGet, "/?high=x", nil), bounds)
	require.Error(t, err)
	assert.Equal(t, "ALL", sel.Site)
	assert.Equal(t, bounds, sel.Range)
}
