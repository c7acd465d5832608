package dto

type SitesResponse struct {
	Sites   []string `json:"sites"`
	Default string   `json:"default"`
}

type RangeResponse struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type SliderResponse struct {
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Step  float64   `json:"step"`
	Ticks []float64 `json:"ticks"`
}

type BoundsResponse struct {
	Bounds RangeResponse  `json:"bounds"`
	Slider SliderResponse `json:"slider"`
}

type DistributionResponse struct {
	Site    string         `json:"site"`
	Title   string         `json:"title"`
	GroupBy string         `json:"group_by"`
	Counts  map[string]int `json:"counts"`
	Total   int            `json:"total"`
}

type LaunchRowResponse struct {
	LaunchSite     string  `json:"launch_site"`
	PayloadMassKg  float64 `json:"payload_mass_kg"`
	Outcome        int     `json:"outcome"`
	OutcomeLabel   string  `json:"outcome_label"`
	BoosterVersion string  `json:"booster_version"`
}

type RowsResponse struct {
	Site  string              `json:"site"`
	Range RangeResponse       `json:"range"`
	Count int                 `json:"count"`
	Rows  []LaunchRowResponse `json:"rows"`
}

type QueryErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
}
