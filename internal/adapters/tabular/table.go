package tabular

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"spacex-launch-dashboard/internal/domain"
)

// Source column headers.
const (
	ColumnLaunchSite     = "Launch Site"
	ColumnPayloadMass    = "Payload Mass (kg)"
	ColumnClass          = "class"
	ColumnBoosterVersion = "Booster Version"
)

var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterVersion,
}

// parseTable converts a header row plus data rows into launch records.
// Extra columns are ignored; blank lines are skipped.
func parseTable(source string, rows [][]string) ([]domain.LaunchRecord, error) {
	if len(rows) == 0 {
		return nil, &domain.DataLoadError{Source: source, Err: errors.New("no header row")}
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, &domain.DataLoadError{Source: source, Column: c, Err: errors.New("required column missing")}
		}
	}

	records := make([]domain.LaunchRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		rowNum := i + 1

		cell := func(col string) string {
			j := idx[col]
			if j >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[j])
		}

		site := cell(ColumnLaunchSite)
		if site == "" {
			return nil, &domain.DataLoadError{Source: source, Row: rowNum, Column: ColumnLaunchSite, Err: errors.New("empty value")}
		}

		payload, err := parsePayload(cell(ColumnPayloadMass))
		if err != nil {
			return nil, &domain.DataLoadError{Source: source, Row: rowNum, Column: ColumnPayloadMass, Err: err}
		}

		outcome, err := parseClass(cell(ColumnClass))
		if err != nil {
			return nil, &domain.DataLoadError{Source: source, Row: rowNum, Column: ColumnClass, Err: err}
		}

		records = append(records, domain.LaunchRecord{
			Index:          len(records),
			LaunchSite:     site,
			PayloadMassKg:  payload,
			Outcome:        outcome,
			BoosterVersion: cell(ColumnBoosterVersion),
		})
	}

	return records, nil
}

func parsePayload(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric payload %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("payload %q must be a finite non-negative number", s)
	}
	return v, nil
}

// parseClass accepts 0/1 and their float spellings (spreadsheets often write 1.0).
func parseClass(s string) (domain.Outcome, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric class %q", s)
	}
	o := domain.Outcome(v)
	if float64(o) != v || !o.Valid() {
		return 0, fmt.Errorf("class %q must be 0 or 1", s)
	}
	return o, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
