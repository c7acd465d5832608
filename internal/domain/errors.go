package domain

import (
	"fmt"
	"strings"
)

// DataLoadError reports a launch record source that could not be turned into a store.
// It is fatal at startup. Row is 1-based and counts data rows only; zero means the
// failure is not tied to a row.
type DataLoadError struct {
	Source string
	Row    int
	Column string
	Err    error
}

func (e *DataLoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "load launch records from %q", e.Source)
	if e.Row > 0 {
		fmt.Fprintf(&b, ": row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ": column %q", e.Column)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// InvalidQueryError reports a malformed query field (low, high, range or site).
type InvalidQueryError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid query: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid query: %s=%q %s", e.Field, e.Value, e.Reason)
}
