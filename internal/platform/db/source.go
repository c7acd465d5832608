package db

import "strings"

// Kind classifies a DATA_SOURCE value.
type Kind int

const (
	KindFile Kind = iota
	KindSQLite
	KindPostgres
)

// ParseSource splits a DATA_SOURCE value into its kind and the driver-level
// location: a file path, a SQLite path, or a Postgres URL.
func ParseSource(source string) (Kind, string) {
	s := strings.TrimSpace(source)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return KindPostgres, s
	case strings.HasPrefix(lower, "sqlite://"):
		return KindSQLite, s[len("sqlite://"):]
	default:
		return KindFile, s
	}
}
