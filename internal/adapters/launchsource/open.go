package launchsource

import (
	"spacex-launch-dashboard/internal/adapters/repositories"
	"spacex-launch-dashboard/internal/adapters/tabular"
	"spacex-launch-dashboard/internal/platform/db"
	"spacex-launch-dashboard/internal/ports"
)

// Open picks the LaunchSource for a DATA_SOURCE value: a CSV/XLSX path,
// sqlite://<path> or a postgres:// URL. The returned close func releases any
// database handle and is safe to call for file sources.
func Open(dataSource string) (ports.LaunchSource, func() error, error) {
	kind, loc := db.ParseSource(dataSource)

	switch kind {
	case db.KindSQLite:
		conn, err := db.OpenSQLite(loc)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSqliteLaunchRepository(conn, dataSource), conn.Close, nil
	case db.KindPostgres:
		conn, err := db.Open(loc)
		if err != nil {
			return nil, nil, err
		}
		// The URL may carry credentials; keep it out of logs.
		return repositories.NewPostgresLaunchRepository(conn, "postgres"), conn.Close, nil
	default:
		return tabular.NewFileSource(loc), func() error { return nil }, nil
	}
}
