package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"spacex-launch-dashboard/internal/adapters/repositories"
	"spacex-launch-dashboard/internal/adapters/tabular"
	"spacex-launch-dashboard/internal/config"
	"spacex-launch-dashboard/internal/platform/db"
	"spacex-launch-dashboard/internal/services"

	"github.com/spf13/cobra"
)

var importFlags struct {
	file        string
	sqlitePath  string
	databaseURL string
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate a launch records file and load it into a SQL table",
	RunE:  runImport,
}

func init() {
	f := importCmd.Flags()
	f.StringVar(&importFlags.file, "file", config.Get("SEED_PATH", "data/spacex_launch_dash.csv"), "CSV or XLSX file to import")
	f.StringVar(&importFlags.sqlitePath, "sqlite", "", "SQLite database file to write")
	f.StringVar(&importFlags.databaseURL, "database-url", config.Get("DATABASE_URL", ""), "Postgres URL to write")
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	conn, repo, err := openTarget(importFlags.sqlitePath, importFlags.databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Load through the store so the import applies the same validation as the server.
	store, err := services.LoadStore(ctx, tabular.NewFileSource(importFlags.file), services.StoreOptions{})
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	log.Println("Writing launch records...")
	if err := repo.SaveLaunches(ctx, store.Records().Records()); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d launch records from %s\n", store.Records().Len(), importFlags.file)
	return nil
}

func openTarget(sqlitePath, databaseURL string) (*sql.DB, *repositories.SQLLaunchRepository, error) {
	sqlitePath = strings.TrimSpace(sqlitePath)
	databaseURL = strings.TrimSpace(databaseURL)

	switch {
	case sqlitePath != "" && databaseURL != "":
		return nil, nil, errors.New("import: use either --sqlite or --database-url, not both")
	case sqlitePath != "":
		conn, err := db.OpenSQLite(sqlitePath)
		if err != nil {
			return nil, nil, err
		}
		return conn, repositories.NewSqliteLaunchRepository(conn, "sqlite://"+sqlitePath), nil
	case databaseURL != "":
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return conn, repositories.NewPostgresLaunchRepository(conn, "postgres"), nil
	default:
		return nil, nil, errors.New("import: one of --sqlite or --database-url (or DATABASE_URL) is required")
	}
}
