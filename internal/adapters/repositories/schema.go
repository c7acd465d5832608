package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the launch_records schema. The statements are valid for both
// SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLaunchRecordsQuery := `
	CREATE TABLE IF NOT EXISTS launch_records (
		row_id INTEGER PRIMARY KEY,
		launch_site TEXT NOT NULL,
		payload_mass_kg DOUBLE PRECISION NOT NULL CHECK (payload_mass_kg >= 0),
		outcome INTEGER NOT NULL CHECK (outcome IN (0, 1)),
		booster_version TEXT NOT NULL DEFAULT ''
	);
	`

	createSiteIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_launch_records_site
	ON launch_records(launch_site);
	`

	statements := []string{
		createLaunchRecordsQuery,
		createSiteIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
