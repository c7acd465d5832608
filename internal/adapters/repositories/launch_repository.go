package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"spacex-launch-dashboard/internal/domain"
)

// Dialect selects the bind parameter style of the underlying driver.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		if d == DialectPostgres {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

// SQL-backed implementation of the LaunchSource port.
// Rows are returned in row_id order, which is the order they were imported in.
type SQLLaunchRepository struct {
	DB      *sql.DB
	Dialect Dialect
	Source  string
}

func NewSqliteLaunchRepository(db *sql.DB, source string) *SQLLaunchRepository {
	return &SQLLaunchRepository{DB: db, Dialect: DialectSQLite, Source: source}
}

func NewPostgresLaunchRepository(db *sql.DB, source string) *SQLLaunchRepository {
	return &SQLLaunchRepository{DB: db, Dialect: DialectPostgres, Source: source}
}

func (s *SQLLaunchRepository) Name() string { return s.Source }

// Return all launch records stored in the database.
func (s *SQLLaunchRepository) ListLaunches(ctx context.Context) ([]domain.LaunchRecord, error) {
	if s.DB == nil {
		return nil, &domain.DataLoadError{Source: s.Source, Err: errors.New("DB is nil")}
	}

	query := `
	SELECT
		launch_site,
		payload_mass_kg,
		outcome,
		booster_version
	FROM launch_records
	ORDER BY row_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, &domain.DataLoadError{Source: s.Source, Err: fmt.Errorf("query launch_records table: %w", err)}
	}
	defer rows.Close()

	records := make([]domain.LaunchRecord, 0, 64)
	for rows.Next() {
		var site, booster string
		var payload float64
		var outcome int
		if err := rows.Scan(&site, &payload, &outcome, &booster); err != nil {
			return nil, &domain.DataLoadError{Source: s.Source, Row: len(records) + 1, Err: fmt.Errorf("scan row: %w", err)}
		}
		records = append(records, domain.LaunchRecord{
			Index:          len(records),
			LaunchSite:     site,
			PayloadMassKg:  payload,
			Outcome:        domain.Outcome(outcome),
			BoosterVersion: booster,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.DataLoadError{Source: s.Source, Err: fmt.Errorf("row iteration: %w", err)}
	}

	return records, nil
}

// Replace the table contents with records, assigning row_id from record order.
func (s *SQLLaunchRepository) SaveLaunches(ctx context.Context, records []domain.LaunchRecord) error {
	if s.DB == nil {
		return errors.New("save launches: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save launches: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM launch_records;`); err != nil {
		return fmt.Errorf("save launches: clear table: %w", err)
	}

	query := fmt.Sprintf(`
	INSERT INTO launch_records (
		row_id,
		launch_site,
		payload_mass_kg,
		outcome,
		booster_version
	)
	VALUES (%s);
	`, s.Dialect.placeholders(5))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("save launches: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		site := strings.TrimSpace(r.LaunchSite)
		if site == "" {
			return fmt.Errorf("save launches: record at index %d: launch site cannot be empty", i)
		}
		if !r.Outcome.Valid() {
			return fmt.Errorf("save launches: record at index %d: invalid outcome %d", i, r.Outcome)
		}

		if _, err := stmt.ExecContext(ctx, i+1, site, r.PayloadMassKg, int(r.Outcome), r.BoosterVersion); err != nil {
			return fmt.Errorf("save launches: insert row_id=%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save launches: commit tx: %w", err)
	}

	return nil
}
