package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"CoastWatch/internal/model"
)

// SQLiteRecorder appends analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tooling can read while a pass is writing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			category        TEXT,
			correlation     REAL,
			years_analyzed  INTEGER,
			landing_records INTEGER,
			water_records   INTEGER,
			grand_total     INTEGER,
			interpretation  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS yearly_series (
			id                   INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp            INTEGER NOT NULL,
			category             TEXT,
			year                 INTEGER,
			fish_pounds          INTEGER,
			avg_dissolved_oxygen REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_yearly_ts ON yearly_series(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(snap *RunSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_runs
		(timestamp, category, correlation, years_analyzed,
		 landing_records, water_records, grand_total, interpretation)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Category, snap.Correlation, snap.YearsAnalyzed,
		snap.LandingRecords, snap.WaterRecords, snap.GrandTotal, snap.Interpretation,
	)
	return err
}

func (r *SQLiteRecorder) RecordYearlyRows(category string, rows []model.YearRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, row := range rows {
		if _, err := r.db.Exec(`INSERT INTO yearly_series
			(timestamp, category, year, fish_pounds, avg_dissolved_oxygen)
			VALUES (?,?,?,?,?)`,
			now, category, row.Year, row.FishPounds, row.AvgDissolvedOxygen,
		); err != nil {
			return fmt.Errorf("insert year %d: %w", row.Year, err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
