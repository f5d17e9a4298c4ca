package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists evaluation history to a SQLite database.
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

	// WAL mode so ad-hoc reads don't block the bot's writes.
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
		`CREATE TABLE IF NOT EXISTS cycles (
			id               TEXT PRIMARY KEY,
			timestamp        INTEGER NOT NULL,
			data_date        TEXT NOT NULL,
			value            REAL,
			triggered_count  INTEGER,
			seasonal_samples INTEGER,
			seasonal_mean    REAL,
			notified         INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_ts ON cycles(timestamp)`,

		`CREATE TABLE IF NOT EXISTS window_results (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			cycle_id TEXT NOT NULL,
			label    TEXT,
			days     INTEGER,
			mode     TEXT,
			rank     INTEGER,
			quantile REAL,
			hit      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_window_cycle ON window_results(cycle_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordCycle stores one evaluation cycle and its per-window results atomically.
func (r *SQLiteRecorder) RecordCycle(rec *CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO cycles
		(id, timestamp, data_date, value, triggered_count, seasonal_samples, seasonal_mean, notified)
		VALUES (?,?,?,?,?,?,?,?)`,
		rec.ID, time.Now().Unix(), rec.DataDate.Format("2006-01-02"), rec.Value,
		rec.TriggeredCount, rec.SeasonalSamples, rec.SeasonalMean, rec.Notified,
	)
	if err != nil {
		return fmt.Errorf("insert cycle: %w", err)
	}

	for _, w := range rec.Windows {
		if _, err := tx.Exec(`INSERT INTO window_results
			(cycle_id, label, days, mode, rank, quantile, hit)
			VALUES (?,?,?,?,?,?,?)`,
			rec.ID, w.Label, w.Days, w.Mode, w.Rank, w.Quantile, w.Hit,
		); err != nil {
			return fmt.Errorf("insert window result: %w", err)
		}
	}

	return tx.Commit()
}

// LastCycle returns the most recently recorded cycle, or nil when the table is empty.
func (r *SQLiteRecorder) LastCycle() (*CycleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := &CycleRecord{}
	var dataDate string
	err := r.db.QueryRow(`SELECT id, data_date, value, triggered_count, seasonal_samples, seasonal_mean, notified
		FROM cycles ORDER BY timestamp DESC LIMIT 1`).Scan(
		&rec.ID, &dataDate, &rec.Value, &rec.TriggeredCount,
		&rec.SeasonalSamples, &rec.SeasonalMean, &rec.Notified,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last cycle: %w", err)
	}
	if d, perr := time.Parse("2006-01-02", dataDate); perr == nil {
		rec.DataDate = d
	}

	rows, err := r.db.Query(`SELECT label, days, mode, rank, quantile, hit
		FROM window_results WHERE cycle_id = ? ORDER BY days`, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("query window results: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var w WindowRow
		if err := rows.Scan(&w.Label, &w.Days, &w.Mode, &w.Rank, &w.Quantile, &w.Hit); err != nil {
			return nil, fmt.Errorf("scan window result: %w", err)
		}
		rec.Windows = append(rec.Windows, w)
	}
	return rec, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
