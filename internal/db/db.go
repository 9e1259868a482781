package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // Import for side-effects only

	"mspro-labs/cupnote/internal/labelparser"
	"mspro-labs/cupnote/internal/models"
)

// ErrNotFound is returned when no scan matches the requested source.
var ErrNotFound = errors.New("scan not found")

// Connect opens a connection to the SQLite database and ensures the schema exists.
// It automatically applies recommended settings for concurrency (WAL mode).
func Connect(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dbPath != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Use robust connection settings to prevent "database locked" errors
	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL", dbPath)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return db, nil
}

// createSchema is private as it's only called by Connect.
func createSchema(db *sql.DB) error {
	scansTable := `
	CREATE TABLE IF NOT EXISTS scans (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  source TEXT UNIQUE NOT NULL,
	  raw_text TEXT,
	  roastery TEXT,
	  coffee_name TEXT,
	  origin TEXT,
	  variety TEXT,
	  process TEXT,
	  altitude TEXT,
	  roaster_notes TEXT,
	  farm TEXT,
	  producer TEXT,
	  harvest TEXT,
	  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	  updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scans_updated ON scans(updated_at);
	`
	_, err := db.Exec(scansTable)
	return err
}

const scanColumns = `id, source, raw_text, roastery, coffee_name, origin, variety, process,
	altitude, roaster_notes, farm, producer, harvest, created_at, updated_at`

// SaveScans performs a batch UPSERT keyed by source. Re-scanning a photo or
// page replaces its fields and bumps updated_at.
func SaveScans(db *sql.DB, scans []models.Scan) (int64, error) {
	upsertSQL := `
	INSERT INTO scans (
	  source, raw_text, roastery, coffee_name, origin, variety, process,
	  altitude, roaster_notes, farm, producer, harvest, updated_at
	) VALUES (
	  ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP
	) ON CONFLICT(source) DO UPDATE SET
	  raw_text = excluded.raw_text,
	  roastery = excluded.roastery,
	  coffee_name = excluded.coffee_name,
	  origin = excluded.origin,
	  variety = excluded.variety,
	  process = excluded.process,
	  altitude = excluded.altitude,
	  roaster_notes = excluded.roaster_notes,
	  farm = excluded.farm,
	  producer = excluded.producer,
	  harvest = excluded.harvest,
	  updated_at = CURRENT_TIMESTAMP;
	`

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, upsertSQL)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	var totalAffected int64 = 0
	for _, s := range scans {
		info := s.Info
		res, err := stmt.ExecContext(ctx,
			s.Source,
			nullString(s.RawText),
			nullString(info.Roastery),
			nullString(info.CoffeeName),
			nullString(info.Origin),
			nullString(info.Variety),
			nullString(info.Process),
			nullString(info.Altitude),
			nullString(info.RoasterNotes),
			nullString(info.Farm),
			nullString(info.Producer),
			nullString(info.Harvest),
		)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to upsert %s: %w", s.Source, err)
		}
		rows, _ := res.RowsAffected()
		totalAffected += rows
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return totalAffected, nil
}

// ListScans returns the most recently updated scans first. limit <= 0 means all.
func ListScans(db *sql.DB, limit int) ([]models.Scan, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(`SELECT `+scanColumns+` FROM scans ORDER BY updated_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []models.Scan
	for rows.Next() {
		s, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// GetScan returns the scan stored for source, or ErrNotFound.
func GetScan(db *sql.DB, source string) (models.Scan, error) {
	s, err := scanRow(db.QueryRow(`SELECT `+scanColumns+` FROM scans WHERE source = ?`, source))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Scan{}, fmt.Errorf("%s: %w", source, ErrNotFound)
	}
	return s, err
}

// DeleteScan removes the scan stored for source.
func DeleteScan(db *sql.DB, source string) error {
	res, err := db.Exec("DELETE FROM scans WHERE source = ?", source)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", source, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(r rowScanner) (models.Scan, error) {
	var (
		s      models.Scan
		fields [11]sql.NullString
	)
	dest := []any{&s.ID, &s.Source}
	for i := range fields {
		dest = append(dest, &fields[i])
	}
	dest = append(dest, &s.CreatedAt, &s.UpdatedAt)
	if err := r.Scan(dest...); err != nil {
		return models.Scan{}, err
	}

	s.RawText = fields[0].String
	s.Info = labelparser.ParsedCoffeeInfo{
		Roastery:     fields[1].String,
		CoffeeName:   fields[2].String,
		Origin:       fields[3].String,
		Variety:      fields[4].String,
		Process:      fields[5].String,
		Altitude:     fields[6].String,
		RoasterNotes: fields[7].String,
		Farm:         fields[8].String,
		Producer:     fields[9].String,
		Harvest:      fields[10].String,
	}
	return s, nil
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
