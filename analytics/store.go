package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists page views in SQLite.
type Store struct {
	db *sql.DB
}

// Totals is the aggregate view returned to the admin stats endpoint.
type Totals struct {
	TotalViews     int        `json:"total_views"`
	UniqueVisitors int        `json:"unique_visitors"`
	TopPages       []PageStat `json:"top_pages"`
}

// PageStat is one path's view count.
type PageStat struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// NewStore opens (or creates) the analytics database.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create analytics dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			path TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
		CREATE INDEX IF NOT EXISTS idx_visits_visitor_id ON visits(visitor_id);
		CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(path, visitorID string) error {
	_, err := s.db.Exec(
		"INSERT INTO visits (visitor_id, path, timestamp) VALUES (?, ?, ?)",
		visitorID, path, time.Now().UTC(),
	)
	return err
}

// Totals aggregates all recorded views.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	row := s.db.QueryRow("SELECT COUNT(*), COUNT(DISTINCT visitor_id) FROM visits")
	if err := row.Scan(&t.TotalViews, &t.UniqueVisitors); err != nil {
		return Totals{}, err
	}

	rows, err := s.db.Query(
		"SELECT path, COUNT(*) AS views FROM visits GROUP BY path ORDER BY views DESC LIMIT 10",
	)
	if err != nil {
		return Totals{}, err
	}
	defer rows.Close()

	t.TopPages = []PageStat{}
	for rows.Next() {
		var p PageStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return Totals{}, err
		}
		t.TopPages = append(t.TopPages, p)
	}
	return t, rows.Err()
}

// GetSetting returns a settings value, or empty string when unset.
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting stores a settings value, replacing any previous one.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}
