package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/LavenderBridge/jazzdrill/internal/models"
)

// Registered database/sql driver names.
const (
	DriverCGO  = "sqlite3" // github.com/mattn/go-sqlite3
	DriverPure = "sqlite"  // modernc.org/sqlite
)

// DefaultProfile is used when no profile is configured.
const DefaultProfile = "default"

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// DefaultPath is ~/.jazzdrill/jazzdrill.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".jazzdrill", "jazzdrill.db"), nil
}

// NewStore opens the default database with the cgo driver.
func NewStore() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(DriverCGO, path)
}

// Open opens or creates the database at path. ":memory:" is accepted.
func Open(driver, path string) (*Store, error) {
	if driver != DriverCGO && driver != DriverPure {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("cannot create data directory: %w", err)
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, err
	}
	// One connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS snapshots (
		profile TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		payload TEXT NOT NULL,
		saved_at TEXT NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		return err
	}

	queryReviews := `
	CREATE TABLE IF NOT EXISTS reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL DEFAULT 'default',
		mode TEXT NOT NULL,
		item TEXT NOT NULL,
		correct INTEGER NOT NULL,
		response_ms INTEGER NOT NULL,
		ease_factor REAL NOT NULL,
		interval_days REAL NOT NULL,
		reviewed_at TEXT NOT NULL
	);
	`
	if _, err := db.Exec(queryReviews); err != nil {
		return err
	}

	_, err := db.Exec(`CREATE INDEX IF NOT EXISTS reviews_profile_mode ON reviews (profile, mode)`)
	return err
}

// SaveSnapshot replaces the profile's snapshot.
func (s *Store) SaveSnapshot(profile string, snap *models.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = s.now()
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshots (profile, version, payload, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET version=excluded.version, payload=excluded.payload, saved_at=excluded.saved_at`,
		profile, snap.Version, string(payload), formatTime(savedAt),
	)
	return err
}

// LoadSnapshot returns the profile's snapshot or models.ErrNoSnapshot.
func (s *Store) LoadSnapshot(profile string) (*models.Snapshot, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM snapshots WHERE profile = ?", profile).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}

	snap := models.NewSnapshot()
	if err := json.Unmarshal([]byte(payload), snap); err != nil {
		return nil, fmt.Errorf("decode snapshot for %q: %w", profile, err)
	}
	snap.Normalize()
	return snap, nil
}

// DeleteProfile removes the profile's snapshot and review log.
func (s *Store) DeleteProfile(profile string) error {
	if _, err := s.db.Exec("DELETE FROM snapshots WHERE profile=?", profile); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM reviews WHERE profile=?", profile)
	return err
}

// Profiles lists every profile with a saved snapshot.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT profile FROM snapshots ORDER BY profile ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AddReviews appends reviews to the profile's log in one transaction.
func (s *Store) AddReviews(profile string, rs []models.Review) error {
	if len(rs) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO reviews (profile, mode, item, correct, response_ms, ease_factor, interval_days, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range rs {
		if _, err := stmt.Exec(profile, r.Mode, r.Item, r.Correct, r.ResponseMS, r.EaseFactor, r.IntervalDays, formatTime(r.ReviewedAt)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert review %s: %w", r.Item, err)
		}
	}
	return tx.Commit()
}

// ListReviews returns the profile's latest reviews, newest first. An empty
// mode matches every drill; limit <= 0 means no limit.
func (s *Store) ListReviews(profile, mode string, limit int) ([]models.Review, error) {
	query := `SELECT id, mode, item, correct, response_ms, ease_factor, interval_days, reviewed_at
		FROM reviews WHERE profile = ? AND (? = '' OR mode = ?) ORDER BY reviewed_at DESC, id DESC`
	args := []any{profile, mode, mode}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Review
	for rows.Next() {
		var r models.Review
		var reviewedAt string
		if err := rows.Scan(&r.ID, &r.Mode, &r.Item, &r.Correct, &r.ResponseMS, &r.EaseFactor, &r.IntervalDays, &reviewedAt); err != nil {
			return nil, err
		}
		if r.ReviewedAt, err = parseTime(reviewedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetReviewStats summarizes the profile's review log.
func (s *Store) GetReviewStats(profile string) (*models.ReviewStats, error) {
	stats := &models.ReviewStats{
		CountByMode: make(map[string]int),
	}

	var accuracy, avgMS sql.NullFloat64
	err := s.db.QueryRow(`SELECT COUNT(*), AVG(correct), AVG(response_ms) FROM reviews WHERE profile = ?`, profile).
		Scan(&stats.TotalReviews, &accuracy, &avgMS)
	if err != nil {
		return nil, err
	}
	stats.Accuracy = accuracy.Float64
	stats.AverageResponseMS = avgMS.Float64

	cutoff := formatTime(s.now().Add(-7 * 24 * time.Hour))
	if err := s.db.QueryRow("SELECT COUNT(*) FROM reviews WHERE profile = ? AND reviewed_at > ?", profile, cutoff).Scan(&stats.ReviewsLast7Days); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT mode, COUNT(*) FROM reviews WHERE profile = ? GROUP BY mode", profile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var mode string
		var count int
		if err := rows.Scan(&mode, &count); err != nil {
			return nil, err
		}
		stats.CountByMode[mode] = count
	}

	return stats, rows.Err()
}

// Gateway binds the store to one profile.
func (s *Store) Gateway(profile string) *ProfileGateway {
	if profile == "" {
		profile = DefaultProfile
	}
	return &ProfileGateway{store: s, profile: profile}
}

// ProfileGateway persists one profile's snapshot and review log.
type ProfileGateway struct {
	store   *Store
	profile string
}

func (g *ProfileGateway) Profile() string { return g.profile }

func (g *ProfileGateway) Load() (*models.Snapshot, error) {
	return g.store.LoadSnapshot(g.profile)
}

func (g *ProfileGateway) Save(snap *models.Snapshot) error {
	return g.store.SaveSnapshot(g.profile, snap)
}

func (g *ProfileGateway) RecordReviews(rs []models.Review) error {
	return g.store.AddReviews(g.profile, rs)
}

// Timestamps are stored as fixed-width UTC text so both drivers sort and
// compare them the same way.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", s, err)
	}
	return t, nil
}
