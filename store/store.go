package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a code id is unknown or its image file is
// no longer on disk.
var ErrNotFound = errors.New("code not found")

// Code is one generated QR code kept in the archive.
type Code struct {
	ID        string `json:"id"`
	Link      string `json:"link"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"created_at"`
}

// Store manages SQLite records of generated codes plus their PNG files,
// which live next to the database, one per code id.
type Store struct {
	db  *sql.DB
	dir string
}

const createCodesTable = `
CREATE TABLE IF NOT EXISTS codes (
    id TEXT PRIMARY KEY,
    link TEXT NOT NULL,
    size INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);
`

const createIndexes = `
CREATE INDEX IF NOT EXISTS idx_codes_created_at ON codes(created_at);
`

// New opens (or creates) the SQLite database inside dir, initialises the
// schema, and returns a ready-to-use Store.
func New(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, "qrgen.db")
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, stmt := range []string{createCodesTable, createIndexes} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec schema statement: %w", err)
		}
	}

	return &Store{db: db, dir: dir}, nil
}

// Save writes the PNG to disk and records the code, returning its new id.
func (s *Store) Save(link string, size int, png []byte) (string, error) {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	path := s.imagePath(id)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write png: %w", err)
	}

	const query = `INSERT INTO codes (id, link, size, created_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.Exec(query, id, link, size, time.Now().Unix()); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("save code: %w", err)
	}
	return id, nil
}

// Get returns the record for id, or ErrNotFound.
func (s *Store) Get(id string) (*Code, error) {
	const query = `SELECT id, link, size, created_at FROM codes WHERE id = ?`

	var c Code
	err := s.db.QueryRow(query, id).Scan(&c.ID, &c.Link, &c.Size, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get code: %w", err)
	}
	return &c, nil
}

// ImagePath returns the on-disk PNG path for id. The id must exist in the
// database and the file must still be present.
func (s *Store) ImagePath(id string) (string, error) {
	if id == "" {
		return "", ErrNotFound
	}
	if _, err := s.Get(id); err != nil {
		return "", err
	}
	path := s.imagePath(id)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// Count returns how many codes are currently stored.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM codes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count codes: %w", err)
	}
	return n, nil
}

// DeleteOlderThan removes codes created before cutoff, image files
// included, and reports how many were removed. A file that is already
// gone does not fail the sweep.
func (s *Store) DeleteOlderThan(cutoff time.Time) (int, error) {
	rows, err := s.db.Query(`SELECT id FROM codes WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("select expired codes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan code id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate code ids: %w", err)
	}

	for _, id := range ids {
		if err := os.Remove(s.imagePath(id)); err != nil && !os.IsNotExist(err) {
			return 0, fmt.Errorf("remove png for %s: %w", id, err)
		}
		if _, err := s.db.Exec(`DELETE FROM codes WHERE id = ?`, id); err != nil {
			return 0, fmt.Errorf("delete code %s: %w", id, err)
		}
	}
	return len(ids), nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) imagePath(id string) string {
	return filepath.Join(s.dir, id+".png")
}
