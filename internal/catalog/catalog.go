// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog maintains a SQLite index of imported literature notes.
// The vault remains the source of truth for collision checks; the catalog
// only answers "what has been imported" queries without walking the vault.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ShangtingYou/zoteroid/pkg/types"
)

// Entry is one imported note as recorded in the catalog.
type Entry struct {
	DOI       string    `json:"doi" yaml:"doi"`
	NotePath  string    `json:"note_path" yaml:"note_path"`
	Title     string    `json:"title" yaml:"title"`
	Journal   string    `json:"journal" yaml:"journal"`
	Year      string    `json:"year" yaml:"year"`
	Authors   string    `json:"authors" yaml:"authors"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Catalog wraps the SQLite database of imported notes.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS imports (
		doi TEXT PRIMARY KEY,
		note_path TEXT NOT NULL,
		title TEXT,
		journal TEXT,
		year TEXT,
		authors TEXT,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Record upserts the catalog entry for a created note.
func (c *Catalog) Record(r types.Record, notePath string, createdAt time.Time) error {
	_, err := c.db.Exec(
		`INSERT INTO imports (doi, note_path, title, journal, year, authors, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(doi) DO UPDATE SET note_path = excluded.note_path`,
		r.DOI, notePath, r.Title, r.Journal, r.Year, r.JoinedAuthors(),
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording import %s: %w", r.DOI, err)
	}
	return nil
}

// List returns all catalog entries, most recent first.
func (c *Catalog) List() ([]Entry, error) {
	rows, err := c.db.Query(
		`SELECT doi, note_path, title, journal, year, authors, created_at
		 FROM imports ORDER BY created_at DESC, doi`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.DOI, &e.NotePath, &e.Title, &e.Journal, &e.Year, &e.Authors, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Lookup returns the entry for a DOI, or false when the DOI has not been
// imported.
func (c *Catalog) Lookup(doi string) (Entry, bool, error) {
	var e Entry
	var createdAt string
	err := c.db.QueryRow(
		`SELECT doi, note_path, title, journal, year, authors, created_at
		 FROM imports WHERE doi = ?`, doi).
		Scan(&e.DOI, &e.NotePath, &e.Title, &e.Journal, &e.Year, &e.Authors, &createdAt)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("looking up %s: %w", doi, err)
	}
	if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
		e.CreatedAt = t
	}
	return e, true, nil
}

// Summary returns a short one-line description of an entry for listings.
func (e Entry) Summary() string {
	parts := []string{e.DOI, e.Year, e.Title}
	return strings.Join(parts, "  ")
}
