// Package cache provides SQLite-backed caching of extracted references
// between runs. The cache lives in .depscope/cache.db and is keyed by
// absolute path plus mtime and size, so an unchanged file skips extraction.
package cache

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Cache manages the .depscope/cache.db SQLite database. A Cache is an
// explicit object handed to the pipeline; nothing in the engine opens one
// implicitly.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the cache database in the given .depscope directory.
// It initializes the schema if the database is new.
func Open(dir string) (*Cache, error) {
	dbPath := filepath.Join(dir, "cache.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	// WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &Cache{db: db, dbPath: dbPath}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Clear removes all cached references.
func (c *Cache) Clear() error {
	if _, err := c.db.Exec("DELETE FROM refs"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.dbPath
}

// Stats returns cache statistics.
type Stats struct {
	Entries int64
}

// GetStats returns statistics about the cache contents.
func (c *Cache) GetStats() (*Stats, error) {
	var stats Stats
	if err := c.db.QueryRow("SELECT COUNT(*) FROM refs").Scan(&stats.Entries); err != nil {
		return nil, fmt.Errorf("count refs: %w", err)
	}
	return &stats, nil
}
