package cache

// schemaSQL defines the SQLite schema for the cache database.
// The refs table stores the raw references extracted from one file, keyed
// by absolute path and stamped with the mtime and size seen at extraction.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS refs (
    abs_path TEXT PRIMARY KEY,
    mtime_ns INTEGER NOT NULL,
    size INTEGER NOT NULL,
    refs_json TEXT NOT NULL,
    stored_at TEXT NOT NULL
);
`

// initSchema creates the database tables if they don't exist.
func (c *Cache) initSchema() error {
	_, err := c.db.Exec(schemaSQL)
	return err
}
