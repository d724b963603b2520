package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// GetRefs returns the cached raw references for a file, provided its mtime
// and size still match the stamp stored at extraction time. The second
// result is false on a miss or a stale entry.
func (c *Cache) GetRefs(absPath string, mtimeNS, size int64) ([]string, bool, error) {
	var storedMtime, storedSize int64
	var refsJSON string
	err := c.db.QueryRow(
		"SELECT mtime_ns, size, refs_json FROM refs WHERE abs_path = ?",
		absPath,
	).Scan(&storedMtime, &storedSize, &refsJSON)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get refs %s: %w", absPath, err)
	}
	if storedMtime != mtimeNS || storedSize != size {
		return nil, false, nil
	}

	var refs []string
	if err := json.Unmarshal([]byte(refsJSON), &refs); err != nil {
		return nil, false, fmt.Errorf("decode refs %s: %w", absPath, err)
	}
	return refs, true, nil
}

// PutRefs stores the raw references for a file along with its current
// mtime and size stamp, replacing any previous entry.
func (c *Cache) PutRefs(absPath string, mtimeNS, size int64, refs []string) error {
	if refs == nil {
		refs = []string{}
	}
	refsJSON, err := json.Marshal(refs)
	if err != nil {
		return fmt.Errorf("encode refs %s: %w", absPath, err)
	}
	_, err = c.db.Exec(`
		INSERT OR REPLACE INTO refs (abs_path, mtime_ns, size, refs_json, stored_at)
		VALUES (?, ?, ?, ?, ?)`,
		absPath, mtimeNS, size, string(refsJSON), time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put refs %s: %w", absPath, err)
	}
	return nil
}

// PruneStale removes entries for files no longer in the provided set.
func (c *Cache) PruneStale(validPaths map[string]bool) (int, error) {
	rows, err := c.db.Query("SELECT abs_path FROM refs")
	if err != nil {
		return 0, fmt.Errorf("query refs: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return 0, fmt.Errorf("scan row: %w", err)
		}
		if !validPaths[p] {
			stale = append(stale, p)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate rows: %w", err)
	}

	for _, p := range stale {
		if _, err := c.db.Exec("DELETE FROM refs WHERE abs_path = ?", p); err != nil {
			return 0, fmt.Errorf("delete entry %s: %w", p, err)
		}
	}
	return len(stale), nil
}
