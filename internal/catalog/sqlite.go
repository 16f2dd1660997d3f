package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	appErrors "speciesfilter/internal/errors"
)

// SQLiteSource reads display names from the species table of a read-only
// SQLite database:
//
//	CREATE TABLE species (display_name TEXT NOT NULL, ...)
//
// Rows keep their insertion order; ranking is the matcher's job.
type SQLiteSource struct {
	dbPath string
	dsn    string
}

// NewSQLiteSource returns a source reading dbPath.
func NewSQLiteSource(dbPath string) *SQLiteSource {
	return &SQLiteSource{dbPath: dbPath, dsn: buildSQLiteDSN(dbPath)}
}

// buildSQLiteDSN creates a read-only DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

// Load returns every non-empty display name.
func (s *SQLiteSource) Load(ctx context.Context) ([]string, error) {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSourceReadFailed, fmt.Sprintf("open species db %s: %v", s.dbPath, err), err)
	}
	defer func() {
		_ = db.Close()
	}()
	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, `
		SELECT display_name
		FROM species
		WHERE display_name IS NOT NULL AND display_name != ''
		ORDER BY rowid
	`)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSourceReadFailed, fmt.Sprintf("query species in %s: %v", s.dbPath, err), err)
	}
	defer func() {
		_ = rows.Close()
	}()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, appErrors.New(appErrors.CodeSourceReadFailed, fmt.Sprintf("scan species name: %v", err), err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeSourceReadFailed, fmt.Sprintf("read species rows: %v", err), err)
	}
	return names, nil
}
