package colorstore

import (
	"database/sql"
)

const colorsSchema = `
CREATE TABLE IF NOT EXISTS colors (
    r SMALLINT NOT NULL,
    g SMALLINT NOT NULL,
    b SMALLINT NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (r, g, b)
);
`

const colorsIndex = `
CREATE INDEX IF NOT EXISTS idx_rgb ON colors(r, g, b);
`

// EnsureSchema creates the colors table and its component index in the
// provided database if they do not already exist. The index is not required
// for correctness (the primary key already covers point lookups) but keeps
// the layout aligned with deployments that query components individually.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(colorsSchema); err != nil {
		return err
	}
	_, err := db.Exec(colorsIndex)
	return err
}
