package colorstore

import (
	"context"
)

// Key identifies a color record by its three components. Components are
// small non-negative integers; the domain permits values up to 999, a
// deliberately wider range than the usual 8-bit channels. The store does
// not range-check keys itself; callers such as the resolver validate
// before touching storage.
type Key struct {
	R int
	G int
	B int
}

// Record is a named color stored under its Key. Records are whole-row
// upserted; there are no partial updates.
type Record struct {
	Key  Key
	Name string
}

// Match is a single similarity-scan result. Distance is the Manhattan
// distance between the matched key and the scan center.
type Match struct {
	Key      Key
	Name     string
	Distance int
}

// Store defines the durable color mapping API. Implementations in this
// module use SQLite for storage; any key-value engine with point lookup,
// transactional batch writes, and a predicate scan would do.
type Store interface {
	// Get returns the name stored at key. It returns ErrNotFound when no
	// record exists; any other error indicates a storage failure.
	Get(ctx context.Context, key Key) (string, error)

	// Upsert inserts or replaces the record at key. It is idempotent:
	// re-adding the same key overwrites the previous name.
	Upsert(ctx context.Context, key Key, name string) error

	// BulkUpsert applies all records as a single transaction. A failure
	// leaves the store in its prior state; the batch is never half-applied.
	BulkUpsert(ctx context.Context, records []Record) error

	// ScanSimilar returns every record whose Manhattan distance to center
	// is at most threshold, ordered ascending by distance. Ties are broken
	// by (r, g, b) ascending so results are deterministic.
	ScanSimilar(ctx context.Context, center Key, threshold int) ([]Match, error)

	// Count reports the number of stored records.
	Count(ctx context.Context) (int, error)
}
