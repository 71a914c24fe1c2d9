// Package colorstore defines the durable color mapping API and its
// SQLite-backed implementation. It includes:
//   - Key/Record/Match model and the Store interface
//   - SQLiteStore: point lookup, upsert, transactional bulk upsert, and a
//     bounded-distance similarity scan
//   - Schema helpers to create the colors table
//   - Parsing for the "r,g,b" bulk-import mapping format
package colorstore
