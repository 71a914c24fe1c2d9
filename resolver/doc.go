// Package resolver maps RGB triples to human-readable names on top of a
// colorstore.Store. Exact lookups are memoized in a bounded LRU cache,
// including negative results; any mutation writes through to the store and
// then purges the whole cache. Similarity queries bypass the cache and
// always scan the live store.
package resolver
