// Package kvstore provides the key-value backing store for localbase.
//
// The browser build of the application persists each logical table as a
// JSON string under a namespaced key in window.localStorage. This package
// is the Go-side equivalent: a small KV interface with two implementations:
//
//   - Memory: map-backed, for tests and ephemeral runs
//   - SQLite: durable single-table store with WAL mode
//
// The KV interface is injected into localdb.DB at construction, so higher
// layers never bind to a concrete store. Values are opaque strings; all
// JSON (de)serialization happens above this layer.
package kvstore
