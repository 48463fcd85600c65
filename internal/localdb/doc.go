// Package localdb implements the offline data layer for the inventory
// admin application: JSON-array CRUD over named logical tables, a
// singleton session record, and read-time relational enrichment.
//
// Each logical table is stored under a namespaced key in the injected
// kvstore.KV as a JSON array of rows, newest first. Rows are loosely
// typed record.Objects - the store enforces no schema.
//
// Invariants:
//   - every row gets a unique string id at insert (uuid, with a
//     non-failing fallback generator)
//   - created_at is set once at insert and never changed
//   - updated_at is refreshed on every insert and update
//   - enrichment is computed at read time and never persisted
//
// Corrupt table payloads decode as an empty table rather than an error;
// KV-level I/O failures propagate to the caller.
package localdb
