// Package record provides the dynamic value model for localbase rows.
//
// This package contains type definitions and traversal helpers only. All
// other internal packages import record; record imports nothing internal.
//
// A row is an Object: a loosely-typed bag of fields decoded from JSON.
// The store does not enforce a schema - validation is the caller's
// responsibility. Filtering and ordering reach into nested enriched
// fields (e.g. "material.name") via dotted-path lookup, so the value
// model must stay dynamic rather than per-table structs.
//
// Key design constraints:
//   - Value is sealed: only Null, String, Number, Bool, Array, Object
//   - Numbers are float64 (rows carry quantities and prices)
//   - All JSON field names use snake_case
package record
