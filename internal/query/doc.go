// Package query emulates the hosted backend client's fluent query API
// entirely in process, over localdb table snapshots.
//
// A Builder is bound to one table. Chained calls (Eq, Or, Order, Range,
// Select, Insert, Update, Delete, ...) only accumulate state; nothing
// reads the store until Exec. The snapshot is taken at execution time,
// so a builder constructed early still sees current data.
//
// The real client's query objects are directly awaitable; Go has no
// thenable contract, so the terminal call is explicit: Exec(ctx). Every
// other behavior matches the remote client, including its error-as-value
// convention: Exec never panics and degenerate inputs (zero-row
// mutations, unknown fields, unsupported or-operators) produce empty
// results with a nil Err, exactly as the hosted API would.
package query
