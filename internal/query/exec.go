package query

import (
	"context"
	"sort"

	"github.com/roach88/localbase/internal/record"
)

// Exec resolves the accumulated query. Every operation completes
// synchronously - the context exists to honor the calling convention of
// the real, network-asynchronous client, and is only consulted for
// cancellation before resolution.
//
// Exec never panics; all failure is communicated through Result.Err.
func (b *Builder) Exec(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return Result{
			Data: record.Null{},
			Err:  &Error{Code: ErrCodeCanceled, Message: err.Error()},
		}
	}

	switch b.mode {
	case modeInsert:
		return b.execInsert()
	case modeUpdate:
		return b.execUpdate()
	case modeDelete:
		return b.execDelete()
	default:
		return b.execSelect()
	}
}

// execSelect reads the enriched snapshot, filters, counts, orders,
// slices, and materializes.
func (b *Builder) execSelect() Result {
	rows, err := b.db.GetAllEnriched(b.table)
	if err != nil {
		return storageFailure(err)
	}

	matched := b.applyFilters(rows)

	var count *int
	if b.wantCount {
		// Count reflects the filtered set before range slicing.
		n := len(matched)
		count = &n
	}

	b.applyOrder(matched)
	matched = b.applyRange(matched)

	if b.headOnly {
		return Result{Data: record.Null{}, Count: count}
	}
	return Result{Data: b.materialize(matched), Count: count}
}

// execInsert stores each input row and returns them enriched when
// Select was called, mirroring the remote client's opt-in returning.
func (b *Builder) execInsert() Result {
	inserted := make([]record.Object, 0, len(b.insertRows))
	for _, row := range b.insertRows {
		stored, err := b.db.Insert(b.table, row)
		if err != nil {
			return storageFailure(err)
		}
		enriched, err := b.db.Enrich(b.table, stored)
		if err != nil {
			return storageFailure(err)
		}
		inserted = append(inserted, enriched)
	}

	if !b.selected {
		return Result{Data: record.Null{}}
	}
	return Result{Data: b.materialize(inserted)}
}

// execUpdate resolves matching ids against the enriched snapshot (so
// filters may use joined fields like "material.name"), then patches each
// matched row by id. Zero matches is not an error.
func (b *Builder) execUpdate() Result {
	ids, err := b.matchingIDs()
	if err != nil {
		return storageFailure(err)
	}

	updated := make([]record.Object, 0, len(ids))
	for _, id := range ids {
		merged, err := b.db.Update(b.table, id, b.patch)
		if err != nil {
			return storageFailure(err)
		}
		if merged == nil {
			// Row vanished between snapshot and write; treat as zero-match.
			continue
		}
		enriched, err := b.db.Enrich(b.table, merged)
		if err != nil {
			return storageFailure(err)
		}
		updated = append(updated, enriched)
	}

	if !b.selected {
		return Result{Data: record.Null{}}
	}
	return Result{Data: b.materialize(updated)}
}

// execDelete removes every matching row by id. The pre-deletion snapshot
// of matched rows is what Select returns.
func (b *Builder) execDelete() Result {
	rows, err := b.db.GetAllEnriched(b.table)
	if err != nil {
		return storageFailure(err)
	}
	matched := b.applyFilters(rows)

	for _, row := range matched {
		if _, err := b.db.Delete(b.table, record.GetString(row, "id")); err != nil {
			return storageFailure(err)
		}
	}

	if !b.selected {
		return Result{Data: record.Null{}}
	}
	return Result{Data: b.materialize(matched)}
}

// applyFilters keeps rows satisfying every accumulated predicate (AND
// across distinct filter calls).
func (b *Builder) applyFilters(rows []record.Object) []record.Object {
	if len(b.filters) == 0 {
		return rows
	}
	matched := make([]record.Object, 0, len(rows))
	for _, row := range rows {
		ok := true
		for _, p := range b.filters {
			if !p.Matches(row) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return matched
}

// matchingIDs evaluates the filters against the enriched snapshot and
// returns the matched row ids in snapshot order.
func (b *Builder) matchingIDs() ([]string, error) {
	rows, err := b.db.GetAllEnriched(b.table)
	if err != nil {
		return nil, err
	}
	matched := b.applyFilters(rows)

	ids := make([]string, 0, len(matched))
	for _, row := range matched {
		ids = append(ids, record.GetString(row, "id"))
	}
	return ids, nil
}

// applyOrder sorts in place by the single order key. Stable, so ties
// keep the snapshot's relative order. No-op without an Order call.
func (b *Builder) applyOrder(rows []record.Object) {
	if !b.hasOrder {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := record.Compare(
			fieldOrEmpty(rows[i], b.orderField),
			fieldOrEmpty(rows[j], b.orderField),
		)
		if b.orderAsc {
			return cmp < 0
		}
		return cmp > 0
	})
}

// applyRange slices the inclusive [from, to] window. Out-of-bounds
// bounds clamp rather than erroring.
func (b *Builder) applyRange(rows []record.Object) []record.Object {
	if !b.hasRange {
		return rows
	}
	from := b.rangeFrom
	if from < 0 {
		from = 0
	}
	if from >= len(rows) {
		return []record.Object{}
	}
	to := b.rangeTo + 1
	if to > len(rows) {
		to = len(rows)
	}
	if to <= from {
		return []record.Object{}
	}
	return rows[from:to]
}

// materialize renders the final data shape: a single row (or null) when
// Single was set, else an array.
func (b *Builder) materialize(rows []record.Object) record.Value {
	if b.wantSingle {
		if len(rows) == 0 {
			return record.Null{}
		}
		return rows[0]
	}
	arr := make(record.Array, len(rows))
	for i, row := range rows {
		arr[i] = row
	}
	return arr
}
