package query

import (
	"github.com/roach88/localbase/internal/localdb"
	"github.com/roach88/localbase/internal/record"
)

// mode tracks what the builder resolves to at Exec time.
type mode int

const (
	modeSelect mode = iota
	modeInsert
	modeUpdate
	modeDelete
)

// Builder accumulates a lazy query against one table. All chainable
// methods return the same builder; nothing touches the store until Exec.
type Builder struct {
	db    *localdb.DB
	table string

	mode       mode
	selected   bool
	wantCount  bool
	headOnly   bool
	wantSingle bool

	filters []Predicate

	orderField string
	orderAsc   bool
	hasOrder   bool

	rangeFrom int
	rangeTo   int
	hasRange  bool

	insertRows []record.Object
	patch      record.Object
}

// NewBuilder creates a builder bound to a table.
func NewBuilder(db *localdb.DB, table string) *Builder {
	return &Builder{db: db, table: table, orderAsc: true}
}

// SelectOption tweaks Select behavior.
type SelectOption func(*Builder)

// WithCount requests the total filtered row count, ignoring Range.
func WithCount() SelectOption {
	return func(b *Builder) { b.wantCount = true }
}

// WithHead requests no row data - only the count/status.
func WithHead() SelectOption {
	return func(b *Builder) {
		b.headOnly = true
		b.wantCount = true
	}
}

// Select marks the query as returning data. For mutations this is the
// "returning" opt-in: without it, Insert/Update/Delete resolve with null
// data. The fields argument is accepted for call-site compatibility but
// full rows are always returned, as the emulation does not project.
func (b *Builder) Select(fields string, opts ...SelectOption) *Builder {
	_ = fields
	b.selected = true
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Order sets the single sort key. Ties keep the stable relative order of
// the underlying snapshot. Ascending defaults to true; pass false for
// descending.
func (b *Builder) Order(field string, ascending bool) *Builder {
	b.orderField = field
	b.orderAsc = ascending
	b.hasOrder = true
	return b
}

// Eq adds an equality filter on a (possibly dotted) field path.
func (b *Builder) Eq(field string, value any) *Builder {
	b.filters = append(b.filters, Eq{Field: field, Value: toValue(value)})
	return b
}

// Lt adds a less-than filter.
func (b *Builder) Lt(field string, value any) *Builder {
	b.filters = append(b.filters, Lt{Field: field, Value: toValue(value)})
	return b
}

// Lte adds a less-than-or-equal filter.
func (b *Builder) Lte(field string, value any) *Builder {
	b.filters = append(b.filters, Lte{Field: field, Value: toValue(value)})
	return b
}

// Gte adds a greater-than-or-equal filter.
func (b *Builder) Gte(field string, value any) *Builder {
	b.filters = append(b.filters, Gte{Field: field, Value: toValue(value)})
	return b
}

// Or adds a multi-clause OR filter from a comma-separated
// "field.op.value" expression. See ParseOr.
func (b *Builder) Or(expr string) *Builder {
	b.filters = append(b.filters, ParseOr(expr))
	return b
}

// Range applies inclusive-bounds pagination after filtering and
// ordering.
func (b *Builder) Range(from, to int) *Builder {
	b.rangeFrom = from
	b.rangeTo = to
	b.hasRange = true
	return b
}

// Single marks that exactly one row (or null) is returned instead of an
// array.
func (b *Builder) Single() *Builder {
	b.wantSingle = true
	return b
}

// Insert switches the builder into insert mode with the rows to create.
func (b *Builder) Insert(rows ...record.Object) *Builder {
	b.mode = modeInsert
	b.insertRows = rows
	return b
}

// Update switches the builder into update mode. The patch is applied to
// every row matching the accumulated filters.
func (b *Builder) Update(patch record.Object) *Builder {
	b.mode = modeUpdate
	b.patch = patch
	return b
}

// Delete switches the builder into delete mode. Every row matching the
// accumulated filters is removed.
func (b *Builder) Delete() *Builder {
	b.mode = modeDelete
	return b
}

// toValue converts a caller-supplied filter value to the record model.
// Unconvertible values become null, which keeps filtering permissive
// rather than raising.
func toValue(v any) record.Value {
	converted, err := record.FromAny(v)
	if err != nil {
		return record.Null{}
	}
	return converted
}
