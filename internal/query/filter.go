package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/roach88/localbase/internal/record"
)

// Predicate represents a filter condition accumulated on a Builder.
//
// This is a sealed interface - only types in this package implement it.
// Distinct predicates on a builder combine with AND; the clauses inside
// a single Or combine with OR.
type Predicate interface {
	predicate() // Marker method - seals interface to this package

	// Matches reports whether an enriched row satisfies the predicate.
	Matches(row record.Object) bool
}

// Eq is an equality predicate on a (possibly dotted) field path.
type Eq struct {
	Field string
	Value record.Value
}

func (Eq) predicate() {}

// Matches reports field == value. A missing field only matches an
// explicit null.
func (p Eq) Matches(row record.Object) bool {
	got, ok := record.Lookup(row, p.Field)
	if !ok {
		got = record.Null{}
	}
	return record.Equal(got, p.Value)
}

// Lt is a less-than predicate. Missing fields compare as the empty
// string, matching the permissive semantics of the emulated remote API.
type Lt struct {
	Field string
	Value record.Value
}

func (Lt) predicate() {}

func (p Lt) Matches(row record.Object) bool {
	return record.Compare(fieldOrEmpty(row, p.Field), p.Value) < 0
}

// Lte is a less-than-or-equal predicate.
type Lte struct {
	Field string
	Value record.Value
}

func (Lte) predicate() {}

func (p Lte) Matches(row record.Object) bool {
	return record.Compare(fieldOrEmpty(row, p.Field), p.Value) <= 0
}

// Gte is a greater-than-or-equal predicate.
type Gte struct {
	Field string
	Value record.Value
}

func (Gte) predicate() {}

func (p Gte) Matches(row record.Object) bool {
	return record.Compare(fieldOrEmpty(row, p.Field), p.Value) >= 0
}

// fieldOrEmpty resolves a dotted path with the empty-string default used
// by the ordering predicates.
func fieldOrEmpty(row record.Object, field string) record.Value {
	v, ok := record.Lookup(row, field)
	if !ok {
		return record.String("")
	}
	if _, isNull := v.(record.Null); isNull {
		return record.String("")
	}
	return v
}

// Or is a multi-clause OR filter parsed from the remote API's
// comma-separated "field.op.value" expression syntax. A row matches if
// ANY clause matches.
type Or struct {
	Clauses []OrClause
}

func (Or) predicate() {}

func (p Or) Matches(row record.Object) bool {
	for _, clause := range p.Clauses {
		if clause.matches(row) {
			return true
		}
	}
	return false
}

// OrClause is a single "field.op.value" clause. The only supported
// operator is ilike; any other operator evaluates to no-match rather
// than raising, keeping the emulation permissive.
type OrClause struct {
	Field string
	Op    string
	Value string
}

// caseFolder performs Unicode case folding for the case-insensitive
// ilike match.
var caseFolder = cases.Fold()

func (c OrClause) matches(row record.Object) bool {
	if c.Op != "ilike" {
		return false
	}
	needle := caseFolder.String(strings.ReplaceAll(c.Value, "%", ""))
	haystack := caseFolder.String(record.GetString(row, c.Field))
	return strings.Contains(haystack, needle)
}

// ParseOr parses a comma-separated OR expression such as
//
//	"name.ilike.%bolt%,code.ilike.%b2%"
//
// into an Or predicate. Clauses that don't fit the field.op.value shape
// are kept with an empty operator and therefore never match.
func ParseOr(expr string) Or {
	parts := strings.Split(expr, ",")
	clauses := make([]OrClause, 0, len(parts))
	for _, part := range parts {
		clauses = append(clauses, parseOrClause(strings.TrimSpace(part)))
	}
	return Or{Clauses: clauses}
}

// parseOrClause splits one "field.op.value" clause. The field may itself
// be a dotted path, so the operator is located by marker rather than by
// naive splitting.
func parseOrClause(clause string) OrClause {
	if idx := strings.Index(clause, ".ilike."); idx >= 0 {
		return OrClause{
			Field: clause[:idx],
			Op:    "ilike",
			Value: clause[idx+len(".ilike."):],
		}
	}

	// Unknown operator: preserve the pieces for diagnostics, match nothing.
	parts := strings.SplitN(clause, ".", 3)
	if len(parts) == 3 {
		return OrClause{Field: parts[0], Op: parts[1], Value: parts[2]}
	}
	return OrClause{Field: clause}
}
