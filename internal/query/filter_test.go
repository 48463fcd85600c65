package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/localbase/internal/record"
)

func TestParseOr(t *testing.T) {
	or := ParseOr("name.ilike.%bolt%,code.ilike.%b2%")

	require.Len(t, or.Clauses, 2)
	assert.Equal(t, OrClause{Field: "name", Op: "ilike", Value: "%bolt%"}, or.Clauses[0])
	assert.Equal(t, OrClause{Field: "code", Op: "ilike", Value: "%b2%"}, or.Clauses[1])
}

func TestParseOr_DottedFieldPath(t *testing.T) {
	or := ParseOr("material.name.ilike.%steel%")

	require.Len(t, or.Clauses, 1)
	assert.Equal(t, "material.name", or.Clauses[0].Field)
	assert.Equal(t, "%steel%", or.Clauses[0].Value)
}

func TestOr_MatchesAnyClause(t *testing.T) {
	or := ParseOr("name.ilike.%bolt%,code.ilike.%b2%")

	assert.True(t, or.Matches(record.Object{"name": record.String("Hex Bolt"), "code": record.String("A1")}))
	assert.True(t, or.Matches(record.Object{"name": record.String("Nut"), "code": record.String("B2")}))
	assert.False(t, or.Matches(record.Object{"name": record.String("Washer"), "code": record.String("C3")}))
}

func TestOr_IlikeIsCaseInsensitive(t *testing.T) {
	or := ParseOr("name.ilike.%BOLT%")
	assert.True(t, or.Matches(record.Object{"name": record.String("hex bolt m8")}))
}

func TestOr_UnsupportedOperatorMatchesNothing(t *testing.T) {
	or := ParseOr("qty.gt.5,name.ilike.%nut%")

	// The gt clause silently never matches; the ilike clause still works.
	assert.False(t, or.Matches(record.Object{"qty": record.Number(10), "name": record.String("Bolt")}))
	assert.True(t, or.Matches(record.Object{"qty": record.Number(1), "name": record.String("Nut")}))
}

func TestOr_MalformedClauseMatchesNothing(t *testing.T) {
	or := ParseOr("justafield")
	assert.False(t, or.Matches(record.Object{"justafield": record.String("anything")}))
}

func TestEq_Matches(t *testing.T) {
	row := record.Object{
		"code": record.String("A1"),
		"qty":  record.Number(5),
		"material": record.Object{
			"name": record.String("Steel Rod"),
		},
	}

	assert.True(t, Eq{Field: "code", Value: record.String("A1")}.Matches(row))
	assert.False(t, Eq{Field: "code", Value: record.String("B2")}.Matches(row))
	assert.True(t, Eq{Field: "qty", Value: record.Number(5)}.Matches(row))
	assert.True(t, Eq{Field: "material.name", Value: record.String("Steel Rod")}.Matches(row),
		"dotted paths reach enriched fields")
	assert.False(t, Eq{Field: "missing", Value: record.String("x")}.Matches(row))
	assert.True(t, Eq{Field: "missing", Value: record.Null{}}.Matches(row),
		"a missing field only equals an explicit null")
}

func TestOrderingPredicates(t *testing.T) {
	row := record.Object{"qty": record.Number(5), "name": record.String("m")}

	assert.True(t, Lt{Field: "qty", Value: record.Number(10)}.Matches(row))
	assert.False(t, Lt{Field: "qty", Value: record.Number(5)}.Matches(row))
	assert.True(t, Lte{Field: "qty", Value: record.Number(5)}.Matches(row))
	assert.True(t, Gte{Field: "qty", Value: record.Number(5)}.Matches(row))
	assert.False(t, Gte{Field: "qty", Value: record.Number(6)}.Matches(row))
}

func TestOrderingPredicates_MissingFieldComparesAsEmptyString(t *testing.T) {
	row := record.Object{}

	// "" < any non-empty string.
	assert.True(t, Lt{Field: "name", Value: record.String("a")}.Matches(row))
	assert.True(t, Lte{Field: "name", Value: record.String("")}.Matches(row))
	assert.False(t, Gte{Field: "name", Value: record.String("a")}.Matches(row))
}
