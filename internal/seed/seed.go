// Package seed loads demo fixture data into a localdb. The original
// offline mode ships with a small demo dataset so the application is
// usable immediately after first launch; this package provides both a
// built-in demo fixture and a YAML loader for custom fixtures.
package seed

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/localbase/internal/localdb"
	"github.com/roach88/localbase/internal/record"
)

// Fixture is a set of rows per logical table.
type Fixture struct {
	Tables map[string][]map[string]any `yaml:"tables"`
}

// Load reads a YAML fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fx, nil
}

// tableOrder seeds referenced tables before their dependents so a
// freshly seeded store never starts with dangling references. Tables
// not listed here seed afterwards in name order.
var tableOrder = []string{
	localdb.TableUnits,
	localdb.TableCategories,
	localdb.TableSuppliers,
	localdb.TableMaterials,
	localdb.TableBatches,
	localdb.TableBarcodes,
	localdb.TableUsers,
	localdb.TableSettings,
}

// Apply inserts the fixture's rows. Tables that already contain rows
// are skipped, making Apply idempotent. Returns inserted row counts per
// table.
func Apply(db *localdb.DB, fx *Fixture) (map[string]int, error) {
	counts := make(map[string]int, len(fx.Tables))

	for _, table := range orderedTables(fx) {
		rows := fx.Tables[table]

		existing, err := db.GetAll(table)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			counts[table] = 0
			continue
		}

		// Insert prepends, so walk the fixture backwards to keep its
		// row order in the stored table.
		for i := len(rows) - 1; i >= 0; i-- {
			row, err := record.FromAny(normalizeKeys(rows[i]))
			if err != nil {
				return nil, fmt.Errorf("table %q row %d: %w", table, i, err)
			}
			obj, ok := row.(record.Object)
			if !ok {
				return nil, fmt.Errorf("table %q row %d: not an object", table, i)
			}
			if _, err := db.Insert(table, obj); err != nil {
				return nil, err
			}
			counts[table]++
		}
	}
	return counts, nil
}

// orderedTables returns the fixture's tables in seeding order.
func orderedTables(fx *Fixture) []string {
	seen := make(map[string]bool, len(fx.Tables))
	var ordered []string
	for _, table := range tableOrder {
		if _, ok := fx.Tables[table]; ok {
			ordered = append(ordered, table)
			seen[table] = true
		}
	}

	var extras []string
	for table := range fx.Tables {
		if !seen[table] {
			extras = append(extras, table)
		}
	}
	sort.Strings(extras)
	return append(ordered, extras...)
}

// normalizeKeys converts yaml.v3's map[any]any nesting (possible in
// older fixture files) into map[string]any for record.FromAny.
func normalizeKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = normalizeKeys(elem)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[fmt.Sprintf("%v", k)] = normalizeKeys(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeKeys(elem)
		}
		return out
	default:
		return v
	}
}
