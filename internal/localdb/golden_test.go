package localdb

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/localbase/internal/kvstore"
	"github.com/roach88/localbase/internal/record"
	"github.com/roach88/localbase/internal/testutil"
)

// TestGetAllEnriched_Golden pins the exact joined shape consumers see.
// The deterministic clock makes timestamps reproducible, so the golden
// file is stable. Regenerate with:
//
//	go test ./internal/localdb -run Golden -update
func TestGetAllEnriched_Golden(t *testing.T) {
	db := New(kvstore.NewMemory(), WithClock(testutil.DefaultClock().Now))

	mustInsert(t, db, TableUnits, record.Object{
		"id": record.String("unit-kg"), "code": record.String("KG"),
		"name": record.String("Kilogram"), "symbol": record.String("kg"),
	})
	mustInsert(t, db, TableCategories, record.Object{
		"id": record.String("cat-raw"), "code": record.String("RAW"),
		"name": record.String("Raw Material"),
	})
	mustInsert(t, db, TableSuppliers, record.Object{
		"id": record.String("sup-acme"), "name": record.String("Acme Industrial"),
	})
	mustInsert(t, db, TableMaterials, record.Object{
		"id": record.String("mat-steel"), "name": record.String("Steel Rod"),
		"unit_id": record.String("unit-kg"), "category_id": record.String("cat-raw"),
	})
	mustInsert(t, db, TableBatches, record.Object{
		"id": record.String("bat-1"), "batch_no": record.String("B-001"),
		"material_id": record.String("mat-steel"), "supplier_id": record.String("sup-acme"),
		"quantity": record.Number(120),
	})

	rows, err := db.GetAllEnriched(TableBatches)
	require.NoError(t, err)

	data, err := json.MarshalIndent(rows, "", "  ")
	require.NoError(t, err)
	data = append(data, '\n')

	g := goldie.New(t)
	g.Assert(t, "enriched_batches", data)
}
