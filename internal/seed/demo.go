package seed

import "github.com/roach88/localbase/internal/localdb"

// Demo returns the built-in demo fixture: a handful of units,
// categories, suppliers, materials, batches, and barcodes, plus an
// admin user. Ids are fixed so references stay valid across reseeds.
func Demo() *Fixture {
	return &Fixture{Tables: map[string][]map[string]any{
		localdb.TableUnits: {
			{"id": "unit-kg", "code": "KG", "name": "Kilogram", "symbol": "kg"},
			{"id": "unit-pcs", "code": "PCS", "name": "Pieces", "symbol": "pcs"},
			{"id": "unit-m", "code": "M", "name": "Meter", "symbol": "m"},
		},
		localdb.TableCategories: {
			{"id": "cat-raw", "code": "RAW", "name": "Raw Material"},
			{"id": "cat-fast", "code": "FAST", "name": "Fasteners"},
		},
		localdb.TableSuppliers: {
			{"id": "sup-acme", "name": "Acme Industrial", "contact": "sales@acme.example", "phone": "555-0100"},
			{"id": "sup-nw", "name": "Northwind Metals", "contact": "orders@northwind.example", "phone": "555-0199"},
		},
		localdb.TableMaterials: {
			{"id": "mat-steel", "code": "STL-001", "name": "Steel Rod 10mm", "unit_id": "unit-m", "category_id": "cat-raw", "min_stock": 50},
			{"id": "mat-bolt", "code": "BLT-M8", "name": "Hex Bolt M8", "unit_id": "unit-pcs", "category_id": "cat-fast", "min_stock": 500},
			{"id": "mat-alu", "code": "ALU-002", "name": "Aluminium Sheet 2mm", "unit_id": "unit-kg", "category_id": "cat-raw", "min_stock": 20},
		},
		localdb.TableBatches: {
			{"id": "bat-1", "batch_no": "B-2025-001", "material_id": "mat-steel", "supplier_id": "sup-acme", "quantity": 120, "remaining": 80},
			{"id": "bat-2", "batch_no": "B-2025-002", "material_id": "mat-bolt", "supplier_id": "sup-nw", "quantity": 2000, "remaining": 1450},
		},
		localdb.TableBarcodes: {
			{"id": "bc-1", "code": "6900001000017", "material_id": "mat-steel", "batch_id": "bat-1"},
			{"id": "bc-2", "code": "6900001000024", "material_id": "mat-bolt", "batch_id": "bat-2"},
		},
		localdb.TableUsers: {
			{"id": "user-admin", "email": "admin@local", "name": "Administrator", "role": "admin", "status": "active"},
		},
		localdb.TableSettings: {
			{"id": "settings", "company_name": "Demo Works", "low_stock_alerts": true},
		},
	}}
}
