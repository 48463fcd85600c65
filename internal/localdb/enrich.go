package localdb

import "github.com/roach88/localbase/internal/record"

// Enrichment reconstructs relational joins at read time. Foreign keys
// are resolved against the referenced table's current state on every
// read, so a rename of a referenced row is immediately visible in all
// dependents without re-saving them. A dangling reference (the
// referenced row was deleted) simply omits the nested field.

// Enrich applies the table's enrichment to a raw row. Tables without
// relations pass through unmodified.
func (db *DB) Enrich(table string, row record.Object) (record.Object, error) {
	switch table {
	case TableMaterials:
		return db.EnrichMaterial(row)
	case TableBatches:
		return db.EnrichBatch(row)
	case TableBarcodes:
		return db.EnrichBarcode(row)
	default:
		return row, nil
	}
}

// GetAllEnriched returns all rows of a table with enrichment applied.
func (db *DB) GetAllEnriched(table string) ([]record.Object, error) {
	rows, err := db.GetAll(table)
	if err != nil {
		return nil, err
	}
	out := make([]record.Object, len(rows))
	for i, row := range rows {
		enriched, err := db.Enrich(table, row)
		if err != nil {
			return nil, err
		}
		out[i] = enriched
	}
	return out, nil
}

// EnrichMaterial resolves unit_id and category_id, attaching unit_obj
// and category. It also back-fills the legacy flat unit string (symbol,
// else code, else name) for callers still reading the old shape - but
// never overwrites an already-present unit value.
func (db *DB) EnrichMaterial(row record.Object) (record.Object, error) {
	out := record.Merge(record.Object{}, row)

	unit, err := db.FindByID(TableUnits, record.GetString(row, "unit_id"))
	if err != nil {
		return nil, err
	}
	if unit != nil {
		out["unit_obj"] = record.Object{
			"id":     unit["id"],
			"code":   unit["code"],
			"name":   unit["name"],
			"symbol": unit["symbol"],
		}
		if record.GetString(out, "unit") == "" {
			label := record.GetString(unit, "symbol")
			if label == "" {
				label = record.GetString(unit, "code")
			}
			if label == "" {
				label = record.GetString(unit, "name")
			}
			out["unit"] = record.String(label)
		}
	}

	category, err := db.FindByID(TableCategories, record.GetString(row, "category_id"))
	if err != nil {
		return nil, err
	}
	if category != nil {
		out["category"] = record.Object{
			"id":   category["id"],
			"name": category["name"],
			"code": category["code"],
		}
	}

	return out, nil
}

// EnrichBatch resolves material_id to a fully enriched material and
// supplier_id to the raw supplier row.
func (db *DB) EnrichBatch(row record.Object) (record.Object, error) {
	out := record.Merge(record.Object{}, row)

	material, err := db.FindByID(TableMaterials, record.GetString(row, "material_id"))
	if err != nil {
		return nil, err
	}
	if material != nil {
		enriched, err := db.EnrichMaterial(material)
		if err != nil {
			return nil, err
		}
		out["material"] = enriched
	}

	supplier, err := db.FindByID(TableSuppliers, record.GetString(row, "supplier_id"))
	if err != nil {
		return nil, err
	}
	if supplier != nil {
		out["supplier"] = supplier
	}

	return out, nil
}

// EnrichBarcode resolves material_id to an enriched material and
// batch_id to an enriched batch.
func (db *DB) EnrichBarcode(row record.Object) (record.Object, error) {
	out := record.Merge(record.Object{}, row)

	material, err := db.FindByID(TableMaterials, record.GetString(row, "material_id"))
	if err != nil {
		return nil, err
	}
	if material != nil {
		enriched, err := db.EnrichMaterial(material)
		if err != nil {
			return nil, err
		}
		out["material"] = enriched
	}

	batch, err := db.FindByID(TableBatches, record.GetString(row, "batch_id"))
	if err != nil {
		return nil, err
	}
	if batch != nil {
		enriched, err := db.EnrichBatch(batch)
		if err != nil {
			return nil, err
		}
		out["batch"] = enriched
	}

	return out, nil
}
