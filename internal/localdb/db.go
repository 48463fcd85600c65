package localdb

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/localbase/internal/kvstore"
	"github.com/roach88/localbase/internal/record"
)

// Logical table names. The store accepts any name; these are the tables
// the application actually uses.
const (
	TableMaterials  = "materials"
	TableCategories = "material_categories"
	TableUnits      = "units"
	TableSuppliers  = "suppliers"
	TableBatches    = "material_batches"
	TableBarcodes   = "barcodes"
	TableUsers      = "users"
	TableSettings   = "system_settings"
	TableAuditLogs  = "audit_logs"
)

// DefaultPrefix namespaces all localbase keys in the backing store.
const DefaultPrefix = "localbase:"

// Clock supplies the current time for created_at/updated_at stamps.
type Clock func() time.Time

// DB provides table-level CRUD over a key-value backing store.
type DB struct {
	kv     kvstore.KV
	prefix string
	now    Clock
	newID  func() string
}

// Option configures a DB.
type Option func(*DB)

// WithPrefix overrides the key namespace prefix.
func WithPrefix(prefix string) Option {
	return func(db *DB) { db.prefix = prefix }
}

// WithClock overrides the timestamp source. Used by tests for
// deterministic created_at/updated_at values.
func WithClock(now Clock) Option {
	return func(db *DB) { db.now = now }
}

// WithIDFunc overrides the row id generator.
func WithIDFunc(fn func() string) Option {
	return func(db *DB) { db.newID = fn }
}

// New creates a DB over the given backing store.
func New(kv kvstore.KV, opts ...Option) *DB {
	db := &DB{
		kv:     kv,
		prefix: DefaultPrefix,
		now:    time.Now,
		newID:  NewID,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// TableKey returns the backing-store key for a logical table.
func (db *DB) TableKey(table string) string {
	return db.prefix + table
}

// Now returns the DB's clock time. Auth uses this for session expiry.
func (db *DB) Now() time.Time {
	return db.now()
}

// FormatTime renders a time the way the application stores timestamps:
// UTC ISO-8601 with millisecond precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// Timestamp renders the current clock time in the stored format.
func (db *DB) Timestamp() string {
	return FormatTime(db.now())
}

// GetAll returns every row of a table, newest first. A missing key or a
// corrupt payload decodes as an empty table.
func (db *DB) GetAll(table string) ([]record.Object, error) {
	raw, ok, err := db.kv.Get(db.TableKey(table))
	if err != nil {
		return nil, fmt.Errorf("read table %q: %w", table, err)
	}
	if !ok {
		return []record.Object{}, nil
	}

	var rows []record.Object
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		// Corrupt payload is treated as an empty table.
		return []record.Object{}, nil
	}
	if rows == nil {
		rows = []record.Object{}
	}
	return rows, nil
}

// SetAll overwrites a table's stored array.
func (db *DB) SetAll(table string, rows []record.Object) error {
	if rows == nil {
		rows = []record.Object{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode table %q: %w", table, err)
	}
	if err := db.kv.Set(db.TableKey(table), string(data)); err != nil {
		return fmt.Errorf("write table %q: %w", table, err)
	}
	return nil
}

// Insert stores a new row. The caller's id is kept if present; otherwise
// one is generated. created_at/updated_at are set to now if absent. The
// row is prepended, so default listing order is newest first.
func (db *DB) Insert(table string, row record.Object) (record.Object, error) {
	stored := record.Merge(record.Object{}, row)

	if record.GetString(stored, "id") == "" {
		stored["id"] = record.String(db.newID())
	}
	now := record.String(db.Timestamp())
	if _, ok := stored["created_at"]; !ok {
		stored["created_at"] = now
	}
	if _, ok := stored["updated_at"]; !ok {
		stored["updated_at"] = now
	}

	rows, err := db.GetAll(table)
	if err != nil {
		return nil, err
	}
	rows = append([]record.Object{stored}, rows...)
	if err := db.SetAll(table, rows); err != nil {
		return nil, err
	}
	return stored, nil
}

// Update merges patch over the row with the given id and refreshes
// updated_at. Returns nil (not an error) when no row matches.
func (db *DB) Update(table, id string, patch record.Object) (record.Object, error) {
	rows, err := db.GetAll(table)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if record.GetString(row, "id") != id {
			continue
		}
		merged := record.Merge(row, patch)
		merged["updated_at"] = record.String(db.Timestamp())
		rows[i] = merged
		if err := db.SetAll(table, rows); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, nil
}

// Delete removes the row with the given id. Reports whether a row was
// actually removed. No cascade: dependents keep dangling references,
// which enrichment resolves to an omitted field.
func (db *DB) Delete(table, id string) (bool, error) {
	rows, err := db.GetAll(table)
	if err != nil {
		return false, err
	}

	for i, row := range rows {
		if record.GetString(row, "id") != id {
			continue
		}
		rows = append(rows[:i], rows[i+1:]...)
		if err := db.SetAll(table, rows); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// FindByID returns the raw row with the given id, or nil when absent.
func (db *DB) FindByID(table, id string) (record.Object, error) {
	if id == "" {
		return nil, nil
	}
	rows, err := db.GetAll(table)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if record.GetString(row, "id") == id {
			return row, nil
		}
	}
	return nil, nil
}
