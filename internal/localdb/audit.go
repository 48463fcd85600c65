package localdb

import "github.com/roach88/localbase/internal/record"

// RecordAudit appends an audit_logs row describing a mutation. Actor is
// the acting user's email (or a tool name for CLI operations).
func (db *DB) RecordAudit(action, table, rowID, actor string) error {
	_, err := db.Insert(TableAuditLogs, record.Object{
		"action":     record.String(action),
		"table_name": record.String(table),
		"record_id":  record.String(rowID),
		"actor":      record.String(actor),
	})
	return err
}
