package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/localbase/internal/localdb"
)

// knownTables lists the application's logical tables in display order.
var knownTables = []string{
	localdb.TableMaterials,
	localdb.TableCategories,
	localdb.TableUnits,
	localdb.TableSuppliers,
	localdb.TableBatches,
	localdb.TableBarcodes,
	localdb.TableUsers,
	localdb.TableSettings,
	localdb.TableAuditLogs,
}

// NewTablesCommand creates the tables command: list tables and counts.
func NewTablesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List logical tables and row counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDB(opts)
			if err != nil {
				return err
			}
			defer closeDB()

			counts := make(map[string]int, len(knownTables))
			for _, table := range knownTables {
				rows, err := db.GetAll(table)
				if err != nil {
					return err
				}
				counts[table] = len(rows)
			}

			if opts.Format == "json" {
				out, err := json.MarshalIndent(counts, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			for _, table := range knownTables {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %d\n", table, counts[table])
			}
			return nil
		},
	}
}
