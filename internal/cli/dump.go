package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/localbase/internal/record"
)

// NewDumpCommand creates the dump command: print a table's rows.
func NewDumpCommand(opts *RootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "dump <table>",
		Short: "Print all rows of a table",
		Long:  "Prints a table's rows, enriched with joined references unless --raw is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDB(opts)
			if err != nil {
				return err
			}
			defer closeDB()

			table := args[0]
			var rows []record.Object
			if raw {
				rows, err = db.GetAll(table)
			} else {
				rows, err = db.GetAllEnriched(table)
			}
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				out, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			for _, row := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					record.GetString(row, "id"), summarizeRow(row))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d rows\n", len(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "skip relational enrichment")
	return cmd
}

// summarizeRow picks the most recognizable label field for text output.
func summarizeRow(row record.Object) string {
	for _, field := range []string{"name", "code", "batch_no", "email", "action"} {
		if v := record.GetString(row, field); v != "" {
			return v
		}
	}
	return ""
}
