package cli

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/roach88/localbase/internal/seed"
)

// NewSeedCommand creates the seed command: load demo or fixture data.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [fixture.yaml]",
		Short: "Seed the store with demo or fixture data",
		Long: "Loads rows into empty tables. Without an argument the built-in demo " +
			"fixture is used. Tables that already contain rows are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDB(opts)
			if err != nil {
				return err
			}
			defer closeDB()

			fx := seed.Demo()
			source := "built-in demo"
			if len(args) == 1 {
				fx, err = seed.Load(args[0])
				if err != nil {
					return err
				}
				source = args[0]
			}

			counts, err := seed.Apply(db, fx)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			tables := make([]string, 0, len(counts))
			for table := range counts {
				tables = append(tables, table)
			}
			sort.Strings(tables)

			total := 0
			for _, table := range tables {
				n := counts[table]
				total += n
				logrus.WithFields(logrus.Fields{"table": table, "rows": n}).Debug("seeded")
				if n == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: skipped (not empty)\n", table)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows\n", table, n)
			}

			if total > 0 {
				if err := db.RecordAudit("seed", "*", source, "localbase-cli"); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
