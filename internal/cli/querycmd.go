package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/localbase/internal/query"
)

// NewQueryCommand creates the query command: run a filtered select.
func NewQueryCommand(opts *RootOptions) *cobra.Command {
	var (
		eqFilters []string
		orExpr    string
		orderBy   string
		desc      bool
		limit     int
		withCount bool
	)

	cmd := &cobra.Command{
		Use:   "query <table>",
		Short: "Run a filtered select against a table",
		Long: "Evaluates the same query pipeline the application uses: filters, " +
			"ordering, range, and enrichment. --eq takes field=value and may repeat; " +
			"--or takes the comma-separated field.op.value expression syntax.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDB(opts)
			if err != nil {
				return err
			}
			defer closeDB()

			selectOpts := []query.SelectOption{}
			if withCount {
				selectOpts = append(selectOpts, query.WithCount())
			}

			b := query.NewBuilder(db, args[0]).Select("*", selectOpts...)
			for _, filter := range eqFilters {
				field, value, ok := strings.Cut(filter, "=")
				if !ok {
					return fmt.Errorf("invalid --eq %q: expected field=value", filter)
				}
				b.Eq(field, value)
			}
			if orExpr != "" {
				b.Or(orExpr)
			}
			if orderBy != "" {
				b.Order(orderBy, !desc)
			}
			if limit > 0 {
				b.Range(0, limit-1)
			}

			res := b.Exec(cmd.Context())
			if res.Err != nil {
				return res.Err
			}

			out, err := json.MarshalIndent(res.Data, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			if res.Count != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "count: %d\n", *res.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&eqFilters, "eq", nil, "equality filter field=value (repeatable)")
	cmd.Flags().StringVar(&orExpr, "or", "", "OR filter expression (field.ilike.%text%,...)")
	cmd.Flags().StringVar(&orderBy, "order", "", "order by field")
	cmd.Flags().BoolVar(&desc, "desc", false, "order descending")
	cmd.Flags().IntVar(&limit, "limit", 0, "limit result rows")
	cmd.Flags().BoolVar(&withCount, "count", false, "include total filtered count")

	return cmd
}
