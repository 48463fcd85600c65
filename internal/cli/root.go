// Package cli implements the localbase command-line tool: inspect,
// query, and seed the offline store without running the application.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Path    string // SQLite store path
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// defaultPath is used when neither --path nor LOCALBASE_PATH is set.
const defaultPath = "localbase.db"

// NewRootCommand creates the root command for the localbase CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "localbase",
		Short: "localbase - offline store tooling",
		Long:  "Inspect, query, and seed the offline data store of the inventory admin application.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; a missing file is not an error.
			_ = godotenv.Load()

			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Path == "" {
				opts.Path = os.Getenv("LOCALBASE_PATH")
			}
			if opts.Path == "" {
				opts.Path = defaultPath
			}

			logrus.SetLevel(logrus.WarnLevel)
			if opts.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Path, "path", "", "store path (default $LOCALBASE_PATH or localbase.db)")

	// Add subcommands
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewTablesCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
