// Command localbase is the CLI for the offline inventory data store.
package main

import (
	"os"

	"github.com/roach88/localbase/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
