package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/roach88/localbase/internal/kvstore"
	"github.com/roach88/localbase/internal/localdb"
)

// openDB opens the SQLite-backed store at the configured path.
// Callers must call the returned close function.
func openDB(opts *RootOptions) (*localdb.DB, func(), error) {
	logrus.WithField("path", opts.Path).Debug("opening store")

	kv, err := kvstore.OpenSQLite(opts.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store at %q: %w", opts.Path, err)
	}

	db := localdb.New(kv)
	return db, func() {
		if err := kv.Close(); err != nil {
			logrus.WithError(err).Warn("closing store")
		}
	}, nil
}
