// Package client defines the minimal backend-client surface the
// application consumes, and the offline implementation of it.
//
// The application's stores call From(table), Auth(), and IsOnline()
// without knowing whether they talk to the hosted backend or the local
// emulation - the two are interchangeable through this interface, which
// is the whole point of the offline layer.
package client

import (
	"context"

	"github.com/roach88/localbase/internal/auth"
	"github.com/roach88/localbase/internal/localdb"
	"github.com/roach88/localbase/internal/query"
)

// Client is the surface consumed by application stores. Both the hosted
// backend wrapper and the offline emulation implement it.
type Client interface {
	// From returns a fresh query builder bound to a logical table.
	From(table string) *query.Builder

	// Auth returns the auth client.
	Auth() *auth.Emulator

	// IsOnline reports backend reachability.
	IsOnline(ctx context.Context) (bool, error)
}

// Offline is the fully-offline client, installed at startup in place of
// the hosted client when offline mode is active.
type Offline struct {
	db   *localdb.DB
	auth *auth.Emulator
}

// NewOffline composes the offline client over a DB.
func NewOffline(db *localdb.DB) *Offline {
	return &Offline{
		db:   db,
		auth: auth.New(db),
	}
}

// From returns a fresh builder bound to table. Builders are single-use
// accumulators; each call starts clean.
func (c *Offline) From(table string) *query.Builder {
	return query.NewBuilder(c.db, table)
}

// Auth returns the auth emulator.
func (c *Offline) Auth() *auth.Emulator {
	return c.auth
}

// IsOnline always reports false: this client only exists when the
// application has decided to run fully offline.
func (c *Offline) IsOnline(ctx context.Context) (bool, error) {
	_ = ctx
	return false, nil
}

// DB exposes the underlying data layer for tooling (seed, CLI dumps).
func (c *Offline) DB() *localdb.DB {
	return c.db
}
