// Package auth emulates the hosted backend's auth client against the
// local users table and the singleton session record.
//
// Every account authenticates with one shared demo password. The gate
// exists so fully-offline mode doesn't degenerate into "type any email,
// get logged in as anyone" - it is explicitly unsuitable for production
// use. Sessions carry the fixed token "local" and a 24-hour expiry.
//
// State transitions are trivial: signed out (no session record) moves
// to signed in via SignInWithPassword or SignUp, and back via SignOut.
// OnAuthStateChange delivers only the initial snapshot; no live
// transitions are modeled.
package auth
