package auth

import (
	"time"

	"github.com/roach88/localbase/internal/localdb"
	"github.com/roach88/localbase/internal/record"
)

// DemoPassword is the single shared password gating offline sign-in and
// sign-up. Not suitable for anything beyond local demo/dev mode.
const DemoPassword = "demo1234"

// LocalToken is the fixed session token in offline mode. There is no
// server to validate tokens against, so the value carries no claims.
const LocalToken = "local"

// SessionTTL is how long a newly created session remains valid.
const SessionTTL = 24 * time.Hour

// EventSignedIn is the event name delivered by OnAuthStateChange when a
// session already exists.
const EventSignedIn = "SIGNED_IN"

// Emulator provides the session-lifecycle API shaped like the hosted
// auth client, entirely against local state.
type Emulator struct {
	db *localdb.DB
}

// New creates an auth emulator over the given DB.
func New(db *localdb.DB) *Emulator {
	return &Emulator{db: db}
}

// Credentials are the sign-in inputs.
type Credentials struct {
	Email    string
	Password string
}

// SignUpOptions carries optional metadata merged into the new user row.
type SignUpOptions struct {
	Data record.Object
}

// SignInResult is the {data, error} envelope for sign-in and sign-up.
type SignInResult struct {
	User    record.Object
	Session *localdb.Session
	Err     *Error
}

// SignInWithPassword authenticates an existing user. The email must
// match a users row and the password must equal the demo password. On
// success a fresh session replaces any prior one.
func (a *Emulator) SignInWithPassword(creds Credentials) SignInResult {
	user, err := a.findUserByEmail(creds.Email)
	if err != nil {
		return SignInResult{Err: storageError(err)}
	}
	if user == nil {
		return SignInResult{Err: &Error{Code: ErrCodeUserNotFound, Message: "user not found"}}
	}
	if creds.Password != DemoPassword {
		return SignInResult{Err: &Error{Code: ErrCodeBadPassword, Message: "incorrect password"}}
	}

	sess, err := a.createSession(user)
	if err != nil {
		return SignInResult{Err: storageError(err)}
	}
	return SignInResult{User: user, Session: sess}
}

// SignUp registers a new user and signs them in. The demo password gate
// applies to registration too. The new row defaults role "viewer" and
// status "active", merged with any supplied metadata.
func (a *Emulator) SignUp(creds Credentials, opts *SignUpOptions) SignInResult {
	if creds.Password != DemoPassword {
		return SignInResult{Err: &Error{Code: ErrCodeBadPassword, Message: "incorrect password"}}
	}

	row := record.Object{
		"email":  record.String(creds.Email),
		"role":   record.String("viewer"),
		"status": record.String("active"),
	}
	if opts != nil && opts.Data != nil {
		row = record.Merge(row, opts.Data)
	}

	user, err := a.db.Insert(localdb.TableUsers, row)
	if err != nil {
		return SignInResult{Err: storageError(err)}
	}

	sess, err := a.createSession(user)
	if err != nil {
		return SignInResult{Err: storageError(err)}
	}
	return SignInResult{User: user, Session: sess}
}

// SignOut clears the session record unconditionally. Signing out with
// no session is a success.
func (a *Emulator) SignOut() *Error {
	if err := a.db.ClearSession(); err != nil {
		return storageError(err)
	}
	return nil
}

// GetUser returns the session's user, or nil when no session exists.
// Deliberately no "first user in the table" fallback - that would
// silently bypass the login gate.
func (a *Emulator) GetUser() (record.Object, *Error) {
	sess, err := a.db.Session()
	if err != nil {
		return nil, storageError(err)
	}
	if sess == nil {
		return nil, nil
	}
	return sess.User, nil
}

// GetSession returns the raw session payload, or nil when signed out.
func (a *Emulator) GetSession() (*localdb.Session, *Error) {
	sess, err := a.db.Session()
	if err != nil {
		return nil, storageError(err)
	}
	return sess, nil
}

// Unsubscribe detaches an OnAuthStateChange callback. In this emulator
// no further events are ever emitted, so it is a no-op handle kept for
// call-site compatibility.
type Unsubscribe func()

// OnAuthStateChange invokes the callback once, immediately, with the
// current session if one exists. No later transitions are delivered.
func (a *Emulator) OnAuthStateChange(callback func(event string, sess *localdb.Session)) Unsubscribe {
	sess, err := a.db.Session()
	if err == nil && sess != nil {
		callback(EventSignedIn, sess)
	}
	return func() {}
}

// UpdateUser merges data into the signed-in user's row and refreshes
// the session's cached user. Requires an active session.
func (a *Emulator) UpdateUser(data record.Object) (record.Object, *Error) {
	sess, err := a.db.Session()
	if err != nil {
		return nil, storageError(err)
	}
	if sess == nil {
		return nil, &Error{Code: ErrCodeNoSession, Message: "no active session"}
	}

	id := record.GetString(sess.User, "id")
	updated, err := a.db.Update(localdb.TableUsers, id, data)
	if err != nil {
		return nil, storageError(err)
	}
	if updated == nil {
		return nil, &Error{Code: ErrCodeUserNotFound, Message: "user not found"}
	}

	sess.User = updated
	if err := a.db.SetSession(sess); err != nil {
		return nil, storageError(err)
	}
	return updated, nil
}

// createSession builds and persists a session for the user, replacing
// any existing one.
func (a *Emulator) createSession(user record.Object) (*localdb.Session, error) {
	sess := &localdb.Session{
		User:      user,
		Token:     LocalToken,
		ExpiresAt: localdb.FormatTime(a.db.Now().Add(SessionTTL)),
	}
	if err := a.db.SetSession(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// findUserByEmail scans the users table for an exact email match.
func (a *Emulator) findUserByEmail(email string) (record.Object, error) {
	users, err := a.db.GetAll(localdb.TableUsers)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if record.GetString(user, "email") == email {
			return user, nil
		}
	}
	return nil, nil
}
