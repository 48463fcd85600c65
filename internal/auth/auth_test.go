package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/localbase/internal/kvstore"
	"github.com/roach88/localbase/internal/localdb"
	"github.com/roach88/localbase/internal/record"
	"github.com/roach88/localbase/internal/testutil"
)

func newTestEmulator(t *testing.T) (*Emulator, *localdb.DB) {
	t.Helper()
	db := localdb.New(kvstore.NewMemory(),
		localdb.WithClock(testutil.DefaultClock().Now),
		localdb.WithIDFunc(testutil.SequentialIDs("user")),
	)
	return New(db), db
}

func seedUser(t *testing.T, db *localdb.DB, email string) record.Object {
	t.Helper()
	user, err := db.Insert(localdb.TableUsers, record.Object{
		"email": record.String(email),
		"role":  record.String("admin"),
	})
	require.NoError(t, err)
	return user
}

func TestSignInWithPassword_Success(t *testing.T) {
	a, db := newTestEmulator(t)
	seedUser(t, db, "admin@local")

	res := a.SignInWithPassword(Credentials{Email: "admin@local", Password: DemoPassword})
	require.Nil(t, res.Err)
	assert.Equal(t, "admin@local", record.GetString(res.User, "email"))
	require.NotNil(t, res.Session)
	assert.Equal(t, LocalToken, res.Session.Token)
	assert.Equal(t, "2025-06-02T12:00:01.000Z", res.Session.ExpiresAt,
		"24 hours from the clock reading")

	sess, err := db.Session()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "admin@local", record.GetString(sess.User, "email"))
}

func TestSignInWithPassword_UnknownEmail(t *testing.T) {
	a, _ := newTestEmulator(t)

	res := a.SignInWithPassword(Credentials{Email: "ghost@local", Password: DemoPassword})
	require.NotNil(t, res.Err)
	assert.True(t, IsNotFound(res.Err))
	assert.Equal(t, "user not found", res.Err.Message)
}

func TestSignInWithPassword_WrongPasswordCreatesNoSession(t *testing.T) {
	emu, store := newTestEmulator(t)
	seedUser(t, store, "admin@local")

	res := emu.SignInWithPassword(Credentials{Email: "admin@local", Password: "wrong"})
	require.NotNil(t, res.Err)
	assert.True(t, IsBadPassword(res.Err))
	assert.Equal(t, "incorrect password", res.Err.Message)

	user, authErr := emu.GetUser()
	require.Nil(t, authErr)
	assert.Nil(t, user, "failed sign-in leaves no session behind")
}

func TestSignUp_RoundTrip(t *testing.T) {
	a, db := newTestEmulator(t)

	res := a.SignUp(Credentials{Email: "new@local", Password: DemoPassword}, &SignUpOptions{
		Data: record.Object{"name": record.String("New Person")},
	})
	require.Nil(t, res.Err)

	assert.Equal(t, "viewer", record.GetString(res.User, "role"))
	assert.Equal(t, "active", record.GetString(res.User, "status"))
	assert.Equal(t, "New Person", record.GetString(res.User, "name"))

	users, err := db.GetAll(localdb.TableUsers)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	user, authErr := a.GetUser()
	require.Nil(t, authErr)
	require.NotNil(t, user)
	assert.Equal(t, "new@local", record.GetString(user, "email"),
		"GetUser immediately returns the signed-up user")
}

func TestSignUp_MetadataCanOverrideDefaults(t *testing.T) {
	a, _ := newTestEmulator(t)

	res := a.SignUp(Credentials{Email: "op@local", Password: DemoPassword}, &SignUpOptions{
		Data: record.Object{"role": record.String("operator")},
	})
	require.Nil(t, res.Err)
	assert.Equal(t, "operator", record.GetString(res.User, "role"))
}

func TestSignUp_RequiresDemoPassword(t *testing.T) {
	a, db := newTestEmulator(t)

	res := a.SignUp(Credentials{Email: "new@local", Password: "whatever"}, nil)
	require.NotNil(t, res.Err)
	assert.True(t, IsBadPassword(res.Err))

	users, err := db.GetAll(localdb.TableUsers)
	require.NoError(t, err)
	assert.Empty(t, users, "no user row is created on rejection")
}

func TestSignOut(t *testing.T) {
	a, db := newTestEmulator(t)
	seedUser(t, db, "admin@local")

	res := a.SignInWithPassword(Credentials{Email: "admin@local", Password: DemoPassword})
	require.Nil(t, res.Err)

	require.Nil(t, a.SignOut())
	user, authErr := a.GetUser()
	require.Nil(t, authErr)
	assert.Nil(t, user)

	// Signing out while signed out still succeeds.
	require.Nil(t, a.SignOut())
}

func TestGetUser_NoFirstUserFallback(t *testing.T) {
	a, db := newTestEmulator(t)
	seedUser(t, db, "admin@local")

	user, authErr := a.GetUser()
	require.Nil(t, authErr)
	assert.Nil(t, user, "a populated users table must not bypass the login gate")
}

func TestGetSession(t *testing.T) {
	a, db := newTestEmulator(t)
	seedUser(t, db, "admin@local")

	sess, authErr := a.GetSession()
	require.Nil(t, authErr)
	assert.Nil(t, sess)

	a.SignInWithPassword(Credentials{Email: "admin@local", Password: DemoPassword})

	sess, authErr = a.GetSession()
	require.Nil(t, authErr)
	require.NotNil(t, sess)
	assert.Equal(t, LocalToken, sess.Token)
}

func TestOnAuthStateChange(t *testing.T) {
	a, db := newTestEmulator(t)
	seedUser(t, db, "admin@local")

	var events []string
	unsub := a.OnAuthStateChange(func(event string, sess *localdb.Session) {
		events = append(events, event)
	})
	assert.Empty(t, events, "no session, no initial event")
	unsub()

	a.SignInWithPassword(Credentials{Email: "admin@local", Password: DemoPassword})

	unsub = a.OnAuthStateChange(func(event string, sess *localdb.Session) {
		events = append(events, event)
		require.NotNil(t, sess)
	})
	assert.Equal(t, []string{EventSignedIn}, events, "one immediate snapshot event")
	unsub()
}

func TestUpdateUser(t *testing.T) {
	a, db := newTestEmulator(t)
	seedUser(t, db, "admin@local")
	a.SignInWithPassword(Credentials{Email: "admin@local", Password: DemoPassword})

	updated, authErr := a.UpdateUser(record.Object{"name": record.String("Renamed")})
	require.Nil(t, authErr)
	assert.Equal(t, "Renamed", record.GetString(updated, "name"))

	// Users row and session cache both reflect the change.
	user, _ := a.GetUser()
	assert.Equal(t, "Renamed", record.GetString(user, "name"))

	rows, err := db.GetAll(localdb.TableUsers)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Renamed", record.GetString(rows[0], "name"))
}

func TestUpdateUser_RequiresSession(t *testing.T) {
	a, _ := newTestEmulator(t)

	_, authErr := a.UpdateUser(record.Object{"name": record.String("x")})
	require.NotNil(t, authErr)
	assert.Equal(t, ErrCodeNoSession, authErr.Code)
}
