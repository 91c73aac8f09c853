package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/avelev/schoolguard/internal/client/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func makeJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin@example.com",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	user := &models.User{Email: "admin@example.com", Role: "admin"}
	require.NoError(t, store.Save(ctx, "opaque-token", user))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, sess.Active())
	require.Equal(t, "opaque-token", sess.Token)
	require.NotNil(t, sess.User)
	require.Equal(t, "admin@example.com", sess.User.Email)
	require.Equal(t, "admin", sess.User.Role)
}

func TestLoad_EmptyStoreYieldsInactiveSession(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)

	sess, err := store.Load(context.Background())
	require.NoError(t, err)
	require.False(t, sess.Active())
	require.Nil(t, sess.User)
}

func TestSave_RefusesUserWithoutToken(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)

	err := store.Save(context.Background(), "", &models.User{Email: "x@x.com"})
	require.ErrorIs(t, err, ErrMissingToken)

	sess, err := store.Load(context.Background())
	require.NoError(t, err)
	require.False(t, sess.Active())
}

func TestClear_RemovesBothEntries(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok", &models.User{Email: "a@b.c"}))
	require.NoError(t, store.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	require.Equal(t, 0, n)

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.False(t, sess.Active())
}

func TestLoad_ExpiredJWTTreatedAsAbsent(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	expired := makeJWT(t, time.Now().Add(-time.Hour))
	require.NoError(t, store.Save(ctx, expired, nil))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.False(t, sess.Active())
}

func TestLoad_ValidJWTHonored(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	valid := makeJWT(t, time.Now().Add(time.Hour))
	require.NoError(t, store.Save(ctx, valid, nil))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, sess.Active())
}

func TestLoad_OpaqueTokenNeverExpires(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	store.now = func() time.Time { return time.Now().Add(100 * 365 * 24 * time.Hour) }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "not-a-jwt", nil))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, sess.Active())
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteStore(db)
	require.NoError(t, store.Save(context.Background(), "tok", nil))
}
