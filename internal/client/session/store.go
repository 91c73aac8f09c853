// Package session persists the authenticated session (token + user
// record) in a local sqlite key/value table so it survives process
// restarts. The store treats the token as an opaque blob; the only
// inspection performed is an optional expiry check for tokens that
// happen to be JWTs.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avelev/schoolguard/internal/client/models"
	"github.com/avelev/schoolguard/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// ErrMissingToken is returned by Save when a user record is supplied
// without a token. A persisted user always implies a persisted token.
var ErrMissingToken = errors.New("cannot persist user without token")

// Store is the persistent session store consulted once at startup to
// seed the auth gate, written on login/signup with "remember" selected,
// and cleared on logout.
type Store interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, token string, user *models.User) error
	Clear(ctx context.Context) error
}

// SQLiteStore is the sqlite-backed Store.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Load reads the persisted session. A missing or empty token yields an
// inactive session, never an error. A token that parses as a JWT with an
// expiry in the past is treated as absent; opaque tokens are honored
// as-is.
func (s *SQLiteStore) Load(ctx context.Context) (models.Session, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return models.Session{}, err
	}
	if len(token) == 0 || tokenExpired(string(token), s.now()) {
		return models.Session{}, nil
	}

	sess := models.Session{Token: string(token)}

	raw, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return models.Session{}, err
	}
	if len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return models.Session{}, fmt.Errorf("failed to decode stored user: %w", err)
		}
		sess.User = &u
	}

	return sess, nil
}

// Save persists the token and the serialized user record in a single
// transaction. A user without a token is refused: a half-written session
// must be impossible to observe.
func (s *SQLiteStore) Save(ctx context.Context, token string, user *models.User) error {
	if token == "" {
		return ErrMissingToken
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		if user != nil {
			raw, err := json.Marshal(user)
			if err != nil {
				return fmt.Errorf("failed to encode user: %w", err)
			}
			if err := s.set(ctx, tx, keyUser, raw); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes both session entries.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// tokenExpired reports whether token is a JWT whose exp claim is in the
// past. The claims are read without signature verification; the client
// holds no keys and the server remains the authority. Tokens that are
// not JWTs, or carry no exp claim, are never considered expired here.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(now)
}
