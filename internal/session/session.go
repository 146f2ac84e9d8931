package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"tasklite/internal/model"

	_ "modernc.org/sqlite"
)

// Store is the durable session/preferences store: the client-side home of the
// auth token, the current user, and the theme preference. It is written only
// at login/registration/logout and on auth-expiry detection; everything else
// just reads it.
//
// Fixed keys, one value each, surviving restarts.
const (
	keyToken = "token"
	keyUser  = "user"
	keyTheme = "theme"
)

type Store struct {
	// Path to the SQLite file. Zero value is invalid; use Open or DefaultPath.
	Path string
}

// DefaultPath resolves the per-user store location.
// TASKLITE_CONFIG_DIR overrides it (keeps tests away from the real home dir).
func DefaultPath() (string, error) {
	if v := strings.TrimSpace(os.Getenv("TASKLITE_CONFIG_DIR")); v != "" {
		return filepath.Join(v, "session.sqlite"), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "tasklite", "session.sqlite"), nil
}

func Open() (Store, error) {
	p, err := DefaultPath()
	if err != nil {
		return Store{}, err
	}
	return Store{Path: p}, nil
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("session store: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, err
	}
	// WAL allows a CLI invocation and a running TUI to share the store.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS session_kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) get(key string) (string, bool, error) {
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return "", false, err
	}
	defer db.Close()

	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM session_kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s Store) set(pairs map[string]string) error {
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for k, v := range pairs {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO session_kv(k, v) VALUES(?, ?)`, k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s Store) del(keys ...string) error {
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, k := range keys {
		if _, err := db.ExecContext(ctx, `DELETE FROM session_kv WHERE k = ?`, k); err != nil {
			return err
		}
	}
	return nil
}

// Token returns the bearer token, if any. Errors read as "absent": a broken
// store must not block the login path.
func (s Store) Token() (string, bool) {
	v, ok, err := s.get(keyToken)
	if err != nil || !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func (s Store) User() (model.User, bool) {
	v, ok, err := s.get(keyUser)
	if err != nil || !ok {
		return model.User{}, false
	}
	var u model.User
	if err := json.Unmarshal([]byte(v), &u); err != nil {
		return model.User{}, false
	}
	return u, true
}

// SetSession replaces the token/user pair wholesale.
func (s Store) SetSession(token string, u model.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.set(map[string]string{
		keyToken: token,
		keyUser:  string(b),
	})
}

// Clear removes the token/user pair. Theme preference is independent and
// survives logout.
func (s Store) Clear() error {
	return s.del(keyToken, keyUser)
}

func (s Store) Theme() string {
	v, _, _ := s.get(keyTheme)
	return strings.TrimSpace(v)
}

func (s Store) SetTheme(theme string) error {
	return s.set(map[string]string{keyTheme: strings.TrimSpace(theme)})
}
