// Package session implements the token-addressed session store consumed by
// the auth service, backed by alexedwards/scs.
package session

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"

	"github.com/mvoskres/postroom/internal/auth"
	"github.com/mvoskres/postroom/internal/config"
)

// sessionKeyUserID is the key under which the authenticated user id lives
// in session data.
const sessionKeyUserID = "user_id"

// Manager wraps scs.SessionManager with the token-addressed operations the
// auth service needs.
type Manager struct {
	*scs.SessionManager
}

var _ auth.SessionManager = (*Manager)(nil)

// NewManager creates a session manager persisted in the given SQLite
// database. The sqlDB parameter should be the raw *sql.DB underlying GORM.
func NewManager(sqlDB *sql.DB, cfg config.Auth) (*Manager, error) {
	// sqlite3store expects this schema to exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.SessionLifetime
	sm.IdleTimeout = cfg.SessionLifetime / 2

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// NewMemoryManager creates a manager backed by an in-memory store. Used in
// tests and when no database is configured.
func NewMemoryManager(cfg config.Auth) *Manager {
	sm := scs.New()
	sm.Store = memstore.New()
	if cfg.SessionLifetime > 0 {
		sm.Lifetime = cfg.SessionLifetime
	}
	return &Manager{SessionManager: sm}
}

// SetUserID binds userID to the session identified by token, overwriting
// any previous binding. When token does not name a live session a new one
// is created; the returned token is the one the binding lives under.
func (m *Manager) SetUserID(ctx context.Context, token string, userID uint) (string, error) {
	sctx, err := m.Load(ctx, token)
	if err != nil {
		return token, err
	}

	m.Put(sctx, sessionKeyUserID, int(userID))

	committed, _, err := m.Commit(sctx)
	if err != nil {
		return token, err
	}
	return committed, nil
}

// GetUserID returns the user id bound to token, or 0 when the token is
// unknown, expired or anonymous.
func (m *Manager) GetUserID(ctx context.Context, token string) (uint, error) {
	sctx, err := m.Load(ctx, token)
	if err != nil {
		return 0, err
	}
	return uint(m.GetInt(sctx, sessionKeyUserID)), nil
}

// WriteCookie sets the session cookie carrying token on the response,
// using the manager's configured cookie attributes.
func (m *Manager) WriteCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.Cookie.Name,
		Value:    token,
		Path:     m.Cookie.Path,
		Domain:   m.Cookie.Domain,
		HttpOnly: m.Cookie.HttpOnly,
		Secure:   m.Cookie.Secure,
		SameSite: m.Cookie.SameSite,
		Expires:  time.Now().Add(m.Lifetime),
		MaxAge:   int(m.Lifetime.Seconds()),
	})
}
