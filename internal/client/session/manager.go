// Package session owns the client's session state: the bearer token and the
// cached user profile, held in memory and mirrored into the durable store.
// Token and profile are always mutated together; the store is written
// synchronously after every mutation and read exactly once at startup.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/Sakee8848/property-management-ai/internal/client/api"
	"github.com/Sakee8848/property-management-ai/internal/client/models"
	sessionrepo "github.com/Sakee8848/property-management-ai/internal/client/repositories/session"
	"github.com/Sakee8848/property-management-ai/internal/dbx"
	"github.com/Sakee8848/property-management-ai/internal/logging"
)

// Durable store keys.
const (
	keyToken   = "token"
	keyProfile = "profile"
)

// Manager is the session manager. It implements api.Session, so the
// pipeline reads the token from it and clears it on session expiry.
type Manager struct {
	db   *sql.DB
	doer api.Doer
	log  logging.Logger

	mu      sync.Mutex
	token   string
	profile *models.UserProfile
}

// NewManager builds a Manager over the client database. The transport is
// attached separately (UseTransport) because the pipeline in turn needs the
// manager as its token source.
func NewManager(db *sql.DB, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &Manager{db: db, log: log}
}

// UseTransport wires the request pipeline the manager sends its own calls
// through. Must be called before Login/Register/RefreshProfile.
func (m *Manager) UseTransport(d api.Doer) { m.doer = d }

func (m *Manager) repo(db dbx.DBTX) sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(db)
}

// Restore loads the token and cached profile from the durable store. No
// network call; an empty store means the session starts unauthenticated.
func (m *Manager) Restore(ctx context.Context) error {
	repo := m.repo(m.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("restore token: %w", err)
	}

	var profile *models.UserProfile
	raw, err := repo.Get(ctx, keyProfile)
	if err != nil {
		return fmt.Errorf("restore profile: %w", err)
	}
	if raw != nil {
		profile = &models.UserProfile{}
		if err := json.Unmarshal(raw, profile); err != nil {
			return fmt.Errorf("decode stored profile: %w", err)
		}
	}

	m.mu.Lock()
	m.token = string(token)
	m.profile = profile
	m.mu.Unlock()
	return nil
}

// Login authenticates with the backend and stores the returned token and
// profile in memory and in the durable store. Backend failures come back as
// *AuthError carrying a user-displayable message. Concurrent logins are not
// serialized; whichever response completes last wins.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := m.doer.Do(ctx, api.NewRequest(http.MethodPost, "/api/auth/login", form))
	if err != nil {
		return loginFailed(err)
	}

	var result models.LoginResult
	if err := resp.Decode(&result); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}

	return m.setSession(ctx, result.AccessToken, &result.User)
}

// Register forwards the payload to the registration endpoint. Success
// creates no session; failures come back as *AuthError.
func (m *Manager) Register(ctx context.Context, payload models.RegisterRequest) error {
	if _, err := m.doer.Do(ctx, api.NewRequest(http.MethodPost, "/api/auth/register", payload)); err != nil {
		return registerFailed(err)
	}
	return nil
}

// Logout clears the in-memory session and erases the durable store entries.
// Idempotent and never fails; store errors are logged and swallowed.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.profile = nil
	m.mu.Unlock()

	if err := m.repo(m.db).Clear(context.Background()); err != nil {
		m.log.Error(context.Background(), "failed to clear session store", "error", err)
	}
}

// RefreshProfile fetches the current profile and overwrites the cached one.
// Best-effort: on failure it logs and leaves existing state untouched.
func (m *Manager) RefreshProfile(ctx context.Context) {
	resp, err := m.doer.Do(ctx, api.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if err != nil {
		m.log.Error(ctx, "failed to refresh profile", "error", err)
		return
	}

	var profile models.UserProfile
	if err := resp.Decode(&profile); err != nil {
		m.log.Error(ctx, "failed to decode profile", "error", err)
		return
	}

	m.mu.Lock()
	m.profile = &profile
	m.mu.Unlock()

	if err := m.persistProfile(ctx, &profile); err != nil {
		m.log.Error(ctx, "failed to persist profile", "error", err)
	}
}

// Token returns the current bearer token, "" when unauthenticated.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Profile returns a copy of the cached profile, or nil when absent.
func (m *Manager) Profile() *models.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil
	}
	p := *m.profile
	return &p
}

// setSession swaps the in-memory pair and mirrors both values into the
// durable store in a single transaction.
func (m *Manager) setSession(ctx context.Context, token string, profile *models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	m.mu.Lock()
	m.token = token
	m.profile = profile
	m.mu.Unlock()

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.repo(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyProfile, raw)
	})
}

func (m *Manager) persistProfile(ctx context.Context, profile *models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return m.repo(m.db).Set(ctx, keyProfile, raw)
}
