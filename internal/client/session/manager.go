// Package session owns the authenticated-session lifecycle: it stores the
// access token, exposes it as a bearer credential for outbound requests, and
// reacts to authorization failures reported by the API client.
//
// The manager is the only component allowed to clear the token or force the
// application back to the login flow. The token is persisted in the local
// metadata store so a session survives process restarts.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/repositories/metadata"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/logging"
)

const (
	tokenKey = "access_token"
	emailKey = "last_email"
)

// now is a test seam for expiry checks.
var now = time.Now

// Manager holds the process-wide session token. Reads are frequent (every
// outbound request); writes happen only on login, logout and 401 handling.
type Manager struct {
	mu    sync.Mutex
	token string
	// armed gates the logged-out transition: a burst of concurrent 401s
	// fires the navigation callback exactly once. SetToken re-arms.
	armed    bool
	email    string
	store    metadata.Repository
	onLogout func()
	log      logging.Logger
}

func NewManager(store metadata.Repository, log logging.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// SetNavigateToLogin registers the callback fired when the session ends
// involuntarily (401 from the server). Intended for the presentation layer.
func (m *Manager) SetNavigateToLogin(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLogout = fn
}

// Restore loads a previously persisted token and last-login email, if any.
// Call once at startup.
func (m *Manager) Restore(ctx context.Context) error {
	value, err := m.store.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	email, err := m.store.Get(ctx, emailKey)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(value) > 0 {
		m.token = string(value)
		m.armed = true
	}
	m.email = string(email)
	return nil
}

// SetToken stores the token for the process lifetime and persists it so the
// session survives restarts. It also re-arms the 401 handler.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	if err := m.store.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.armed = true
	return nil
}

// SetEmail remembers the email the session was established with. It survives
// restarts and logout, so a returning user sees who they last signed in as.
func (m *Manager) SetEmail(ctx context.Context, email string) error {
	if err := m.store.Set(ctx, emailKey, []byte(email)); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.email = email
	return nil
}

// Email returns the last-login email, or "" when none was recorded.
func (m *Manager) Email() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.email
}

// ClearToken ends the session voluntarily (logout).
func (m *Manager) ClearToken(ctx context.Context) error {
	if err := m.store.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.armed = false
	return nil
}

// Token returns the current token and whether one is present. A token whose
// exp claim has passed counts as absent; tokens that are not JWTs are treated
// as opaque and present (the server is the authority on validity either way).
func (m *Manager) Token() (string, bool) {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()

	if token == "" {
		return "", false
	}
	if expired(token) {
		return "", false
	}
	return token, true
}

// AuthorizationHeader returns a bearer-credential header value when a token
// is present. Implements api.CredentialSource.
func (m *Manager) AuthorizationHeader() (string, bool) {
	token, ok := m.Token()
	if !ok {
		return "", false
	}
	return "Bearer " + token, true
}

// HandleUnauthorized reacts to a 401 from the server: it clears the stored
// token and fires the logged-out navigation exactly once per failure burst.
// Clearing an already-cleared token is a no-op, so concurrent in-flight
// failures collapse into a single transition. Implements api.CredentialSource.
func (m *Manager) HandleUnauthorized() {
	m.mu.Lock()
	if !m.armed {
		m.mu.Unlock()
		return
	}
	m.armed = false
	m.token = ""
	fn := m.onLogout
	m.mu.Unlock()

	ctx := context.Background()
	if err := m.store.Delete(ctx, tokenKey); err != nil {
		m.log.Error(ctx, "failed to remove persisted session", "error", err)
	}
	m.log.Warn(ctx, "session rejected by server, logging out")

	if fn != nil {
		fn()
	}
}

// expired reports whether token is a JWT with an exp claim in the past.
func expired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now())
}
