// Package session holds the current user identity and authentication
// state. At most one user is authenticated at a time; the record persists
// across restarts through the persistence collaborator.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oceanguardio/oceanguard/internal/domain"
	"github.com/oceanguardio/oceanguard/internal/persist"
)

// DefaultLatency models the simulated network round-trip of a credential
// check.
const DefaultLatency = 1500 * time.Millisecond

// Status is the session state machine:
// loading → {anonymous, authenticated}; authenticated → anonymous.
type Status string

const (
	StatusLoading       Status = "loading"
	StatusAnonymous     Status = "anonymous"
	StatusAuthenticated Status = "authenticated"
)

// CredentialChecker is the external collaborator that accepts or rejects
// credentials. The core implements only the state machine around it.
type CredentialChecker interface {
	CheckLogin(ctx context.Context, email, password string) (domain.User, error)
	CheckSignup(ctx context.Context, name, email, password string) (domain.User, error)
}

// Manager owns the session state. Concurrent login/signup calls each
// resolve independently; the stored record follows the last writer.
type Manager struct {
	mu      sync.Mutex
	status  Status
	user    *domain.User
	kv      persist.KV
	checker CredentialChecker
	clock   clockwork.Clock
	latency time.Duration
	logger  *slog.Logger
}

// NewManager creates a session manager in the loading state. Call Hydrate
// to resolve it.
func NewManager(kv persist.KV, checker CredentialChecker, clk clockwork.Clock, latency time.Duration, logger *slog.Logger) *Manager {
	if latency <= 0 {
		latency = DefaultLatency
	}
	return &Manager{
		status:  StatusLoading,
		kv:      kv,
		checker: checker,
		clock:   clk,
		latency: latency,
		logger:  logger,
	}
}

// Status returns the current session state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// User returns the authenticated user, or nil when anonymous.
func (m *Manager) User() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Hydrate resolves the loading state from the persisted record. Missing
// data resolves to anonymous; a corrupt value is discarded silently and
// also resolves to anonymous. Never returns an error to the caller.
func (m *Manager) Hydrate(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := m.kv.Get(ctx, persist.KeyUser)
	if err != nil {
		m.status = StatusAnonymous
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		m.logger.Debug("discarding corrupt session record", "error", err)
		_ = m.kv.Remove(ctx, persist.KeyUser)
		m.status = StatusAnonymous
		return
	}

	m.user = &user
	m.status = StatusAuthenticated
}

// Login validates locally, simulates network latency, and delegates to the
// credential checker. On success the user record is persisted and the
// session becomes authenticated; on failure the session returns to
// anonymous with a specific reason.
func (m *Manager) Login(ctx context.Context, email, password string) (domain.User, error) {
	if err := validateLogin(email, password); err != nil {
		return domain.User{}, err
	}

	return m.authenticate(ctx, func(ctx context.Context) (domain.User, error) {
		return m.checker.CheckLogin(ctx, email, password)
	})
}

// Signup validates locally, simulates network latency, and delegates to
// the credential checker, with the same state transitions as Login.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	if err := validateSignup(name, email, password); err != nil {
		return domain.User{}, err
	}

	return m.authenticate(ctx, func(ctx context.Context) (domain.User, error) {
		return m.checker.CheckSignup(ctx, name, email, password)
	})
}

// Logout clears the persisted record and returns to anonymous.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_ = m.kv.Remove(ctx, persist.KeyUser)
	m.user = nil
	m.status = StatusAnonymous
}

func (m *Manager) authenticate(ctx context.Context, check func(context.Context) (domain.User, error)) (domain.User, error) {
	m.mu.Lock()
	prev := m.status
	m.status = StatusLoading
	m.mu.Unlock()

	// Deferred completion, not a blocking wait: the wait is cancelable and
	// nothing else is held up while it is pending.
	select {
	case <-ctx.Done():
		m.restore(prev)
		return domain.User{}, ctx.Err()
	case <-m.clock.After(m.latency):
	}

	user, err := check(ctx)
	if err != nil {
		m.mu.Lock()
		m.user = nil
		m.status = StatusAnonymous
		m.mu.Unlock()
		return domain.User{}, err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		m.restore(prev)
		return domain.User{}, fmt.Errorf("encode session record: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.kv.Set(ctx, persist.KeyUser, string(raw)); err != nil {
		m.logger.Warn("persisting session record failed", "error", err)
	}
	m.user = &user
	m.status = StatusAuthenticated
	return user, nil
}

func (m *Manager) restore(prev Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev == StatusLoading {
		prev = StatusAnonymous
	}
	m.status = prev
}

func validateLogin(email, password string) error {
	if len(password) < 6 {
		return &domain.ValidationError{Field: "password", Reason: "password must be at least 6 characters"}
	}
	if email == "" {
		return &domain.ValidationError{Field: "email", Reason: "invalid email or password"}
	}
	return nil
}

func validateSignup(name, email, password string) error {
	if name == "" {
		return &domain.ValidationError{Field: "name", Reason: "name is required"}
	}
	if email == "" {
		return &domain.ValidationError{Field: "email", Reason: "email is required"}
	}
	if len(password) < 6 {
		return &domain.ValidationError{Field: "password", Reason: "password must be at least 6 characters"}
	}
	return nil
}
