package session

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanguardio/oceanguard/internal/domain"
	"github.com/oceanguardio/oceanguard/internal/persist"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type loginResult struct {
	user domain.User
	err  error
}

// loginAsync runs Login on a goroutine and advances the fake clock past
// the simulated network latency once the call is parked on it.
func loginAsync(t *testing.T, m *Manager, fake *clockwork.FakeClock, email, password string) loginResult {
	t.Helper()
	done := make(chan loginResult, 1)
	go func() {
		u, err := m.Login(context.Background(), email, password)
		done <- loginResult{u, err}
	}()
	fake.BlockUntil(1)
	fake.Advance(DefaultLatency)
	return <-done
}

func newManager(t *testing.T, kv persist.KV, checker CredentialChecker) (*Manager, *clockwork.FakeClock) {
	t.Helper()
	fake := clockwork.NewFakeClock()
	if checker == nil {
		checker = NewMockChecker(fake)
	}
	m := NewManager(kv, checker, fake, DefaultLatency, discardLogger())
	return m, fake
}

func TestHydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing record resolves anonymous", func(t *testing.T) {
		m, _ := newManager(t, persist.NewMemory(), nil)
		assert.Equal(t, StatusLoading, m.Status())
		m.Hydrate(ctx)
		assert.Equal(t, StatusAnonymous, m.Status())
		assert.Nil(t, m.User())
	})

	t.Run("valid record resolves authenticated", func(t *testing.T) {
		kv := persist.NewMemory()
		require.NoError(t, kv.Set(ctx, persist.KeyUser,
			`{"id":"user_1","email":"a@b.com","name":"A","role":"Marine Conservationist"}`))

		m, _ := newManager(t, kv, nil)
		m.Hydrate(ctx)
		assert.Equal(t, StatusAuthenticated, m.Status())
		require.NotNil(t, m.User())
		assert.Equal(t, "a@b.com", m.User().Email)
	})

	t.Run("corrupt record is discarded silently", func(t *testing.T) {
		kv := persist.NewMemory()
		require.NoError(t, kv.Set(ctx, persist.KeyUser, "{not json"))

		m, _ := newManager(t, kv, nil)
		m.Hydrate(ctx)
		assert.Equal(t, StatusAnonymous, m.Status())

		_, err := kv.Get(ctx, persist.KeyUser)
		assert.ErrorIs(t, err, persist.ErrNotFound, "corrupt value removed")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("short password fails before any external call", func(t *testing.T) {
		m, _ := newManager(t, persist.NewMemory(), nil)
		m.Hydrate(ctx)

		_, err := m.Login(ctx, "a@b.com", "12345")
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "password", verr.Field)
		assert.Equal(t, StatusAnonymous, m.Status(), "auth state stays anonymous")
	})

	t.Run("missing email fails locally", func(t *testing.T) {
		m, _ := newManager(t, persist.NewMemory(), nil)
		m.Hydrate(ctx)

		_, err := m.Login(ctx, "", "123456")
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("success persists the record and authenticates", func(t *testing.T) {
		kv := persist.NewMemory()
		m, fake := newManager(t, kv, nil)
		m.Hydrate(ctx)

		res := loginAsync(t, m, fake, "jane.doe@example.com", "123456")
		require.NoError(t, res.err)
		assert.Equal(t, "Jane Doe", res.user.Name)
		assert.Equal(t, "Marine Conservationist", res.user.Role)
		assert.Equal(t, StatusAuthenticated, m.Status())

		raw, err := kv.Get(ctx, persist.KeyUser)
		require.NoError(t, err)
		assert.Contains(t, raw, "jane.doe@example.com")
	})

	t.Run("rejection rolls back to anonymous", func(t *testing.T) {
		m, fake := newManager(t, persist.NewMemory(), &RejectingChecker{Reason: "invalid email or password"})
		m.Hydrate(ctx)

		res := loginAsync(t, m, fake, "a@b.com", "123456")
		var eerr *domain.ExternalFailure
		require.ErrorAs(t, res.err, &eerr)
		assert.Equal(t, "invalid email or password", eerr.Reason)
		assert.Equal(t, StatusAnonymous, m.Status())
		assert.Nil(t, m.User())
	})

	t.Run("cancellation restores the previous state", func(t *testing.T) {
		m, _ := newManager(t, persist.NewMemory(), nil)
		m.Hydrate(ctx)

		cancelCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() {
			_, err := m.Login(cancelCtx, "a@b.com", "123456")
			done <- err
		}()
		cancel()
		assert.Error(t, <-done)
		assert.Equal(t, StatusAnonymous, m.Status())
	})
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("missing name", func(t *testing.T) {
		m, _ := newManager(t, persist.NewMemory(), nil)
		m.Hydrate(ctx)

		_, err := m.Signup(ctx, "", "a@b.com", "123456")
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("success keeps the supplied name", func(t *testing.T) {
		m, fake := newManager(t, persist.NewMemory(), nil)
		m.Hydrate(ctx)

		done := make(chan loginResult, 1)
		go func() {
			u, err := m.Signup(context.Background(), "Asha R", "asha@example.com", "123456")
			done <- loginResult{u, err}
		}()
		fake.BlockUntil(1)
		fake.Advance(DefaultLatency)

		res := <-done
		require.NoError(t, res.err)
		assert.Equal(t, "Asha R", res.user.Name)
		assert.Equal(t, StatusAuthenticated, m.Status())
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	kv := persist.NewMemory()
	m, fake := newManager(t, kv, nil)
	m.Hydrate(ctx)

	res := loginAsync(t, m, fake, "a@b.com", "123456")
	require.NoError(t, res.err)

	m.Logout(ctx)
	assert.Equal(t, StatusAnonymous, m.Status())
	assert.Nil(t, m.User())
	_, err := kv.Get(ctx, persist.KeyUser)
	assert.ErrorIs(t, err, persist.ErrNotFound)
}

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected string
	}{
		{"jane.doe@example.com", "Jane Doe"},
		{"marine_watch42@gov.in", "Marine Watch42"},
		{"a@b.com", "A"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.expected, displayNameFromEmail(tt.email))
		})
	}
}
