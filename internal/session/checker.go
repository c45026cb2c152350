package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

const defaultRole = "Marine Conservationist"

// MockChecker is the stand-in credential collaborator: it accepts any
// well-formed credentials and fabricates the user record, mirroring the
// absence of a real authentication backend.
type MockChecker struct {
	clock clockwork.Clock
}

// NewMockChecker creates a checker stamping join times from the given
// clock.
func NewMockChecker(clk clockwork.Clock) *MockChecker {
	return &MockChecker{clock: clk}
}

func (c *MockChecker) CheckLogin(_ context.Context, email, _ string) (domain.User, error) {
	return c.buildUser(displayNameFromEmail(email), email), nil
}

func (c *MockChecker) CheckSignup(_ context.Context, name, email, _ string) (domain.User, error) {
	return c.buildUser(name, email), nil
}

func (c *MockChecker) buildUser(name, email string) domain.User {
	now := c.clock.Now()
	return domain.User{
		ID:       fmt.Sprintf("user_%d", now.UnixMilli()),
		Email:    email,
		Name:     name,
		Role:     defaultRole,
		JoinedAt: now,
	}
}

// displayNameFromEmail derives a display name from the address local part:
// non-alphanumeric runs become spaces and each word is capitalized, so
// "jane.doe@example.com" renders as "Jane Doe".
func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// RejectingChecker fails every check with the configured reason, used to
// exercise the external-failure paths.
type RejectingChecker struct {
	Reason string
}

func (c *RejectingChecker) CheckLogin(context.Context, string, string) (domain.User, error) {
	return domain.User{}, &domain.ExternalFailure{Op: "login", Reason: c.Reason}
}

func (c *RejectingChecker) CheckSignup(context.Context, string, string, string) (domain.User, error) {
	return domain.User{}, &domain.ExternalFailure{Op: "signup", Reason: c.Reason}
}
