package auth

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// SessionStore keeps server-side sessions. Lookup returns an empty subject for unknown or
// expired sessions.
type SessionStore interface {
	Create(ctx context.Context, subjectID string, ttl time.Duration) (string, error)
	Lookup(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionAuth binds users through a session cookie instead of a bearer token.
type SessionAuth struct {
	store  SessionStore
	cookie string
	ttl    time.Duration
	secure bool
}

// NewSessionAuth constructs the session binding.
func NewSessionAuth(store SessionStore, cookie string, ttl time.Duration, secure bool) *SessionAuth {
	if cookie == "" {
		cookie = "sid"
	}
	return &SessionAuth{store: store, cookie: cookie, ttl: ttl, secure: secure}
}

// Handle resolves the session cookie into an identity.
func (m *SessionAuth) Handle(c *fiber.Ctx) error {
	sessionID := c.Cookies(m.cookie)
	if sessionID == "" {
		return apperrors.NewUnauthenticated("Access Denied")
	}

	subjectID, err := m.store.Lookup(c.UserContext(), sessionID)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if subjectID == "" {
		return apperrors.NewUnauthenticated("Access Denied")
	}

	c.Locals(identityKey, domain.Identity{SubjectID: subjectID})
	return c.Next()
}

// Establish opens a session for the identity and sets the cookie. No token is returned.
func (m *SessionAuth) Establish(c *fiber.Ctx, identity domain.Identity) (string, error) {
	sessionID, err := m.store.Create(c.UserContext(), identity.SubjectID, m.ttl)
	if err != nil {
		return "", err
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cookie,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return "", nil
}

// Clear deletes the current session and expires the cookie.
func (m *SessionAuth) Clear(c *fiber.Ctx) error {
	if sessionID := c.Cookies(m.cookie); sessionID != "" {
		if err := m.store.Delete(c.UserContext(), sessionID); err != nil {
			return err
		}
	}
	c.ClearCookie(m.cookie)
	return nil
}
