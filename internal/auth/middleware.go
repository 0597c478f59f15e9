package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

const identityKey = "auth_identity"

// Binding authenticates requests for one resource family and establishes the credential
// after a successful login or registration. Bearer and session bindings are never mixed
// for the same family.
type Binding interface {
	Handle(c *fiber.Ctx) error
	Establish(c *fiber.Ctx, identity domain.Identity) (string, error)
	Clear(c *fiber.Ctx) error
}

var (
	_ Binding = (*BearerAuth)(nil)
	_ Binding = (*SessionAuth)(nil)
)

// BearerAuth validates tokens from the Authorization header and attaches the identity.
type BearerAuth struct {
	codec        *TokenCodec
	requireAdmin bool
}

// NewUserAuth builds the bearer middleware for regular users.
func NewUserAuth(codec *TokenCodec) *BearerAuth {
	return &BearerAuth{codec: codec}
}

// NewAdminAuth builds the bearer middleware for admins; verified tokens must also carry the
// admin role.
func NewAdminAuth(codec *TokenCodec) *BearerAuth {
	return &BearerAuth{codec: codec, requireAdmin: true}
}

// Handle enforces authentication for protected routes.
func (m *BearerAuth) Handle(c *fiber.Ctx) error {
	token := ExtractToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		return apperrors.NewUnauthenticated("Access Denied")
	}

	identity, err := m.codec.Verify(token)
	if err != nil {
		reason := VerificationMalformed
		var verr *VerificationError
		if errors.As(err, &verr) {
			reason = verr.Kind
		}
		return apperrors.NewInvalidCredential("Invalid token", http.StatusForbidden, map[string]any{"reason": string(reason)})
	}

	if m.requireAdmin && !identity.IsAdmin() {
		return apperrors.NewForbidden("Admin role required")
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// Establish issues a token and exposes it as "Authorization: Bearer <token>".
func (m *BearerAuth) Establish(c *fiber.Ctx, identity domain.Identity) (string, error) {
	token, err := m.codec.Issue(identity)
	if err != nil {
		return "", err
	}
	c.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return token, nil
}

// Clear is a no-op: tokens are stateless and cannot be revoked server side.
func (m *BearerAuth) Clear(_ *fiber.Ctx) error {
	return nil
}

// ExtractToken returns the token from an Authorization header value. The "Bearer " prefix
// is optional and matched case-insensitively.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= 6 && strings.EqualFold(header[:6], "Bearer") && (len(header) == 6 || header[6] == ' ') {
		header = header[6:]
	}
	return strings.TrimSpace(header)
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(domain.Identity)
	return identity, ok
}
