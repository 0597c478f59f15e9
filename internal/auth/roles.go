package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// RequireSelf ensures the authenticated subject is the one named by the path parameter.
// It must run after a binding's Handle.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("Access Denied")
		}
		if identity.SubjectID != c.Params(param) {
			return apperrors.NewForbidden("not allowed to act on another account")
		}
		return c.Next()
	}
}
