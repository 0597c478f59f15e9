package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/dto"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

const idParam = "ID"

func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{Status: status, Message: message, Data: data})
}

func noContent(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

// pathID reads the :ID parameter. Values that are not UUIDs cannot name a stored record and
// are reported as not found.
func pathID(c *fiber.Ctx, errs apperrors.Translator) (string, error) {
	id := c.Params(idParam)
	if _, err := uuid.Parse(id); err != nil {
		return "", errs.Translate(apperrors.ErrNotFound)
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
