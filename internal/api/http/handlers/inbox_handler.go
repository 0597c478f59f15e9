package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/dto"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/service"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// InboxErrors is the failure triage for inbox endpoints.
var InboxErrors = apperrors.Translator{Resource: "Message"}

// InboxHandler serves /api/inbox.
type InboxHandler struct {
	inbox *service.InboxService
}

// NewInboxHandler wires the inbox service.
func NewInboxHandler(inbox *service.InboxService) *InboxHandler {
	return &InboxHandler{inbox: inbox}
}

// Create handles the public contact form. It answers 204 with no body.
func (h *InboxHandler) Create(c *fiber.Ctx) error {
	var req dto.InboxRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if _, err := h.inbox.Create(c.UserContext(), service.InboxInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
	}); err != nil {
		return InboxErrors.Translate(err)
	}
	return noContent(c)
}

func (h *InboxHandler) List(c *fiber.Ctx) error {
	messages, err := h.inbox.List(c.UserContext())
	if err != nil {
		return InboxErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", messages)
}

func (h *InboxHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, InboxErrors)
	if err != nil {
		return err
	}
	msg, err := h.inbox.Get(c.UserContext(), id)
	if err != nil {
		return InboxErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", msg)
}

func (h *InboxHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, InboxErrors)
	if err != nil {
		return err
	}
	if err := h.inbox.Delete(c.UserContext(), id); err != nil {
		return InboxErrors.Translate(err)
	}
	return noContent(c)
}
