package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/dto"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/auth"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/service"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// AdminErrors is the failure triage for admin endpoints.
var AdminErrors = apperrors.Translator{
	Resource: "Admin",
	UniqueFields: []apperrors.FriendlyField{
		{Field: "email", Message: "Email address is already in use"},
		{Field: "userName", Message: "Username is already taken"},
		{Field: "phone", Message: "Phone number is already taken"},
	},
}

// AdminsHandler exposes back-office account endpoints.
type AdminsHandler struct {
	admins  *service.AdminService
	binding auth.Binding
}

// NewAdminsHandler wires the admin service and the admin bearer binding.
func NewAdminsHandler(admins *service.AdminService, binding auth.Binding) *AdminsHandler {
	return &AdminsHandler{admins: admins, binding: binding}
}

func (h *AdminsHandler) List(c *fiber.Ctx) error {
	admins, err := h.admins.List(c.UserContext())
	if err != nil {
		return AdminErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", dto.NewAdminResponses(admins))
}

func (h *AdminsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, AdminErrors)
	if err != nil {
		return err
	}
	admin, err := h.admins.Get(c.UserContext(), id)
	if err != nil {
		return AdminErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", dto.NewAdminResponse(admin))
}

// Create handles POST /api/admin/add. The caller is already an admin, so no credential is
// issued for the new account.
func (h *AdminsHandler) Create(c *fiber.Ctx) error {
	var req dto.AdminCreateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	admin, err := h.admins.Create(c.UserContext(), service.AdminInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		return AdminErrors.Translate(err)
	}
	return respond(c, http.StatusCreated, "created successfully", dto.NewAdminResponse(admin))
}

// Login handles POST /api/admin/login with an email or user name.
func (h *AdminsHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	login := req.Identifier()
	if login == "" || req.Password == "" {
		return apperrors.NewValidationError("Validation error", missingFields(map[string]string{
			"login":    login,
			"password": req.Password,
		}))
	}

	admin, err := h.admins.Authenticate(c.UserContext(), login, req.Password)
	if err != nil {
		return AdminErrors.Translate(err)
	}

	token, err := h.binding.Establish(c, domain.Identity{SubjectID: admin.ID, Role: domain.RoleAdmin})
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return respond(c, http.StatusOK, "logged in successfully", dto.AdminAuthResponse{
		Admin:        dto.NewAdminResponse(admin),
		AuthResponse: dto.AuthResponse{Token: token},
	})
}

func (h *AdminsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, AdminErrors)
	if err != nil {
		return err
	}
	var req dto.AdminUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	admin, err := h.admins.Update(c.UserContext(), id, service.AdminPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		return AdminErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "updated successfully", dto.NewAdminResponse(admin))
}

func (h *AdminsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, AdminErrors)
	if err != nil {
		return err
	}
	if err := h.admins.Delete(c.UserContext(), id); err != nil {
		return AdminErrors.Translate(err)
	}
	return noContent(c)
}
