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

// UserErrors is the failure triage for user endpoints.
var UserErrors = apperrors.Translator{
	Resource: "User",
	UniqueFields: []apperrors.FriendlyField{
		{Field: "email", Message: "Email address is already in use"},
		{Field: "phone", Message: "Phone number is already taken"},
	},
}

// UsersHandler exposes account endpoints for storefront customers.
type UsersHandler struct {
	users   *service.UserService
	binding auth.Binding
}

// NewUsersHandler constructs handler. binding establishes the credential after login or
// registration.
func NewUsersHandler(users *service.UserService, binding auth.Binding) *UsersHandler {
	return &UsersHandler{users: users, binding: binding}
}

// List handles GET /api/user.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return UserErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", dto.NewUserResponses(users))
}

// Get handles GET /api/user/:ID.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, UserErrors)
	if err != nil {
		return err
	}
	user, err := h.users.Get(c.UserContext(), id)
	if err != nil {
		return UserErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", dto.NewUserResponse(user))
}

// Create handles POST /api/user/add and signs the new user in.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.users.Create(c.UserContext(), service.UserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Country:   req.Country,
		Address:   req.Address,
	})
	if err != nil {
		return UserErrors.Translate(err)
	}

	token, err := h.binding.Establish(c, domain.Identity{SubjectID: user.ID})
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return respond(c, http.StatusCreated, "created successfully", dto.UserAuthResponse{
		User:         dto.NewUserResponse(user),
		AuthResponse: dto.AuthResponse{Token: token},
	})
}

// Login handles POST /api/user/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Validation error", missingFields(map[string]string{
			"email":    req.Email,
			"password": req.Password,
		}))
	}

	user, err := h.users.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return UserErrors.Translate(err)
	}

	token, err := h.binding.Establish(c, domain.Identity{SubjectID: user.ID})
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return respond(c, http.StatusOK, "logged in successfully", dto.UserAuthResponse{
		User:         dto.NewUserResponse(user),
		AuthResponse: dto.AuthResponse{Token: token},
	})
}

// Logout handles POST /api/user/logout. Under the bearer binding it only acknowledges.
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	if err := h.binding.Clear(c); err != nil {
		return apperrors.NewInternalError(err)
	}
	return noContent(c)
}

// Update handles PUT /api/user/:ID.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, UserErrors)
	if err != nil {
		return err
	}
	var req dto.UserUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.users.Update(c.UserContext(), id, service.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Country:   req.Country,
		Address:   req.Address,
	})
	if err != nil {
		return UserErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "updated successfully", dto.NewUserResponse(user))
}

// Delete handles DELETE /api/user/:ID.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, UserErrors)
	if err != nil {
		return err
	}
	if err := h.users.Delete(c.UserContext(), id); err != nil {
		return UserErrors.Translate(err)
	}
	return noContent(c)
}

func missingFields(values map[string]string) map[string]string {
	missing := map[string]string{}
	for field, value := range values {
		if value == "" {
			missing[field] = field + " is required"
		}
	}
	return missing
}
