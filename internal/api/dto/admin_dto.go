package dto

import (
	"time"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
)

// AdminCreateRequest payload for POST /api/admin/add.
type AdminCreateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// AdminUpdateRequest payload for PUT /api/admin/:ID.
type AdminUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	UserName  *string `json:"userName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Phone     *string `json:"phone"`
}

// AdminLoginRequest accepts either an email or a user name in Login. Email and UserName are
// accepted as aliases.
type AdminLoginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Identifier returns the first non-empty login field.
func (r AdminLoginRequest) Identifier() string {
	for _, v := range []string{r.Login, r.Email, r.UserName} {
		if v != "" {
			return v
		}
	}
	return ""
}

type AdminResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AdminAuthResponse struct {
	Admin AdminResponse `json:"admin"`
	AuthResponse
}

func NewAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		UserName:  a.UserName,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewAdminResponses(admins []domain.Admin) []AdminResponse {
	out := make([]AdminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, NewAdminResponse(&admins[i]))
	}
	return out
}
