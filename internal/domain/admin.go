package domain

import "time"

// Admin is a back-office account. Admin tokens carry the admin role claim.
type Admin struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName" validate:"required,max=100"`
	LastName     string    `json:"lastName" validate:"required,max=100"`
	UserName     string    `json:"userName" validate:"required,min=4,max=15,excludes=@"`
	Email        string    `json:"email" validate:"required,email,max=254"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone" validate:"required,phone,max=30"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
