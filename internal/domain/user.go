package domain

import "time"

// User is a storefront customer account.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName" validate:"required,max=100"`
	LastName     string    `json:"lastName" validate:"required,max=100"`
	Email        string    `json:"email" validate:"required,email,max=254"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone" validate:"required,phone,max=30"`
	Country      string    `json:"country" validate:"required,max=100"`
	Address      string    `json:"address" validate:"required,max=250"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
