package domain

import "time"

// InboxMessage is a contact-form submission.
type InboxMessage struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName" validate:"required,max=100"`
	LastName  string    `json:"lastName" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email,max=254"`
	Message   string    `json:"message" validate:"max=2000"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
