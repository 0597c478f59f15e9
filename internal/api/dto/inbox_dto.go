package dto

// InboxRequest payload for POST /api/inbox/add.
type InboxRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}
