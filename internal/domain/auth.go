package domain

// RoleAdmin is the role claim carried by admin tokens.
const RoleAdmin = "admin"

// Identity is the minimal set of claims trusted for the duration of one request.
// It is rebuilt on every request and never persisted.
type Identity struct {
	SubjectID string
	Role      string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
