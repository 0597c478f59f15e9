package dto

// Envelope wraps every successful JSON response.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Status  int            `json:"status"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Errors  map[string]any `json:"errors,omitempty"`
}

// AuthResponse is returned by login and registration. Token is empty under the session
// binding, where the cookie carries the credential.
type AuthResponse struct {
	Token string `json:"token,omitempty"`
}
