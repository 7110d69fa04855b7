package models

// ErrorResponse is the JSON envelope for every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the envelope for mutations that do not echo a resource
// back (register, contact, message status updates).
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// LoginResponse is returned by the login and admin-login endpoints.
type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}
