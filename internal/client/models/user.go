// Package models defines the wire structures exchanged with the property
// management service. Field tags follow the backend's snake_case JSON.
package models

// UserProfile describes the authenticated resident.
type UserProfile struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	PropertyID int64  `json:"property_id"`
}

// LoginResult is the body of a successful authentication call.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserProfile `json:"user"`
}

// RegisterRequest is the registration payload. Validation happens server-side.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	PropertyID int64  `json:"property_id,omitempty"`
}

// RegisterResult acknowledges a registration; no session is created.
type RegisterResult struct {
	Success bool `json:"success"`
}
