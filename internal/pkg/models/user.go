package models

import "time"

// UserType discriminates which stored bearer token a request uses
type UserType string

const (
	UserTypeAdmin    UserType = "admin"
	UserTypeCustomer UserType = "customer"
	UserTypeBusiness UserType = "business"
)

// Valid reports whether the user type is known
func (u UserType) Valid() bool {
	switch u {
	case UserTypeAdmin, UserTypeCustomer, UserTypeBusiness:
		return true
	}
	return false
}

// LoginPath is where an unauthenticated user of this type is redirected
func (u UserType) LoginPath() string {
	switch u {
	case UserTypeAdmin:
		return "/admin/login"
	case UserTypeBusiness:
		return "/business/login"
	}
	return "/login"
}

// Identity is the payload of the "who am I" check
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Session is a stored bearer token for a user type. ID names the client session
// holding it and travels in a cookie, never in the body.
type Session struct {
	ID        string     `json:"-"`
	UserType  UserType   `json:"user_type"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SessionRequest stores a token obtained from the API's login endpoint
type SessionRequest struct {
	UserType UserType `json:"user_type"`
	Token    string   `json:"token"`
}
