package domain

import "errors"

// SessionCookieName is the cookie holding the signed-in user's email.
const SessionCookieName = "session_user"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Credential is a statically seeded sign-in identity.
type Credential struct {
	EmpID    int    `json:"empId"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
