package domain

// Identity is who the current session acts as. It is derived from the token or
// from the credential-exchange response and never edited by the client.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// HasRole reports whether the identity's role is in allowed. An empty allowed
// set admits every identity.
func (i *Identity) HasRole(allowed ...Role) bool {
	if i == nil {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if i.Role == r {
			return true
		}
	}
	return false
}

// AuthResponse is the body returned by both login and signup.
type AuthResponse struct {
	Token   string `json:"token"`
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Message string `json:"message,omitempty"`
}

// Identity projects the response onto the session identity.
func (a AuthResponse) Identity() *Identity {
	return &Identity{ID: a.UserID, Email: a.Email, Role: a.Role}
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the signup form. Role is validated on the client before any
// request is sent.
type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=STUDENT RECRUITER"`
	FullName string `json:"fullName" validate:"required"`
}
