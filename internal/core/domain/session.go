package domain

// SessionState is a node of the session lifecycle.
//
//	anonymous --login/register--> authenticating --ok--> authenticated
//	authenticating --fail--> anonymous
//	authenticated --logout--> anonymous
//	authenticated --401--> expired
type SessionState string

const (
	StateAnonymous      SessionState = "anonymous"
	StateAuthenticating SessionState = "authenticating"
	StateAuthenticated  SessionState = "authenticated"
	StateExpired        SessionState = "expired"
)

// Session is a point-in-time copy of the session record.
type Session struct {
	State           SessionState `json:"state"`
	Identity        *Identity    `json:"identity,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsLoading       bool         `json:"isLoading"`
}

// AuthResult is what login and register hand back to views. Failures are
// reported here instead of as errors so views can render them inline.
type AuthResult struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}
