package models

// User is the authenticated user's record as returned by the backend on
// login/signup and persisted alongside the token.
type User struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the persisted (token, user) pair surviving across process
// restarts. A Session with an empty Token carries no user: the store
// never persists a user record without a token.
type Session struct {
	Token string
	User  *User
}

// Active reports whether the session holds a token.
func (s Session) Active() bool {
	return s.Token != ""
}
