package models

// User is a dashboard login. Password holds the bcrypt hash, never plaintext.
type User struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"-"`
	Role     string `json:"role"` // "admin", "dispatcher" or "viewer"
	Status   string `json:"status"`
}
