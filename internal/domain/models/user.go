package models

// AdminUser can log in to the package editor. PasswordHash is a bcrypt hash
// and never leaves the server.
type AdminUser struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
