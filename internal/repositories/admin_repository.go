package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
)

type AdminRepository struct {
	DB *sql.DB
}

// GetByEmail loads an admin account for login.
func (r AdminRepository) GetByEmail(email string) (models.AdminUser, error) {
	var u models.AdminUser
	err := r.DB.QueryRow(
		`SELECT id, email, password_hash, role FROM admin_users WHERE email = ? LIMIT 1`,
		strings.ToLower(strings.TrimSpace(email)),
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role)
	if err == sql.ErrNoRows {
		return models.AdminUser{}, domain.NotFoundError{Resource: "admin user"}
	}
	if err != nil {
		return models.AdminUser{}, fmt.Errorf("get admin user: %w", err)
	}
	return u, nil
}
