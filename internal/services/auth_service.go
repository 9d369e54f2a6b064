package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
	"tourapi/internal/repositories"
	"tourapi/internal/utils"
)

type AuthService struct {
	AdminRepo repositories.AdminRepository
	JWTSecret []byte
	TokenTTL  time.Duration
	RequestID string
}

// Login checks credentials and issues a signed bearer token for the admin
// package editor.
func (s AuthService) Login(email, password string) (string, models.AdminUser, error) {
	user, err := s.AdminRepo.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.AdminUser{}, domain.UnauthorizedError{Msg: "invalid email or password"}
		}
		return "", models.AdminUser{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.AdminUser{}, domain.UnauthorizedError{Msg: "invalid email or password"}
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", models.AdminUser{}, domain.InternalError{Msg: "could not sign token", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", "email="+user.Email)
	return signed, user, nil
}

// VerifyToken parses and validates a bearer token, returning its claims.
func (s AuthService) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.UnauthorizedError{Msg: "unexpected signing method"}
		}
		return s.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.UnauthorizedError{Msg: "invalid token claims"}
	}
	return claims, nil
}
