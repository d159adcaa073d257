package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"strings"

	"github.com/rs/zerolog"

	"alumet/api/internal/config"
	"alumet/api/internal/security"
)

// AuthService authenticates the single configured admin identity. There
// is no user table: the email and password hash live in configuration,
// and a successful login is represented by a signed session token.
type AuthService struct {
	cfg *config.AppConfig
	log zerolog.Logger
}

func NewAuthService(cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{cfg: cfg, log: log}
}

// Login verifies the credentials and returns a session token to be set
// as the admin cookie. The error never distinguishes a wrong email from
// a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	admin := s.cfg.Admin
	if admin.Email == "" || admin.PasswordHash == "" || admin.SessionSecret == "" {
		s.log.Error().Msg("admin credentials or session secret not configured")
		return "", ErrNotConfigured
	}

	emailOK := equalFold(email, admin.Email)

	passwordOK, err := security.VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Msg("password hash is malformed")
		return "", ErrNotConfigured
	}

	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	token, err := security.GenerateAdminToken(admin.SessionSecret, admin.Email, admin.SessionTTL)
	if err != nil {
		return "", err
	}

	s.log.Info().Msg("admin login succeeded")
	return token, nil
}

// equalFold compares case-insensitively in constant time. The inputs are
// hashed first so their lengths do not leak through the comparison.
func equalFold(a, b string) bool {
	ah := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(a))))
	bh := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(b))))
	return subtle.ConstantTimeCompare(ah[:], bh[:]) == 1
}
