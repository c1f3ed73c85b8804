package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"gymdesk/internal/shared/config"
)

// CredentialService checks the static front-desk operator credential. There
// is a single operator account configured in auth.username and
// auth.password_hash; no user records are stored.
type CredentialService struct {
	username     string
	passwordHash string
}

func NewCredentialService(cfg *config.AuthConfig) *CredentialService {
	return &CredentialService{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
	}
}

// Verify checks the supplied username and password against the configured
// credential. It returns an error when the credential is unset so an empty
// hash can never be logged into.
func (s *CredentialService) Verify(username, password string) error {
	if s.passwordHash == "" {
		return fmt.Errorf("operator credential is not configured")
	}
	if username != s.username {
		return fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}

// HashPassword produces a bcrypt hash for seeding auth.password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
