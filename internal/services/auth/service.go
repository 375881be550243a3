// Package auth implements credential verification and token lifecycle.
package auth

import (
	"errors"
	"log"

	"surveyhub/internal/models"
	"surveyhub/internal/repositories"
	"surveyhub/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown emails, accounts without a
// stored hash, and password mismatches alike, so callers cannot enumerate
// which one happened.
var ErrInvalidCredentials = errors.New("invalid email or password")

type Service interface {
	// Login verifies credentials and returns the user, the verification
	// flag (true/false for surveyors, nil otherwise), and a token pair.
	Login(email, password string) (*models.User, *bool, string, string, error)

	// RefreshTokens rotates the token pair from a valid refresh token.
	RefreshTokens(refreshToken string) (string, string, error)

	// Logout invalidates all outstanding tokens for the user.
	Logout(userID string) error

	// GetUserTokenVersion reads the current token version.
	GetUserTokenVersion(userID string) (int, error)

	// GetUserByID resolves a user for middleware checks.
	GetUserByID(userID string) (*models.User, error)
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) Login(email, password string) (*models.User, *bool, string, string, error) {
	user, err := s.userRepo.GetByEmailWithKYC(email)
	if err != nil {
		log.Printf("Login attempt with non-existent email: %s", email)
		return nil, nil, "", "", ErrInvalidCredentials
	}

	// Accounts provisioned externally may have no stored hash; they fail
	// the same way as a wrong password.
	if user.Password == "" {
		log.Printf("Login attempt for user without password: %s", email)
		return nil, nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Invalid password attempt for: %s", email)
		return nil, nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return nil, nil, "", "", errors.New("error generating tokens")
	}

	log.Printf("User logged in successfully: %s (%s)", user.Email, user.Role)
	return user, user.HasKYC(), accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", errors.New("user not found")
	}

	version, err := s.userRepo.GetTokenVersion(user.ID)
	if err != nil {
		return "", "", errors.New("user not found")
	}
	if version != claims.TokenVersion {
		return "", "", errors.New("token version mismatch")
	}

	return utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: version,
	})
}

func (s *service) Logout(userID string) error {
	return s.userRepo.IncrementTokenVersion(userID)
}

func (s *service) GetUserTokenVersion(userID string) (int, error) {
	return s.userRepo.GetTokenVersion(userID)
}

func (s *service) GetUserByID(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}
