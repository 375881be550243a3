package repositories

import (
	"errors"

	"surveyhub/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("user with this email already exists")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create inserts a new user. Returns ErrEmailTaken when the email
	// unique index rejects the insert.
	Create(user *models.User) error

	// GetByID retrieves a user by id.
	GetByID(id string) (*models.User, error)

	// GetByEmail retrieves a user by email (case-insensitive).
	GetByEmail(email string) (*models.User, error)

	// GetByEmailWithKYC retrieves a user by email with any KYC record
	// preloaded. Used by login to derive the hasKYC flag.
	GetByEmailWithKYC(email string) (*models.User, error)

	// GetTokenVersion reads the user's current token version.
	GetTokenVersion(id string) (int, error)

	// IncrementTokenVersion invalidates all outstanding tokens.
	IncrementTokenVersion(id string) error

	// List retrieves users with pagination, newest first.
	List(offset, limit int) ([]models.User, int64, error)
}
