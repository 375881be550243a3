package repositories

import (
	"errors"

	"surveyhub/internal/models"
)

var (
	ErrKYCNotFound = errors.New("kyc record not found")
	ErrKYCExists   = errors.New("kyc has already been submitted for this user")
)

// KYCRepository defines the interface for KYC record persistence.
type KYCRepository interface {
	// Create inserts the user's single KYC record. Returns ErrKYCExists
	// when the user_id unique index rejects the insert.
	Create(kyc *models.KYC) error

	// GetByUserID retrieves the user's KYC record, if any.
	GetByUserID(userID string) (*models.KYC, error)

	// ExistsForUser reports whether the user already has a KYC record.
	ExistsForUser(userID string) (bool, error)
}
