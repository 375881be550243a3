// Package kyc implements the one-time identity verification flow for
// surveyor accounts.
package kyc

import (
	"errors"
	"log"

	"surveyhub/internal/models"
	"surveyhub/internal/repositories"
)

var (
	// ErrNotSurveyor is returned when a non-surveyor account attempts to
	// submit identity verification.
	ErrNotSurveyor = errors.New("KYC submission is only available for SURVEYOR users")

	// ErrAlreadySubmitted is returned on any second submission for the
	// same user. Submission is strictly one-shot; clients that retried
	// after a transient failure treat this as success-equivalent.
	ErrAlreadySubmitted = errors.New("KYC has already been submitted. You cannot submit it again.")
)

// Status describes a user's verification state. HasKYC is nil for roles
// that never submit KYC.
type Status struct {
	Role   models.Role `json:"role"`
	HasKYC *bool       `json:"hasKYC"`
}

type Service interface {
	// Submit creates the user's single KYC record.
	Submit(input *models.SubmitKYCInput) (*models.KYC, error)

	// CheckStatus reports the user's role and verification flag.
	CheckStatus(userID string) (*Status, error)

	// Get retrieves the KYC record for a user, reporting existence
	// without treating an unknown user as an error.
	Get(userID string) (*models.KYC, bool, error)
}

type service struct {
	userRepo repositories.UserRepository
	kycRepo  repositories.KYCRepository
}

func NewService(userRepo repositories.UserRepository, kycRepo repositories.KYCRepository) Service {
	return &service{
		userRepo: userRepo,
		kycRepo:  kycRepo,
	}
}

func (s *service) Submit(input *models.SubmitKYCInput) (*models.KYC, error) {
	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}

	if !user.Role.RequiresKYC() {
		log.Printf("KYC submission attempted by non-surveyor user: %s", user.Role)
		return nil, ErrNotSurveyor
	}

	// Advisory pre-check; the unique index on user_id is the final
	// arbiter when two submissions race.
	exists, err := s.kycRepo.ExistsForUser(user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Printf("KYC already exists for user: %s", user.ID)
		return nil, ErrAlreadySubmitted
	}

	kyc := &models.KYC{
		UserID:       user.ID,
		AadharName:   input.AadharName,
		AadharNumber: input.AadharNumber,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
	}

	if err := s.kycRepo.Create(kyc); err != nil {
		if errors.Is(err, repositories.ErrKYCExists) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	log.Printf("KYC created successfully for user: %s", user.ID)
	return kyc, nil
}

func (s *service) CheckStatus(userID string) (*Status, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	status := &Status{Role: user.Role}
	if user.Role.RequiresKYC() {
		exists, err := s.kycRepo.ExistsForUser(user.ID)
		if err != nil {
			return nil, err
		}
		status.HasKYC = &exists
	}
	return status, nil
}

func (s *service) Get(userID string) (*models.KYC, bool, error) {
	kyc, err := s.kycRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrKYCNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return kyc, true, nil
}
