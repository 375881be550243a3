package repositories

import (
	"errors"
	"log"

	"surveyhub/internal/models"

	"gorm.io/gorm"
)

type kycRepository struct {
	db *gorm.DB
}

// NewKYCRepository creates a new instance of KYCRepository.
func NewKYCRepository(db *gorm.DB) KYCRepository {
	return &kycRepository{db: db}
}

func (r *kycRepository) Create(kyc *models.KYC) error {
	result := r.db.Create(kyc)
	if result.Error != nil {
		// Two concurrent submissions can both pass the service pre-check;
		// the unique index on user_id decides the loser here.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrKYCExists
		}
		log.Printf("Error creating KYC record: %v", result.Error)
		return ErrDatabaseOperation
	}
	return nil
}

func (r *kycRepository) GetByUserID(userID string) (*models.KYC, error) {
	var kyc models.KYC
	result := r.db.Where("user_id = ?", userID).First(&kyc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrKYCNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &kyc, nil
}

func (r *kycRepository) ExistsForUser(userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.KYC{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, ErrDatabaseOperation
	}
	return count > 0, nil
}
