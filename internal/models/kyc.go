package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KYC is the one-time identity verification record for a surveyor.
// The unique index on UserID is what enforces at-most-one-per-user;
// any pre-check in the service layer is advisory only.
type KYC struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	AadharName   string `gorm:"not null" json:"aadharName"`
	AadharNumber string `gorm:"type:varchar(12);not null" json:"-"`
	PhoneNumber  string `gorm:"type:varchar(15);not null" json:"phoneNumber"`
	Address      string `gorm:"type:varchar(500);not null" json:"-"`
	CreatedAt    time.Time
}

func (k *KYC) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

// PublicKYC omits the raw national-id number and address.
type PublicKYC struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	AadharName  string    `json:"aadharName"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (k *KYC) Public() PublicKYC {
	return PublicKYC{
		ID:          k.ID,
		UserID:      k.UserID,
		AadharName:  k.AadharName,
		PhoneNumber: k.PhoneNumber,
		CreatedAt:   k.CreatedAt,
	}
}

// SubmitKYCInput is the KYC submission request payload.
type SubmitKYCInput struct {
	UserID       string `json:"userId"`
	AadharName   string `json:"aadharName"`
	AadharNumber string `json:"aadharNumber"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
}
