package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"` // stored lower-cased
	Password     string `gorm:"not null" json:"-"`                 // bcrypt hash, empty for externally provisioned accounts
	Role         Role   `gorm:"type:varchar(16);not null" json:"role"`
	TokenVersion int    `gorm:"default:1" json:"-"`
	KYC          *KYC   `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BeforeCreate assigns a uuid primary key when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// HasKYC reports the verification flag for the user: true/false for
// surveyors, nil for roles that never submit KYC.
func (u *User) HasKYC() *bool {
	if !u.Role.RequiresKYC() {
		return nil
	}
	has := u.KYC != nil
	return &has
}

// PublicUser is the safe-to-return projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// CreateUserInput is the signup request payload.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
