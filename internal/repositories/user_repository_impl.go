package repositories

import (
	"context"
	"errors"
	"log"
	"strings"

	"surveyhub/internal/models"
	"surveyhub/internal/repositories/cache"

	"gorm.io/gorm"
)

// userCache is the slice of cache.CacheService the repository relies on.
type userCache interface {
	GenerateKey(entityType, keyType string, value interface{}) string
	GetUser(ctx context.Context, key string) (*models.User, error)
	CacheUser(ctx context.Context, user *models.User) error
	InvalidateUser(ctx context.Context, userID, email string) error
}

type userRepository struct {
	db    *gorm.DB
	cache userCache
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB, cacheService *cache.CacheService) UserRepository {
	r := &userRepository{db: db}
	if cacheService != nil {
		r.cache = cacheService
	}
	return r
}

func (r *userRepository) Create(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	result := r.db.Create(user)
	if result.Error != nil {
		// The unique index is the final arbiter for concurrent signups
		// with the same email; the service-level pre-check only exists
		// for a friendlier common path.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		log.Printf("Error creating user: %v", result.Error)
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) GetByID(id string) (*models.User, error) {
	if r.cache != nil {
		key := r.cache.GenerateKey("user", "id", id)
		if user, err := r.cache.GetUser(context.Background(), key); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	r.cacheUser(&user)
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	// The cached projection strips the password hash, which is fine
	// here: callers of GetByEmail only need the public fields.
	if r.cache != nil {
		key := r.cache.GenerateKey("user", "email", normalized)
		if user, err := r.cache.GetUser(context.Background(), key); err == nil {
			return user, nil
		}
	}

	var user models.User
	result := r.db.Where("email = ?", normalized).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	r.cacheUser(&user)
	return &user, nil
}

func (r *userRepository) GetByEmailWithKYC(email string) (*models.User, error) {
	// Always hits the store: the cached projection strips the password
	// hash and the KYC association, both of which login needs.
	var user models.User
	result := r.db.Preload("KYC").
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) GetTokenVersion(id string) (int, error) {
	var version int
	result := r.db.Model(&models.User{}).
		Select("token_version").
		Where("id = ?", id).
		Scan(&version)
	if result.Error != nil {
		return 0, ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}
	return version, nil
}

func (r *userRepository) IncrementTokenVersion(id string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("token_version", gorm.Expr("token_version + 1"))
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	r.invalidateUser(id)
	return nil
}

func (r *userRepository) List(offset, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	result := r.db.Preload("KYC").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&users)
	if result.Error != nil {
		return nil, 0, ErrDatabaseOperation
	}

	return users, total, nil
}

func (r *userRepository) cacheUser(user *models.User) {
	if r.cache == nil {
		return
	}
	if err := r.cache.CacheUser(context.Background(), user); err != nil {
		log.Printf("Failed to cache user %s: %v", user.ID, err)
	}
}

func (r *userRepository) invalidateUser(id string) {
	if r.cache == nil {
		return
	}
	var email string
	if err := r.db.Model(&models.User{}).Select("email").Where("id = ?", id).Scan(&email).Error; err != nil {
		log.Printf("Failed to look up email for cache invalidation of user %s: %v", id, err)
	}
	if err := r.cache.InvalidateUser(context.Background(), id, email); err != nil {
		log.Printf("Failed to invalidate user cache %s: %v", id, err)
	}
}
