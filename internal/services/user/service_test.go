package user

import (
	"testing"

	"surveyhub/internal/models"
	"surveyhub/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmailWithKYC(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetTokenVersion(id string) (int, error) {
	args := m.Called(id)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepo) IncrementTokenVersion(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepo) List(offset, limit int) ([]models.User, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func TestCreate(t *testing.T) {
	t.Run("successful signup", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "jane@x.com").Return(nil, repositories.ErrUserNotFound)
		repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

		s := NewService(repo)
		created, err := s.Create(&models.CreateUserInput{
			Name:     "Jane Doe",
			Email:    "Jane@X.com",
			Password: "secret1",
			Role:     "surveyor",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.RoleSurveyor, created.Role)
		assert.Equal(t, "jane@x.com", created.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret1")))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email on pre-check", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "jane@x.com").Return(&models.User{Email: "jane@x.com"}, nil)

		s := NewService(repo)
		_, err := s.Create(&models.CreateUserInput{
			Name:     "Jane Doe",
			Email:    "jane@x.com",
			Password: "secret1",
			Role:     "surveyor",
		})

		assert.ErrorIs(t, err, repositories.ErrEmailTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("duplicate email lost race at insert", func(t *testing.T) {
		// The pre-check passed but the unique index rejected the insert:
		// the store's verdict is the one that surfaces.
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "jane@x.com").Return(nil, repositories.ErrUserNotFound)
		repo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrEmailTaken)

		s := NewService(repo)
		_, err := s.Create(&models.CreateUserInput{
			Name:     "Jane Doe",
			Email:    "jane@x.com",
			Password: "secret1",
			Role:     "surveyor",
		})

		assert.ErrorIs(t, err, repositories.ErrEmailTaken)
		repo.AssertExpectations(t)
	})

	t.Run("invalid role", func(t *testing.T) {
		repo := new(MockUserRepo)

		s := NewService(repo)
		_, err := s.Create(&models.CreateUserInput{
			Name:     "Jane Doe",
			Email:    "jane@x.com",
			Password: "secret1",
			Role:     "supervisor",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}
