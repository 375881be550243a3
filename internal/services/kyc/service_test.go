package kyc

import (
	"testing"

	"surveyhub/internal/models"
	"surveyhub/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type MockKYCRepo struct {
	mock.Mock
}

func (m *MockKYCRepo) Create(kyc *models.KYC) error {
	args := m.Called(kyc)
	return args.Error(0)
}

func (m *MockKYCRepo) GetByUserID(userID string) (*models.KYC, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KYC), args.Error(1)
}

func (m *MockKYCRepo) ExistsForUser(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func validInput() *models.SubmitKYCInput {
	return &models.SubmitKYCInput{
		UserID:       "u1",
		AadharName:   "Jane Doe",
		AadharNumber: "123456789012",
		PhoneNumber:  "9876543210",
		Address:      "1 Main St",
	}
}

func TestSubmit(t *testing.T) {
	t.Run("successful submission", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "u1").Return(&models.User{ID: "u1", Role: models.RoleSurveyor}, nil)
		kycs.On("ExistsForUser", "u1").Return(false, nil)
		kycs.On("Create", mock.AnythingOfType("*models.KYC")).Return(nil)

		s := NewService(users, kycs)
		record, err := s.Submit(validInput())

		assert.NoError(t, err)
		assert.Equal(t, "u1", record.UserID)
		assert.Equal(t, "Jane Doe", record.AadharName)
		kycs.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "u1").Return(nil, repositories.ErrUserNotFound)

		s := NewService(users, kycs)
		_, err := s.Submit(validInput())

		assert.ErrorIs(t, err, repositories.ErrUserNotFound)
		kycs.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("forbidden for admin", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "u1").Return(&models.User{ID: "u1", Role: models.RoleAdmin}, nil)

		s := NewService(users, kycs)
		_, err := s.Submit(validInput())

		assert.ErrorIs(t, err, ErrNotSurveyor)
		kycs.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("forbidden for manager", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "u1").Return(&models.User{ID: "u1", Role: models.RoleManager}, nil)

		s := NewService(users, kycs)
		_, err := s.Submit(validInput())

		assert.ErrorIs(t, err, ErrNotSurveyor)
		kycs.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("second submission rejected", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "u1").Return(&models.User{ID: "u1", Role: models.RoleSurveyor}, nil)
		kycs.On("ExistsForUser", "u1").Return(true, nil)

		s := NewService(users, kycs)
		_, err := s.Submit(validInput())

		assert.ErrorIs(t, err, ErrAlreadySubmitted)
		kycs.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("lost race at insert", func(t *testing.T) {
		// Both submissions passed the pre-check; the unique index on
		// user_id rejected the second insert.
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "u1").Return(&models.User{ID: "u1", Role: models.RoleSurveyor}, nil)
		kycs.On("ExistsForUser", "u1").Return(false, nil)
		kycs.On("Create", mock.AnythingOfType("*models.KYC")).Return(repositories.ErrKYCExists)

		s := NewService(users, kycs)
		_, err := s.Submit(validInput())

		assert.ErrorIs(t, err, ErrAlreadySubmitted)
	})
}

func TestCheckStatus(t *testing.T) {
	t.Run("surveyor without record", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "u1").Return(&models.User{ID: "u1", Role: models.RoleSurveyor}, nil)
		kycs.On("ExistsForUser", "u1").Return(false, nil)

		s := NewService(users, kycs)
		status, err := s.CheckStatus("u1")

		assert.NoError(t, err)
		assert.Equal(t, models.RoleSurveyor, status.Role)
		require.NotNil(t, status.HasKYC)
		assert.False(t, *status.HasKYC)
	})

	t.Run("surveyor with record", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "u1").Return(&models.User{ID: "u1", Role: models.RoleSurveyor}, nil)
		kycs.On("ExistsForUser", "u1").Return(true, nil)

		s := NewService(users, kycs)
		status, err := s.CheckStatus("u1")

		assert.NoError(t, err)
		require.NotNil(t, status.HasKYC)
		assert.True(t, *status.HasKYC)
	})

	t.Run("not applicable for manager", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "u2").Return(&models.User{ID: "u2", Role: models.RoleManager}, nil)

		s := NewService(users, kycs)
		status, err := s.CheckStatus("u2")

		assert.NoError(t, err)
		assert.Equal(t, models.RoleManager, status.Role)
		assert.Nil(t, status.HasKYC)
		kycs.AssertNotCalled(t, "ExistsForUser", mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		users.On("GetByID", "ghost").Return(nil, repositories.ErrUserNotFound)

		s := NewService(users, kycs)
		_, err := s.CheckStatus("ghost")

		assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	})
}

func TestGet(t *testing.T) {
	t.Run("record exists", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		kycs.On("GetByUserID", "u1").Return(&models.KYC{ID: "k1", UserID: "u1"}, nil)

		s := NewService(users, kycs)
		record, exists, err := s.Get("u1")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "k1", record.ID)
	})

	t.Run("no record", func(t *testing.T) {
		users := new(MockUserRepo)
		kycs := new(MockKYCRepo)
		kycs.On("GetByUserID", "u1").Return(nil, repositories.ErrKYCNotFound)

		s := NewService(users, kycs)
		record, exists, err := s.Get("u1")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.Nil(t, record)
	})
}
