// Package user implements account creation and lookup.
package user

import (
	"errors"
	"log"
	"strings"

	"surveyhub/internal/models"
	"surveyhub/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt.DefaultCost is 10, which is the cost this service commits to for
// stored password hashes.
const hashCost = bcrypt.DefaultCost

type Service interface {
	// Create registers a new account. Input is assumed to be validated;
	// the role string is normalised to the upper-cased enum.
	Create(input *models.CreateUserInput) (*models.User, error)

	// GetByID retrieves a user by id.
	GetByID(id string) (*models.User, error)

	// List returns a page of users, newest first.
	List(offset, limit int) ([]models.User, int64, error)
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(input *models.CreateUserInput) (*models.User, error) {
	role, err := models.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Advisory pre-check for the friendly error; the unique index in the
	// store settles concurrent signups for the same email.
	if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
		log.Printf("Signup attempt with existing email: %s", email)
		return nil, repositories.ErrEmailTaken
	} else if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), hashCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Name:     input.Name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	log.Printf("User created successfully: %s (%s)", user.Email, user.Role)
	return user, nil
}

func (s *service) GetByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *service) List(offset, limit int) ([]models.User, int64, error) {
	return s.repo.List(offset, limit)
}
