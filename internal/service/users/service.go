package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/models"
	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/repository"
)

var (
	ErrAlreadyExists = errors.New("username already exists")
)

type userRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByName(ctx context.Context, name string) (*models.User, error)
}

type Service struct {
	repo userRepository
}

func NewService(r userRepository) *Service {
	return &Service{repo: r}
}

// Verify reports whether name has an entry whose stored password equals
// password exactly. Passwords are held and compared in plaintext.
func (s *Service) Verify(ctx context.Context, name, password string) (bool, error) {
	user, err := s.repo.GetByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error fetching user: %w", err)
	}
	return user.Password == password, nil
}

// Register inserts a new credential entry. An existing entry is never
// overwritten: the call fails with ErrAlreadyExists and the stored password
// stays as it was.
func (s *Service) Register(ctx context.Context, name, password string) error {
	_, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return ErrAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("error fetching user: %w", err)
	}
	return s.repo.Create(ctx, &models.User{Name: name, Password: password})
}
