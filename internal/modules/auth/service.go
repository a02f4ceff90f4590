package auth

import (
	"context"
	"errors"

	"rentaldesk/internal/domain"
	jwtsvc "rentaldesk/internal/pkg/jwt"
	"rentaldesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// UserRepository resolves users by their login name.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Service struct {
	users UserRepository
	jwt   *jwtsvc.Service
}

func NewService(users UserRepository, jwt *jwtsvc.Service) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Staff, u.Admin)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
