package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateToken(userID, username string) (string, error)
}

type Service struct {
	users UserRepository
	jwt   tokenIssuer
}

func NewService(users UserRepository, jwt tokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login checks admin credentials and issues a dashboard JWT. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, Username: u.Username}, nil
}
