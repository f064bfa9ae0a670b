package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(userID, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

func TestService_Login_Success(t *testing.T) {
	users := new(mockUserRepo)
	issuer := new(mockTokenIssuer)
	svc := NewService(users, issuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	users.On("GetByUsername", mock.Anything, "admin").
		Return(&domain.User{ID: "u-1", Username: "admin", PasswordHash: string(hash)}, nil)
	issuer.On("GenerateToken", "u-1", "admin").Return("token-abc", nil)

	resp, err := svc.Login(context.Background(), "admin", "admin123")

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", resp.Token)
	assert.Equal(t, "admin", resp.Username)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	issuer := new(mockTokenIssuer)
	svc := NewService(users, issuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	users.On("GetByUsername", mock.Anything, "admin").
		Return(&domain.User{ID: "u-1", Username: "admin", PasswordHash: string(hash)}, nil)

	_, err := svc.Login(context.Background(), "admin", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	issuer.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	issuer := new(mockTokenIssuer)
	svc := NewService(users, issuer)

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "ghost", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
