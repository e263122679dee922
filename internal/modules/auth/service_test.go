package auth

import (
	"context"
	"testing"

	"parkease/internal/domain"
	"parkease/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockJWT.On("GenerateToken", int64(999), "john.doe").Return("token-abc", nil)

	service := NewService(mockUsers, mockJWT)

	resp, err := service.Register(context.Background(), RegisterRequest{
		Username: "john.doe",
		Password: "password123",
		Name:     "John Doe",
		Email:    "John.Doe@Example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", resp.Token)
	assert.Equal(t, "john.doe@example.com", resp.User.Email)
	// The stored hash must verify against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.User.PasswordHash), []byte("password123")))
}

func TestService_Register_Duplicate(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	service := NewService(mockUsers, mockJWT)

	_, err := service.Register(context.Background(), RegisterRequest{
		Username: "john.doe",
		Password: "password123",
		Name:     "John Doe",
		Email:    "john.doe@example.com",
	})

	assert.ErrorIs(t, err, ErrUserExists)
	mockJWT.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mockUsers.On("GetByUsername", mock.Anything, "john.doe").Return(&domain.User{
		ID:           1,
		Username:     "john.doe",
		PasswordHash: string(hash),
	}, nil)
	mockJWT.On("GenerateToken", int64(1), "john.doe").Return("token-abc", nil)

	service := NewService(mockUsers, mockJWT)

	resp, err := service.Login(context.Background(), LoginRequest{
		Username: "john.doe",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", resp.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mockUsers.On("GetByUsername", mock.Anything, "john.doe").Return(&domain.User{
		ID:           1,
		Username:     "john.doe",
		PasswordHash: string(hash),
	}, nil)

	service := NewService(mockUsers, mockJWT)

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "john.doe",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// An unknown username yields the same error as a wrong password.
func TestService_Login_UnknownUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("GetByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	service := NewService(mockUsers, mockJWT)

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_GetUser_NotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

	service := NewService(mockUsers, mockJWT)

	_, err := service.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
