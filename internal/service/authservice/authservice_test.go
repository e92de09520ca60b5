package authservice

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		user          domain.User
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			user:     domain.User{Username: "sarah_k", Email: "sarah@example.com"},
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().GetUserByEmail(ctx, "sarah@example.com").Return(nil, storage.ErrNotFound)
				userRepo.EXPECT().GetUserByUsername(ctx, "sarah_k").Return(nil, storage.ErrNotFound)
				passwordHasher.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				userRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Username:     "sarah_k",
				Email:        "sarah@example.com",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "Email already taken",
			user:     domain.User{Username: "sarah_k", Email: "sarah@example.com"},
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().GetUserByEmail(ctx, "sarah@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: ErrUserExists,
		},
		{
			name:     "Username already taken",
			user:     domain.User{Username: "sarah_k", Email: "other@example.com"},
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().GetUserByEmail(ctx, "other@example.com").Return(nil, storage.ErrNotFound)
				userRepo.EXPECT().GetUserByUsername(ctx, "sarah_k").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: ErrUserExists,
		},
		{
			name:     "Lookup failure",
			user:     domain.User{Username: "sarah_k", Email: "sarah@example.com"},
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().GetUserByEmail(ctx, "sarah@example.com").Return(nil, errors.New("store error"))
			},
			expectedError: errors.New("store error"),
		},
		{
			name:     "Taken between lookup and insert",
			user:     domain.User{Username: "sarah_k", Email: "sarah@example.com"},
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().GetUserByEmail(ctx, "sarah@example.com").Return(nil, storage.ErrNotFound)
				userRepo.EXPECT().GetUserByUsername(ctx, "sarah_k").Return(nil, storage.ErrNotFound)
				passwordHasher.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				userRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil, storage.ErrDuplicate)
			},
			expectedError: ErrUserExists,
		},
		{
			name:     "Error hashing password",
			user:     domain.User{Username: "sarah_k", Email: "sarah@example.com"},
			password: "",
			prepareMock: func() {
				userRepo.EXPECT().GetUserByEmail(ctx, "sarah@example.com").Return(nil, storage.ErrNotFound)
				userRepo.EXPECT().GetUserByUsername(ctx, "sarah_k").Return(nil, storage.ErrNotFound)
				passwordHasher.EXPECT().HashPassword("").Return("", auth.ErrEmptyPassword)
			},
			expectedError: auth.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user := tt.user
			result, err := service.Register(ctx, &user, tt.password)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, result)
		})
	}
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	store := storage.New()
	service := New(store, &auth.HashService{Cost: bcrypt.MinCost}, nil)

	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := &domain.User{Username: "sarah_k", Email: "sarah@example.com"}
			_, err := service.Register(context.Background(), user, "password123")
			if err == nil {
				created.Add(1)
				return
			}
			assert.ErrorIs(t, err, ErrUserExists)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	_, err := store.GetUserByEmail(context.Background(), "sarah@example.com")
	assert.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	ctx := context.Background()
	stored := &domain.User{ID: 3, Email: "sarah@example.com", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Valid credentials",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().GetUserByEmail(ctx, "sarah@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "password123").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:     "Wrong password",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().GetUserByEmail(ctx, "sarah@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrong").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().GetUserByEmail(ctx, "sarah@example.com").Return(nil, storage.ErrNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(ctx, "sarah@example.com", tt.password)
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(7, gomock.Any()).DoAndReturn(func(_ int, exp time.Time) (string, error) {
		assert.WithinDuration(t, time.Now().Add(tokenTTL), exp, time.Minute)
		return "token", nil
	})
	token, err := service.GenerateToken(7)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT(7, gomock.Any()).Return("", errors.New("sign error"))
	_, err = service.GenerateToken(7)
	assert.EqualError(t, err, "sign error")
}
