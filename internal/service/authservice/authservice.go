package authservice

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repo interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates a user unless the email or username is already taken.
// The password is stored as a hash. The lookup only saves a hash for requests
// that are plainly duplicates; the store decides uniqueness on insert.
func (s *Service) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	taken, err := s.taken(ctx, user.Email, user.Username)
	if err != nil {
		zap.L().Error("can't check user uniqueness", zap.Error(err))
		return nil, err
	}
	if taken {
		zap.L().Info("user already exists", zap.String("email", user.Email), zap.String("username", user.Username))
		return nil, ErrUserExists
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user.PasswordHash = hashedPassword

	newUser, err := s.userRepo.CreateUser(ctx, user)
	if errors.Is(err, storage.ErrDuplicate) {
		zap.L().Info("user already exists", zap.String("email", user.Email), zap.String("username", user.Username))
		return nil, ErrUserExists
	}
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.Int("id", newUser.ID), zap.String("username", newUser.Username))
	return newUser, nil
}

func (s *Service) taken(ctx context.Context, email, username string) (bool, error) {
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return true, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}
	if _, err := s.userRepo.GetUserByUsername(ctx, username); err == nil {
		return true, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}
	return false, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		zap.L().Info("login for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("wrong password", zap.Int("id", user.ID))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.Int("id", user.ID))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
