package walletservice

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/GlebRadaev/marketplace/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrUnknownMethod       = errors.New("unknown payment method")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserNotFound        = errors.New("user not found")
)

// Providers maps accepted method codes to the names shown to users.
var Providers = map[string]string{
	"orange":   "Orange Money",
	"mtn":      "MTN Mobile Money",
	"africell": "Africell Money",
	"bank":     "Bank Transfer",
}

type Repo interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	AdjustUserBalance(ctx context.Context, id int, delta decimal.Decimal) (*domain.User, error)
	CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Balance(ctx context.Context, userID int) (string, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		zap.L().Error("failed to get balance", zap.Int("user_id", userID), zap.Error(err))
		return "", err
	}
	return user.WalletBalance, nil
}

// Deposit credits amount from the given provider and returns the new balance.
func (s *Service) Deposit(ctx context.Context, userID int, amount, method string) (string, error) {
	value, provider, err := parseRequest(amount, method)
	if err != nil {
		return "", err
	}
	user, err := s.adjust(ctx, userID, value)
	if err != nil {
		return "", err
	}
	s.notify(ctx, userID, "Deposit Successful",
		fmt.Sprintf("Le %s has been added to your wallet from %s", money.Display(value), provider))
	zap.L().Info("deposit processed", zap.Int("user_id", userID), zap.String("amount", money.Format(value)), zap.String("method", method))
	return user.WalletBalance, nil
}

// Withdraw debits amount to the given provider. The balance may not go
// below zero.
func (s *Service) Withdraw(ctx context.Context, userID int, amount, method string) (string, error) {
	value, provider, err := parseRequest(amount, method)
	if err != nil {
		return "", err
	}
	user, err := s.adjust(ctx, userID, value.Neg())
	if err != nil {
		return "", err
	}
	s.notify(ctx, userID, "Withdrawal Processed",
		fmt.Sprintf("Le %s has been withdrawn to your %s account", money.Display(value), provider))
	zap.L().Info("withdrawal processed", zap.Int("user_id", userID), zap.String("amount", money.Format(value)), zap.String("method", method))
	return user.WalletBalance, nil
}

func parseRequest(amount, method string) (decimal.Decimal, string, error) {
	value, err := money.Parse(amount)
	if err != nil || !value.IsPositive() {
		return decimal.Zero, "", ErrInvalidAmount
	}
	provider, ok := Providers[method]
	if !ok {
		return decimal.Zero, "", ErrUnknownMethod
	}
	return value, provider, nil
}

func (s *Service) adjust(ctx context.Context, userID int, delta decimal.Decimal) (*domain.User, error) {
	user, err := s.repo.AdjustUserBalance(ctx, userID, delta)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, ErrUserNotFound
	case errors.Is(err, storage.ErrInsufficientBalance):
		return nil, ErrInsufficientBalance
	case err != nil:
		zap.L().Error("failed to update user balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) notify(ctx context.Context, userID int, title, message string) {
	_, err := s.repo.CreateNotification(ctx, &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    domain.NotificationTypePayment,
	})
	if err != nil {
		zap.L().Error("can't create payment notification", zap.Int("user_id", userID), zap.Error(err))
	}
}
