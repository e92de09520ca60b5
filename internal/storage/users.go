package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/money"
)

func copyUser(u domain.User) *domain.User {
	u.ProfileImage = cloneString(u.ProfileImage)
	u.Location = cloneString(u.Location)
	u.Skills = cloneStrings(u.Skills)
	return &u
}

func (s *Store) GetUser(_ context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(u), nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	return s.findUser(func(u domain.User) bool { return u.Email == email })
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	return s.findUser(func(u domain.User) bool { return u.Username == username })
}

func (s *Store) findUser(match func(domain.User) bool) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser stores a new user. Rating, completed jobs, wallet balance and
// verification always start from their defaults; profile fields supplied at
// registration are kept. A user whose email or username is already stored
// is refused with ErrDuplicate.
func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, ErrDuplicate
		}
	}

	u := *copyUser(*user)
	u.ID = s.seq.next()
	u.IsVerified = false
	u.Rating = money.Zero
	u.CompletedJobs = 0
	u.WalletBalance = money.Zero
	s.users[u.ID] = u

	return copyUser(u), nil
}

func (s *Store) UpdateUser(_ context.Context, id int, upd domain.UserUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	set(&u.FirstName, upd.FirstName)
	set(&u.LastName, upd.LastName)
	set(&u.Phone, upd.Phone)
	if upd.ProfileImage != nil {
		u.ProfileImage = cloneString(upd.ProfileImage)
	}
	if upd.Location != nil {
		u.Location = cloneString(upd.Location)
	}
	if upd.Skills != nil {
		u.Skills = cloneStrings(upd.Skills)
	}
	s.users[id] = u

	return copyUser(u), nil
}

// SetUserVerified changes the verification flag. Users cannot change it
// through UpdateUser.
func (s *Store) SetUserVerified(_ context.Context, id int, verified bool) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.IsVerified = verified
	s.users[id] = u

	return copyUser(u), nil
}

// AdjustUserBalance adds delta (which may be negative) to the user's wallet.
// A change that would leave the balance below zero is refused with
// ErrInsufficientBalance and nothing is written.
func (s *Store) AdjustUserBalance(_ context.Context, id int, delta decimal.Decimal) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	current, err := money.Parse(u.WalletBalance)
	if err != nil {
		return nil, err
	}
	next := current.Add(delta)
	if next.IsNegative() {
		return nil, ErrInsufficientBalance
	}
	u.WalletBalance = money.Format(next)
	s.users[id] = u

	return copyUser(u), nil
}
