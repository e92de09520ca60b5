package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var now = time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := storage.New(storage.WithClock(func() time.Time { return now }))

	require.NoError(t, Load(ctx, store, &auth.HashService{Cost: bcrypt.MinCost}, now))

	sarah, err := store.GetUserByEmail(ctx, "sarah@example.com")
	require.NoError(t, err)
	assert.Equal(t, "125000.00", sarah.WalletBalance)
	assert.Equal(t, "5.00", sarah.Rating)
	assert.True(t, sarah.IsVerified)
	assert.NotEqual(t, samplePassword, sarah.PasswordHash)
	assert.True(t, (&auth.HashService{}).ComparePassword(sarah.PasswordHash, samplePassword))

	michael, err := store.GetUserByUsername(ctx, "michael_a")
	require.NoError(t, err)
	assert.Equal(t, "85000.00", michael.WalletBalance)
	assert.Equal(t, "4.00", michael.Rating)

	jobs, err := store.ListJobs(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		apps, err := store.GetJobApplications(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, len(apps), j.Applicants)
	}

	items, err := store.ListMarketplaceItems(ctx, domain.ListFilter{Category: "Electronics"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	events, err := store.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "African Music Festival", events[0].Title)
	for _, e := range events {
		assert.True(t, e.Date.After(now))
		assert.Zero(t, e.SoldTickets)
	}

	ended, err := store.FindEventsEndedBefore(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, ended)
}

func TestLoadHashFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := auth.NewMockHashServiceInterface(ctrl)
	hasher.EXPECT().HashPassword(samplePassword).Return("", errors.New("boom"))

	store := storage.New()
	err := Load(context.Background(), store, hasher, now)

	assert.ErrorContains(t, err, "hash sample password")
	_, err = store.GetUserByEmail(context.Background(), "sarah@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
