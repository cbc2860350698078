package repository

import (
	"context"
	"testing"

	"predictor/domain/entities"
	"predictor/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Upsert(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates new user with defaults", func(t *testing.T) {
		user := &entities.User{TelegramID: 123456, Username: "testuser", FirstName: "Test"}
		err := repo.Upsert(ctx, user)
		require.NoError(t, err)

		assert.Equal(t, int64(0), user.Balance)
		assert.Equal(t, int64(0), user.Predictions)
		assert.False(t, user.JoinedAt.IsZero())
	})

	t.Run("idempotent re-registration keeps balance and join timestamp", func(t *testing.T) {
		first := &entities.User{TelegramID: 789012, Username: "old_name", FirstName: "Old"}
		require.NoError(t, repo.Upsert(ctx, first))

		// Give the user a prediction so the count is nonzero
		require.NoError(t, repo.IncrementPredictions(ctx, 789012))

		second := &entities.User{TelegramID: 789012, Username: "new_name", FirstName: "New"}
		require.NoError(t, repo.Upsert(ctx, second))

		stored, err := repo.GetByTelegramID(ctx, 789012)
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.Equal(t, "new_name", stored.Username)
		assert.Equal(t, "New", stored.FirstName)
		assert.Equal(t, int64(0), stored.Balance)
		assert.Equal(t, int64(1), stored.Predictions)
		assert.Equal(t, first.JoinedAt, stored.JoinedAt)

		// Exactly one row exists
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count) // this user plus the one from the previous subtest
	})
}

func TestUserRepository_GetByTelegramID_NotFound(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)

	user, err := repo.GetByTelegramID(context.Background(), 999999)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_IncrementPredictions_UnknownUser(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)

	err := repo.IncrementPredictions(context.Background(), 424242)
	assert.Error(t, err)
}

func TestUserRepository_EachID(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, repo.Upsert(ctx, &entities.User{TelegramID: id}))
	}

	var seen []int64
	err := repo.EachID(ctx, func(telegramID int64) error {
		seen = append(seen, telegramID)
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, seen)
}
