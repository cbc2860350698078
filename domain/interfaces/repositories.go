package interfaces

import (
	"context"

	"predictor/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Upsert creates the user if missing or refreshes the name fields if
	// present. Balance, prediction count and join timestamp are never
	// overwritten by an upsert.
	Upsert(ctx context.Context, user *entities.User) error

	// GetByTelegramID retrieves a user by their Telegram ID.
	// Returns (nil, nil) if the user does not exist.
	GetByTelegramID(ctx context.Context, telegramID int64) (*entities.User, error)

	// IncrementPredictions atomically adds one to the user's prediction count
	IncrementPredictions(ctx context.Context, telegramID int64) error

	// EachID streams every known user ID to fn in no particular order.
	// Iteration stops at the first fn error.
	EachID(ctx context.Context, fn func(telegramID int64) error) error

	// Count returns the total number of registered users
	Count(ctx context.Context) (int64, error)
}

// PredictionRepository defines the interface for prediction record access
type PredictionRepository interface {
	// Create appends a prediction record
	Create(ctx context.Context, record *entities.PredictionRecord) error

	// CountByUser returns the number of predictions made by a user
	CountByUser(ctx context.Context, telegramID int64) (int64, error)

	// Count returns the total number of predictions across all users
	Count(ctx context.Context) (int64, error)
}

// LeaderboardRepository defines the interface for leaderboard access
type LeaderboardRepository interface {
	// AddScore atomically adds points to a user's score, creating the entry
	// if it does not exist. The username is overwritten on every call.
	AddScore(ctx context.Context, telegramID int64, username string, points int64) error

	// Top returns the highest-scoring entries, best first
	Top(ctx context.Context, n int) ([]*entities.LeaderboardEntry, error)
}
