package repository

import (
	"context"
	"fmt"

	"predictor/database"
	"predictor/domain/entities"

	"github.com/jackc/pgx/v5"
)

// UserRepository implements the UserRepository interface
type UserRepository struct {
	q Queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// Upsert creates the user if missing or refreshes the name fields if present.
// Balance, prediction count and join timestamp survive repeat upserts.
func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (telegram_id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (telegram_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = NOW()
		RETURNING balance, predictions, joined_at, updated_at
	`

	err := r.q.QueryRow(ctx, query, user.TelegramID, user.Username, user.FirstName, user.LastName).Scan(
		&user.Balance,
		&user.Predictions,
		&user.JoinedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", user.TelegramID, err)
	}

	return nil
}

// GetByTelegramID retrieves a user by their Telegram ID
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*entities.User, error) {
	query := `
		SELECT telegram_id, username, first_name, last_name, balance, predictions, joined_at, updated_at
		FROM users
		WHERE telegram_id = $1
	`

	var user entities.User
	err := r.q.QueryRow(ctx, query, telegramID).Scan(
		&user.TelegramID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Balance,
		&user.Predictions,
		&user.JoinedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by telegram ID %d: %w", telegramID, err)
	}

	return &user, nil
}

// IncrementPredictions atomically adds one to the user's prediction count
func (r *UserRepository) IncrementPredictions(ctx context.Context, telegramID int64) error {
	query := `
		UPDATE users
		SET predictions = predictions + 1, updated_at = NOW()
		WHERE telegram_id = $1
	`

	result, err := r.q.Exec(ctx, query, telegramID)
	if err != nil {
		return fmt.Errorf("failed to increment predictions for user %d: %w", telegramID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with telegram ID %d not found", telegramID)
	}

	return nil
}

// EachID streams every known user ID to fn
func (r *UserRepository) EachID(ctx context.Context, fn func(telegramID int64) error) error {
	rows, err := r.q.Query(ctx, `SELECT telegram_id FROM users`)
	if err != nil {
		return fmt.Errorf("failed to query user IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var telegramID int64
		if err := rows.Scan(&telegramID); err != nil {
			return fmt.Errorf("failed to scan user ID: %w", err)
		}
		if err := fn(telegramID); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate user IDs: %w", err)
	}

	return nil
}

// Count returns the total number of registered users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
