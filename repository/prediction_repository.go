package repository

import (
	"context"
	"fmt"

	"predictor/database"
	"predictor/domain/entities"
)

// PredictionRepository implements the PredictionRepository interface
type PredictionRepository struct {
	q Queryable
}

// NewPredictionRepository creates a new prediction repository
func NewPredictionRepository(db *database.DB) *PredictionRepository {
	return &PredictionRepository{q: db.Pool}
}

// Create appends a prediction record
func (r *PredictionRepository) Create(ctx context.Context, record *entities.PredictionRecord) error {
	query := `
		INSERT INTO predictions (telegram_id, kind, result)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query, record.TelegramID, record.Kind, record.Result).Scan(
		&record.ID,
		&record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create prediction record for user %d: %w", record.TelegramID, err)
	}

	return nil
}

// CountByUser returns the number of predictions made by a user
func (r *PredictionRepository) CountByUser(ctx context.Context, telegramID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM predictions WHERE telegram_id = $1`, telegramID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count predictions for user %d: %w", telegramID, err)
	}
	return count, nil
}

// Count returns the total number of predictions across all users
func (r *PredictionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM predictions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count predictions: %w", err)
	}
	return count, nil
}
