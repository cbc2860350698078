package repository

import (
	"context"
	"fmt"

	"predictor/database"
	"predictor/domain/entities"
)

// LeaderboardRepository implements the LeaderboardRepository interface
type LeaderboardRepository struct {
	q Queryable
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *database.DB) *LeaderboardRepository {
	return &LeaderboardRepository{q: db.Pool}
}

// AddScore atomically adds points to a user's score, creating the entry if it
// does not exist. The increment happens inside the upsert, so concurrent
// calls for the same user never lose updates.
func (r *LeaderboardRepository) AddScore(ctx context.Context, telegramID int64, username string, points int64) error {
	query := `
		INSERT INTO leaderboard (telegram_id, username, score)
		VALUES ($1, $2, $3)
		ON CONFLICT (telegram_id) DO UPDATE SET
			score = leaderboard.score + EXCLUDED.score,
			username = EXCLUDED.username,
			updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, telegramID, username, points); err != nil {
		return fmt.Errorf("failed to add %d points for user %d: %w", points, telegramID, err)
	}

	return nil
}

// Top returns the highest-scoring entries, best first
func (r *LeaderboardRepository) Top(ctx context.Context, n int) ([]*entities.LeaderboardEntry, error) {
	query := `
		SELECT telegram_id, username, score, updated_at
		FROM leaderboard
		ORDER BY score DESC, telegram_id
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top %d leaderboard entries: %w", n, err)
	}
	defer rows.Close()

	var entries []*entities.LeaderboardEntry
	for rows.Next() {
		var entry entities.LeaderboardEntry
		err := rows.Scan(
			&entry.TelegramID,
			&entry.Username,
			&entry.Score,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}

	return entries, nil
}
