package interfaces

import (
	"context"

	"predictor/domain/entities"
)

// MembershipService decides whether a user may use gated features
type MembershipService interface {
	// IsAuthorized reports whether the user is an active member of every
	// required channel. Any provider error counts as not a member.
	IsAuthorized(userID int64) bool
}

// PredictionService draws prediction outcomes and persists completed
// predictions.
type PredictionService interface {
	// Draw produces a uniformly random outcome for the given kind
	Draw(kind entities.PredictionKind) entities.Outcome

	// Record appends one prediction record, bumps the user's prediction
	// count and adds one point to their leaderboard score.
	Record(ctx context.Context, telegramID int64, username string, outcome entities.Outcome) error
}

// BroadcastService sends a message to every known user
type BroadcastService interface {
	// Broadcast attempts one send per known user. Individual failures are
	// collected in the summary and never abort the remaining sends.
	Broadcast(ctx context.Context, text string) (*entities.BroadcastSummary, error)
}

// StatsService aggregates bot-wide counters
type StatsService interface {
	Totals(ctx context.Context) (*entities.BotStats, error)
}
