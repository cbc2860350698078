package entities

import "time"

// LeaderboardEntry is a user's cumulative score. The username is denormalized
// and overwritten on every score update.
type LeaderboardEntry struct {
	TelegramID int64
	Username   string
	Score      int64
	UpdatedAt  time.Time
}
