package entities

import "time"

// User represents a registered bot user.
// A row is upserted on first observed interaction; balance and joined_at are
// preserved across re-registrations.
type User struct {
	TelegramID  int64
	Username    string
	FirstName   string
	LastName    string
	Balance     int64
	Predictions int64
	JoinedAt    time.Time
	UpdatedAt   time.Time
}

// DisplayName returns the best available human-readable name for the user
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}
