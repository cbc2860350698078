package entities

// BroadcastFailure records one recipient that could not be reached
type BroadcastFailure struct {
	TelegramID int64
	Reason     string
}

// BroadcastSummary aggregates the per-recipient results of a broadcast.
// Attempted = Delivered + len(Failures).
type BroadcastSummary struct {
	Attempted int
	Delivered int
	Failures  []BroadcastFailure
}

// BotStats holds aggregate counters shown to the admin
type BotStats struct {
	TotalUsers       int64
	TotalPredictions int64
}
