package entities

import "time"

// PredictionKind identifies which prediction game produced a record
type PredictionKind string

const (
	PredictionKindColor  PredictionKind = "color"
	PredictionKindNumber PredictionKind = "number"
)

// PredictionRecord is one completed prediction. Append-only; immutable once
// written.
type PredictionRecord struct {
	ID         int64
	TelegramID int64
	Kind       PredictionKind
	Result     string
	CreatedAt  time.Time
}

// Outcome is a drawn prediction result ready for delivery
type Outcome struct {
	Kind     PredictionKind
	Result   string
	ImageURL string
}
