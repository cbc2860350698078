package services

import (
	"context"
	"fmt"
	"math/rand"

	"predictor/domain/entities"
	"predictor/domain/interfaces"
)

// One point per completed prediction, regardless of outcome
const pointsPerPrediction = 1

// numberSmallMax is the largest drawn number still labeled SMALL
const numberSmallMax = 4

// Telegram-hosted result images, one per outcome
const (
	imageColorRed    = "https://t.me/megahubbots/16"
	imageColorGreen  = "https://t.me/megahubbots/15"
	imageNumberSmall = "https://t.me/megahubbots/13"
	imageNumberBig   = "https://t.me/megahubbots/14"
)

type predictionService struct {
	userRepo        interfaces.UserRepository
	predictionRepo  interfaces.PredictionRepository
	leaderboardRepo interfaces.LeaderboardRepository
}

// NewPredictionService creates a new prediction service
func NewPredictionService(userRepo interfaces.UserRepository, predictionRepo interfaces.PredictionRepository, leaderboardRepo interfaces.LeaderboardRepository) interfaces.PredictionService {
	return &predictionService{
		userRepo:        userRepo,
		predictionRepo:  predictionRepo,
		leaderboardRepo: leaderboardRepo,
	}
}

// Draw produces a uniformly random outcome. The draw is independent of any
// user history.
func (s *predictionService) Draw(kind entities.PredictionKind) entities.Outcome {
	switch kind {
	case entities.PredictionKindNumber:
		number := rand.Intn(10) + 1
		size := "BIG"
		image := imageNumberBig
		if number <= numberSmallMax {
			size = "SMALL"
			image = imageNumberSmall
		}
		return entities.Outcome{
			Kind:     kind,
			Result:   fmt.Sprintf("%d (%s)", number, size),
			ImageURL: image,
		}
	default:
		if rand.Intn(2) == 0 {
			return entities.Outcome{
				Kind:     entities.PredictionKindColor,
				Result:   "🔴 RED",
				ImageURL: imageColorRed,
			}
		}
		return entities.Outcome{
			Kind:     entities.PredictionKindColor,
			Result:   "🟢 GREEN",
			ImageURL: imageColorGreen,
		}
	}
}

// Record persists one completed prediction: exactly one prediction record,
// one prediction-count bump and one leaderboard point.
func (s *predictionService) Record(ctx context.Context, telegramID int64, username string, outcome entities.Outcome) error {
	record := &entities.PredictionRecord{
		TelegramID: telegramID,
		Kind:       outcome.Kind,
		Result:     outcome.Result,
	}
	if err := s.predictionRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create prediction record for user %d: %w", telegramID, err)
	}

	if err := s.userRepo.IncrementPredictions(ctx, telegramID); err != nil {
		return fmt.Errorf("failed to increment prediction count for user %d: %w", telegramID, err)
	}

	if err := s.leaderboardRepo.AddScore(ctx, telegramID, username, pointsPerPrediction); err != nil {
		return fmt.Errorf("failed to add leaderboard score for user %d: %w", telegramID, err)
	}

	return nil
}
