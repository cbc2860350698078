package services

import (
	"context"
	"fmt"

	"predictor/domain/entities"
	"predictor/domain/interfaces"
)

type statsService struct {
	userRepo       interfaces.UserRepository
	predictionRepo interfaces.PredictionRepository
}

// NewStatsService creates a new stats service
func NewStatsService(userRepo interfaces.UserRepository, predictionRepo interfaces.PredictionRepository) interfaces.StatsService {
	return &statsService{
		userRepo:       userRepo,
		predictionRepo: predictionRepo,
	}
}

func (s *statsService) Totals(ctx context.Context) (*entities.BotStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	predictions, err := s.predictionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count predictions: %w", err)
	}

	return &entities.BotStats{
		TotalUsers:       users,
		TotalPredictions: predictions,
	}, nil
}
