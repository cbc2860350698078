package testhelpers

import (
	"context"

	"predictor/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockMembershipService is a mock implementation of MembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) IsAuthorized(userID int64) bool {
	args := m.Called(userID)
	return args.Bool(0)
}

// MockPredictionService is a mock implementation of PredictionService
type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) Draw(kind entities.PredictionKind) entities.Outcome {
	args := m.Called(kind)
	return args.Get(0).(entities.Outcome)
}

func (m *MockPredictionService) Record(ctx context.Context, telegramID int64, username string, outcome entities.Outcome) error {
	args := m.Called(ctx, telegramID, username, outcome)
	return args.Error(0)
}

// MockBroadcastService is a mock implementation of BroadcastService
type MockBroadcastService struct {
	mock.Mock
}

func (m *MockBroadcastService) Broadcast(ctx context.Context, text string) (*entities.BroadcastSummary, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BroadcastSummary), args.Error(1)
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Totals(ctx context.Context) (*entities.BotStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BotStats), args.Error(1)
}
