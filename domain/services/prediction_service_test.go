package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"predictor/domain/entities"
	"predictor/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPredictionService() (*testhelpers.MockUserRepository, *testhelpers.MockPredictionRepository, *testhelpers.MockLeaderboardRepository, *predictionService) {
	mockUserRepo := new(testhelpers.MockUserRepository)
	mockPredictionRepo := new(testhelpers.MockPredictionRepository)
	mockLeaderboardRepo := new(testhelpers.MockLeaderboardRepository)
	service := NewPredictionService(mockUserRepo, mockPredictionRepo, mockLeaderboardRepo).(*predictionService)
	return mockUserRepo, mockPredictionRepo, mockLeaderboardRepo, service
}

func TestPredictionService_Draw_Color(t *testing.T) {
	_, _, _, service := newTestPredictionService()

	for i := 0; i < 100; i++ {
		outcome := service.Draw(entities.PredictionKindColor)
		assert.Equal(t, entities.PredictionKindColor, outcome.Kind)
		assert.Contains(t, []string{"🔴 RED", "🟢 GREEN"}, outcome.Result)
		assert.NotEmpty(t, outcome.ImageURL)
	}
}

func TestPredictionService_Draw_NumberSizeLabel(t *testing.T) {
	_, _, _, service := newTestPredictionService()

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		outcome := service.Draw(entities.PredictionKindNumber)
		require.Equal(t, entities.PredictionKindNumber, outcome.Kind)

		var number int
		var size string
		_, err := fmt.Sscanf(outcome.Result, "%d (%s", &number, &size)
		require.NoError(t, err, "unexpected result format %q", outcome.Result)
		size = strings.TrimSuffix(size, ")")

		require.GreaterOrEqual(t, number, 1)
		require.LessOrEqual(t, number, 10)
		if number <= 4 {
			assert.Equal(t, "SMALL", size, "number %d must be SMALL", number)
		} else {
			assert.Equal(t, "BIG", size, "number %d must be BIG", number)
		}
		seen[strconv.Itoa(number)] = true
	}

	// 500 uniform draws over [1,10] hit every value in practice
	assert.Len(t, seen, 10)
}

func TestPredictionService_Record(t *testing.T) {
	mockUserRepo, mockPredictionRepo, mockLeaderboardRepo, service := newTestPredictionService()
	ctx := context.Background()

	outcome := entities.Outcome{
		Kind:   entities.PredictionKindColor,
		Result: "🔴 RED",
	}

	mockPredictionRepo.On("Create", ctx, mock.MatchedBy(func(r *entities.PredictionRecord) bool {
		return r.TelegramID == 123 && r.Kind == entities.PredictionKindColor && r.Result == "🔴 RED"
	})).Return(nil)
	mockUserRepo.On("IncrementPredictions", ctx, int64(123)).Return(nil)
	mockLeaderboardRepo.On("AddScore", ctx, int64(123), "testuser", int64(1)).Return(nil)

	err := service.Record(ctx, 123, "testuser", outcome)
	require.NoError(t, err)

	mockPredictionRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockLeaderboardRepo.AssertExpectations(t)
	mockPredictionRepo.AssertNumberOfCalls(t, "Create", 1)
	mockLeaderboardRepo.AssertNumberOfCalls(t, "AddScore", 1)
}

func TestPredictionService_Record_CreateFails(t *testing.T) {
	mockUserRepo, mockPredictionRepo, mockLeaderboardRepo, service := newTestPredictionService()
	ctx := context.Background()

	mockPredictionRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	err := service.Record(ctx, 123, "testuser", entities.Outcome{Kind: entities.PredictionKindNumber, Result: "3 (SMALL)"})
	assert.Error(t, err)

	// No score is awarded when the record was not written
	mockLeaderboardRepo.AssertNotCalled(t, "AddScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockUserRepo.AssertNotCalled(t, "IncrementPredictions", mock.Anything, mock.Anything)
}
