package services

import (
	"context"
	"errors"
	"testing"

	"predictor/domain/entities"
	"predictor/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBroadcastService_PartialFailure(t *testing.T) {
	mockUserRepo := new(testhelpers.MockUserRepository)
	mockMessenger := new(testhelpers.MockMessenger)
	service := NewBroadcastService(mockUserRepo, mockMessenger)
	ctx := context.Background()

	mockUserRepo.On("EachID", ctx, mock.Anything).Run(func(args mock.Arguments) {
		fn := args.Get(1).(func(int64) error)
		for _, id := range []int64{101, 102, 103} {
			_ = fn(id)
		}
	}).Return(nil)

	mockMessenger.On("SendMessage", entities.OutboundMessage{ChatID: 101, Text: "hello"}).Return(entities.MessageRef{ChatID: 101, MessageID: 1}, nil)
	mockMessenger.On("SendMessage", entities.OutboundMessage{ChatID: 102, Text: "hello"}).Return(entities.MessageRef{}, errors.New("blocked by user"))
	mockMessenger.On("SendMessage", entities.OutboundMessage{ChatID: 103, Text: "hello"}).Return(entities.MessageRef{ChatID: 103, MessageID: 2}, nil)

	summary, err := service.Broadcast(ctx, "hello")
	require.NoError(t, err)

	// The middle failure never aborts the remaining sends
	assert.Equal(t, 3, summary.Attempted)
	assert.Equal(t, 2, summary.Delivered)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, int64(102), summary.Failures[0].TelegramID)
	assert.Equal(t, "blocked by user", summary.Failures[0].Reason)

	mockMessenger.AssertNumberOfCalls(t, "SendMessage", 3)
}

func TestBroadcastService_NoUsers(t *testing.T) {
	mockUserRepo := new(testhelpers.MockUserRepository)
	mockMessenger := new(testhelpers.MockMessenger)
	service := NewBroadcastService(mockUserRepo, mockMessenger)
	ctx := context.Background()

	mockUserRepo.On("EachID", ctx, mock.Anything).Return(nil)

	summary, err := service.Broadcast(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Attempted)
	assert.Equal(t, 0, summary.Delivered)
	assert.Empty(t, summary.Failures)

	mockMessenger.AssertNotCalled(t, "SendMessage", mock.Anything)
}

func TestBroadcastService_StreamError(t *testing.T) {
	mockUserRepo := new(testhelpers.MockUserRepository)
	mockMessenger := new(testhelpers.MockMessenger)
	service := NewBroadcastService(mockUserRepo, mockMessenger)
	ctx := context.Background()

	mockUserRepo.On("EachID", ctx, mock.Anything).Return(errors.New("connection lost"))

	summary, err := service.Broadcast(ctx, "hello")
	assert.Error(t, err)
	assert.Nil(t, summary)
}
