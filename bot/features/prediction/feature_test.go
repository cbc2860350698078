package prediction

import (
	"errors"
	"strings"
	"testing"
	"time"

	"predictor/bot/common"
	"predictor/bot/features/membership"
	"predictor/domain/entities"
	"predictor/domain/testhelpers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stretchr/testify/mock"
)

type predictionFixture struct {
	feature *Feature

	messenger   *testhelpers.MockMessenger
	predictions *testhelpers.MockPredictionService
	gate        *testhelpers.MockMembershipService
	users       *testhelpers.MockUserRepository
}

func newPredictionFixture() *predictionFixture {
	f := &predictionFixture{
		messenger:   new(testhelpers.MockMessenger),
		predictions: new(testhelpers.MockPredictionService),
		gate:        new(testhelpers.MockMembershipService),
		users:       new(testhelpers.MockUserRepository),
	}

	membershipFeature := membership.NewFeature(f.messenger, f.gate, f.users,
		[]string{"channel_one"}, []string{"https://t.me/channel_one"})

	f.feature = NewFeature(f.messenger, f.predictions, f.gate, membershipFeature)
	f.feature.frameInterval = time.Millisecond
	return f
}

func colorOutcome() entities.Outcome {
	return entities.Outcome{
		Kind:     entities.PredictionKindColor,
		Result:   "🔴 RED",
		ImageURL: "https://t.me/megahubbots/14",
	}
}

func TestRunSequence_DeliversResult(t *testing.T) {
	f := newPredictionFixture()
	outcome := colorOutcome()

	f.messenger.On("SendMessage", mock.MatchedBy(func(msg entities.OutboundMessage) bool {
		return msg.ChatID == 42 && msg.Text == syncFrames[0]
	})).Return(entities.MessageRef{ChatID: 42, MessageID: 10}, nil)
	f.messenger.On("EditMessageText", int64(42), 10, mock.Anything).Return(nil)
	f.predictions.On("Draw", entities.PredictionKindColor).Return(outcome)
	f.predictions.On("Record", mock.Anything, int64(7), "tester", outcome).Return(nil)
	f.messenger.On("DeleteMessage", int64(42), 10).Return(nil)
	f.messenger.On("SendPhoto", mock.MatchedBy(func(photo entities.OutboundPhoto) bool {
		if photo.ChatID != 42 || photo.PhotoURL != outcome.ImageURL {
			return false
		}
		if !strings.Contains(photo.Caption, outcome.Result) {
			return false
		}
		return len(photo.Buttons) == 1 && photo.Buttons[0][0].CallbackData == common.CallbackColorPrediction
	})).Return(entities.MessageRef{ChatID: 42, MessageID: 11}, nil)

	f.feature.runSequence(42, &tgbotapi.User{ID: 7, UserName: "tester"}, entities.PredictionKindColor)

	f.messenger.AssertExpectations(t)
	f.predictions.AssertExpectations(t)
	// One frame is sent, the rest are edits
	f.messenger.AssertNumberOfCalls(t, "EditMessageText", len(syncFrames)-1)
	f.predictions.AssertNumberOfCalls(t, "Record", 1)
}

func TestRunSequence_PlaceholderFailureAborts(t *testing.T) {
	f := newPredictionFixture()

	f.messenger.On("SendMessage", mock.Anything).
		Return(entities.MessageRef{}, errors.New("chat not found"))

	f.feature.runSequence(42, &tgbotapi.User{ID: 7}, entities.PredictionKindColor)

	f.predictions.AssertNotCalled(t, "Draw", mock.Anything)
	f.predictions.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.messenger.AssertNotCalled(t, "SendPhoto", mock.Anything)
}

func TestRunSequence_EditFailuresDoNotAbort(t *testing.T) {
	f := newPredictionFixture()
	outcome := colorOutcome()

	f.messenger.On("SendMessage", mock.Anything).
		Return(entities.MessageRef{ChatID: 42, MessageID: 10}, nil)
	f.messenger.On("EditMessageText", int64(42), 10, mock.Anything).
		Return(errors.New("message to edit not found"))
	f.predictions.On("Draw", entities.PredictionKindColor).Return(outcome)
	f.predictions.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.messenger.On("DeleteMessage", int64(42), 10).Return(nil)
	f.messenger.On("SendPhoto", mock.Anything).
		Return(entities.MessageRef{ChatID: 42, MessageID: 11}, nil)

	f.feature.runSequence(42, &tgbotapi.User{ID: 7}, entities.PredictionKindColor)

	f.messenger.AssertNumberOfCalls(t, "SendPhoto", 1)
}

func TestRunSequence_RecordFailureStillDelivers(t *testing.T) {
	f := newPredictionFixture()
	outcome := colorOutcome()

	f.messenger.On("SendMessage", mock.Anything).
		Return(entities.MessageRef{ChatID: 42, MessageID: 10}, nil)
	f.messenger.On("EditMessageText", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.predictions.On("Draw", entities.PredictionKindColor).Return(outcome)
	f.predictions.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))
	f.messenger.On("DeleteMessage", mock.Anything, mock.Anything).Return(nil)
	f.messenger.On("SendPhoto", mock.Anything).
		Return(entities.MessageRef{ChatID: 42, MessageID: 11}, nil)

	f.feature.runSequence(42, &tgbotapi.User{ID: 7}, entities.PredictionKindColor)

	// A failed store write never withholds the result
	f.messenger.AssertNumberOfCalls(t, "SendPhoto", 1)
}

func TestHandleCallback_UnverifiedGetsJoinPrompt(t *testing.T) {
	f := newPredictionFixture()

	f.messenger.On("AnswerCallback", "cb-1", "", false).Return(nil)
	f.gate.On("IsAuthorized", int64(7)).Return(false)
	f.messenger.On("SendMessage", mock.MatchedBy(func(msg entities.OutboundMessage) bool {
		return strings.Contains(msg.Text, "You must join the following channels")
	})).Return(entities.MessageRef{ChatID: 42, MessageID: 2}, nil)

	f.feature.HandleCallback(&tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: 7},
		Message: &tgbotapi.Message{MessageID: 50, Chat: &tgbotapi.Chat{ID: 42}},
	}, entities.PredictionKindColor)

	f.messenger.AssertExpectations(t)
	f.predictions.AssertNotCalled(t, "Draw", mock.Anything)
}

func TestHandleCallback_StaleCallbackOnlyAnswered(t *testing.T) {
	f := newPredictionFixture()

	f.messenger.On("AnswerCallback", "cb-1", "", false).Return(nil)

	// Telegram drops Message on old callbacks; nothing else should happen
	f.feature.HandleCallback(&tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: 7},
	}, entities.PredictionKindNumber)

	f.messenger.AssertExpectations(t)
	f.gate.AssertNotCalled(t, "IsAuthorized", mock.Anything)
	f.predictions.AssertNotCalled(t, "Draw", mock.Anything)
}
