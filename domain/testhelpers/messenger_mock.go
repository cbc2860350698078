package testhelpers

import (
	"predictor/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockMessenger is a mock implementation of Messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendMessage(msg entities.OutboundMessage) (entities.MessageRef, error) {
	args := m.Called(msg)
	return args.Get(0).(entities.MessageRef), args.Error(1)
}

func (m *MockMessenger) SendPhoto(photo entities.OutboundPhoto) (entities.MessageRef, error) {
	args := m.Called(photo)
	return args.Get(0).(entities.MessageRef), args.Error(1)
}

func (m *MockMessenger) EditMessageText(chatID int64, messageID int, text string) error {
	args := m.Called(chatID, messageID, text)
	return args.Error(0)
}

func (m *MockMessenger) DeleteMessage(chatID int64, messageID int) error {
	args := m.Called(chatID, messageID)
	return args.Error(0)
}

func (m *MockMessenger) AnswerCallback(callbackID string, text string, showAlert bool) error {
	args := m.Called(callbackID, text, showAlert)
	return args.Error(0)
}

func (m *MockMessenger) GetChatMember(channel string, userID int64) (entities.MemberStatus, error) {
	args := m.Called(channel, userID)
	return args.Get(0).(entities.MemberStatus), args.Error(1)
}
