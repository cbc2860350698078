package services

import (
	"context"
	"fmt"

	"predictor/domain/entities"
	"predictor/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type broadcastService struct {
	userRepo  interfaces.UserRepository
	messenger interfaces.Messenger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(userRepo interfaces.UserRepository, messenger interfaces.Messenger) interfaces.BroadcastService {
	return &broadcastService{
		userRepo:  userRepo,
		messenger: messenger,
	}
}

// Broadcast sends text to every known user, one send per user. A failed send
// is recorded in the summary and never aborts the remaining sends.
func (s *broadcastService) Broadcast(ctx context.Context, text string) (*entities.BroadcastSummary, error) {
	summary := &entities.BroadcastSummary{}

	err := s.userRepo.EachID(ctx, func(telegramID int64) error {
		summary.Attempted++
		_, sendErr := s.messenger.SendMessage(entities.OutboundMessage{
			ChatID: telegramID,
			Text:   text,
		})
		if sendErr != nil {
			log.WithError(sendErr).WithField("user_id", telegramID).Warn("Broadcast delivery failed")
			summary.Failures = append(summary.Failures, entities.BroadcastFailure{
				TelegramID: telegramID,
				Reason:     sendErr.Error(),
			})
			return nil
		}
		summary.Delivered++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate users for broadcast: %w", err)
	}

	return summary, nil
}
