package services

import (
	"predictor/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type membershipService struct {
	messenger interfaces.Messenger
	channels  []string
}

// NewMembershipService creates a membership service that checks the given
// required channels. Channel names are public names without the @ prefix.
func NewMembershipService(messenger interfaces.Messenger, requiredChannels []string) interfaces.MembershipService {
	return &membershipService{
		messenger: messenger,
		channels:  requiredChannels,
	}
}

// IsAuthorized checks the user's membership in every required channel.
// A provider error for any channel counts as not a member of that channel,
// so the check fails closed.
func (s *membershipService) IsAuthorized(userID int64) bool {
	for _, channel := range s.channels {
		status, err := s.messenger.GetChatMember("@"+channel, userID)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id": userID,
				"channel": channel,
			}).Error("Failed to check channel membership")
			return false
		}
		if !status.IsActive() {
			return false
		}
	}
	return true
}
