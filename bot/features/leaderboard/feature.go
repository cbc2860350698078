package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"predictor/domain/entities"
	"predictor/domain/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// topSize is how many entries the /leaderboard command shows
const topSize = 10

// Feature handles the /leaderboard command
type Feature struct {
	messenger interfaces.Messenger
	entries   interfaces.LeaderboardRepository
}

// NewFeature creates the leaderboard feature
func NewFeature(messenger interfaces.Messenger, entries interfaces.LeaderboardRepository) *Feature {
	return &Feature{
		messenger: messenger,
		entries:   entries,
	}
}

// HandleLeaderboard handles the /leaderboard command. It is intentionally not
// membership-gated.
func (f *Feature) HandleLeaderboard(msg *tgbotapi.Message) {
	top, err := f.entries.Top(context.Background(), topSize)
	if err != nil {
		log.WithError(err).Error("Failed to load leaderboard")
		f.send(msg.Chat.ID, "⚠️ Leaderboard is unavailable right now, try again later.")
		return
	}

	if len(top) == 0 {
		f.send(msg.Chat.ID, "No users on the leaderboard yet.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏆 Top %d Users:\n\n", topSize)
	for i, entry := range top {
		name := entry.Username
		if name == "" {
			name = fmt.Sprintf("user %d", entry.TelegramID)
		}
		fmt.Fprintf(&b, "%d. %s: %d points\n", i+1, name, entry.Score)
	}

	f.send(msg.Chat.ID, b.String())
}

func (f *Feature) send(chatID int64, text string) {
	if _, err := f.messenger.SendMessage(entities.OutboundMessage{ChatID: chatID, Text: text}); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Failed to send leaderboard message")
	}
}
