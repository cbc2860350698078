package admin

import (
	"context"
	"fmt"
	"strings"

	"predictor/domain/entities"
	"predictor/domain/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Feature handles the admin-only /stats and /broadcast commands
type Feature struct {
	messenger  interfaces.Messenger
	adminID    int64
	broadcasts interfaces.BroadcastService
	stats      interfaces.StatsService
}

// NewFeature creates the admin feature
func NewFeature(messenger interfaces.Messenger, adminID int64, broadcasts interfaces.BroadcastService, stats interfaces.StatsService) *Feature {
	return &Feature{
		messenger:  messenger,
		adminID:    adminID,
		broadcasts: broadcasts,
		stats:      stats,
	}
}

// HandleStats handles the /stats command
func (f *Feature) HandleStats(msg *tgbotapi.Message) {
	if !f.isAdmin(msg) {
		return
	}

	totals, err := f.stats.Totals(context.Background())
	if err != nil {
		log.WithError(err).Error("Failed to load bot stats")
		f.send(msg.Chat.ID, "⚠️ Stats are unavailable right now, try again later.", "")
		return
	}

	text := "📊 *Bᴏᴛ Sᴛᴀᴛɪꜱᴛɪᴄꜱ*\n\n" +
		fmt.Sprintf("👥 Tᴏᴛᴀʟ Uꜱᴇʀꜱ: %d\n", totals.TotalUsers) +
		fmt.Sprintf("🔍 Tᴏᴛᴀʟ Predictions: %d\n\n", totals.TotalPredictions)

	f.send(msg.Chat.ID, text, "Markdown")
}

// HandleBroadcast handles the /broadcast command. The message text is
// everything after the command.
func (f *Feature) HandleBroadcast(msg *tgbotapi.Message) {
	if !f.isAdmin(msg) {
		return
	}

	text := strings.TrimSpace(msg.CommandArguments())
	if text == "" {
		f.send(msg.Chat.ID, "❌ Please provide a message to broadcast.", "")
		return
	}

	summary, err := f.broadcasts.Broadcast(context.Background(), text)
	if err != nil {
		log.WithError(err).Error("Broadcast failed")
		f.send(msg.Chat.ID, "⚠️ Broadcast failed, try again later.", "")
		return
	}

	log.WithFields(log.Fields{
		"attempted": summary.Attempted,
		"delivered": summary.Delivered,
		"failed":    len(summary.Failures),
	}).Info("Broadcast finished")

	reply := fmt.Sprintf("✅ Broadcast sent to %d users.", summary.Delivered)
	if len(summary.Failures) > 0 {
		reply += fmt.Sprintf(" %d deliveries failed.", len(summary.Failures))
	}
	f.send(msg.Chat.ID, reply, "")
}

// isAdmin replies with the denial message and returns false for non-admin
// callers. Denied calls never touch the store.
func (f *Feature) isAdmin(msg *tgbotapi.Message) bool {
	if msg.From.ID == f.adminID {
		return true
	}
	f.send(msg.Chat.ID, "❌ You don't have permission to use this command.", "")
	return false
}

func (f *Feature) send(chatID int64, text, parseMode string) {
	_, err := f.messenger.SendMessage(entities.OutboundMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Failed to send admin reply")
	}
}
