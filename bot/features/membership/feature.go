package membership

import (
	"context"

	"predictor/bot/common"
	"predictor/domain/entities"
	"predictor/domain/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Feature handles the /start entry point and the membership verification flow
type Feature struct {
	messenger interfaces.Messenger
	gate      interfaces.MembershipService
	users     interfaces.UserRepository
	channels  []string
	links     []string
}

// NewFeature creates the membership feature. channels and links are
// index-aligned.
func NewFeature(messenger interfaces.Messenger, gate interfaces.MembershipService, users interfaces.UserRepository, channels, links []string) *Feature {
	return &Feature{
		messenger: messenger,
		gate:      gate,
		users:     users,
		channels:  channels,
		links:     links,
	}
}

// HandleStart handles the /start command. The user is registered before the
// gate runs, so even gated users exist in the store.
func (f *Feature) HandleStart(msg *tgbotapi.Message) {
	f.registerUser(msg.From)

	if !f.gate.IsAuthorized(msg.From.ID) {
		f.RequestJoin(msg.Chat.ID)
		return
	}

	f.sendWelcome(msg.Chat.ID)
}

// HandleVerify handles the verify button on the join prompt. On success the
// prompt is edited into a confirmation and the start flow re-runs; on failure
// the user gets a transient alert and nothing changes.
func (f *Feature) HandleVerify(cb *tgbotapi.CallbackQuery) {
	if !f.gate.IsAuthorized(cb.From.ID) {
		if err := f.messenger.AnswerCallback(cb.ID, "⚠️ You haven't joined all the required channels yet!", true); err != nil {
			log.WithError(err).Warn("Failed to answer verify callback")
		}
		return
	}

	if err := f.messenger.AnswerCallback(cb.ID, "", false); err != nil {
		log.WithError(err).Warn("Failed to answer verify callback")
	}

	if cb.Message != nil {
		err := f.messenger.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, "✅ You are verified! You can now use the bot.")
		if err != nil {
			log.WithError(err).Warn("Failed to edit join prompt")
		}

		f.registerUser(cb.From)
		f.sendWelcome(cb.Message.Chat.ID)
	}
}

// RequestJoin sends the join prompt: one link button per required channel
// plus the verify button.
func (f *Feature) RequestJoin(chatID int64) {
	buttons := make([][]entities.Button, 0, len(f.channels)+1)
	for i, channel := range f.channels {
		link := ""
		if i < len(f.links) {
			link = f.links[i]
		}
		buttons = append(buttons, []entities.Button{{Label: "Join " + channel, URL: link}})
	}
	buttons = append(buttons, []entities.Button{{Label: "✅ Verify", CallbackData: common.CallbackVerifyMembership}})

	_, err := f.messenger.SendMessage(entities.OutboundMessage{
		ChatID: chatID,
		Text: "🪬 Verification Status: ⚠️ You must join the following channels to use this bot and verify you're not a robot 🚨\n\n" +
			"Click the buttons below to join, then press *'✅ Verify'*.",
		ParseMode: "Markdown",
		Buttons:   buttons,
	})
	if err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Failed to send join prompt")
	}
}

func (f *Feature) sendWelcome(chatID int64) {
	_, err := f.messenger.SendMessage(entities.OutboundMessage{
		ChatID: chatID,
		Text: "🎉 Welcome to the Color and Number Prediction Bot!\n\n" +
			"📢 Disclaimer: This bot provides randomized predictions for entertainment only.\n\n" +
			"Use the buttons below to get started:",
		Buttons: [][]entities.Button{
			{{Label: "🎨 Color Prediction", CallbackData: common.CallbackColorPrediction}},
			{{Label: "🔢 Number Prediction", CallbackData: common.CallbackNumberPrediction}},
		},
	})
	if err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Failed to send welcome message")
	}
}

func (f *Feature) registerUser(from *tgbotapi.User) {
	if from == nil {
		return
	}

	user := &entities.User{
		TelegramID: from.ID,
		Username:   from.UserName,
		FirstName:  from.FirstName,
		LastName:   from.LastName,
	}
	if err := f.users.Upsert(context.Background(), user); err != nil {
		log.WithError(err).WithField("user_id", from.ID).Error("Failed to upsert user")
	}
}
