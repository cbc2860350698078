package profile

import (
	"context"
	"fmt"

	"predictor/bot/features/membership"
	"predictor/domain/entities"
	"predictor/domain/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const adminContactURL = "https://t.me/Silando"

const howToBetText = "🎲 *How to Bet on Color & Number Prediction Games* 🎲\n\n" +
	"1️⃣ Choose a trusted betting platform\n" +
	"2️⃣ Deposit funds into your account\n" +
	"3️⃣ Select the game type\n" +
	"4️⃣ Place your bet\n" +
	"5️⃣ Wait for results\n\n" +
	"⚠️ *Bet Responsibly!*"

const contactText = "📞 ★彡( 𝕮𝖔𝖓𝖙𝖆𝖈𝖙 𝖀𝖘 )彡★ 📞\n\n" +
	"📧 Eᴍᴀɪʟ: `freenethubbusiness@gmail.com`\n\n" +
	"Fᴏʀ Aɴʏ Iꜱꜱᴜᴇꜱ, Bᴜꜱɪɴᴇꜱꜱ Dᴇᴀʟꜱ Oʀ IɴQᴜɪʀɪᴇꜱ, Pʟᴇᴀꜱᴇ Rᴇᴀᴄʜ Oᴜᴛ Tᴏ Uꜱ \n\n" +
	"❗ *ONLY FOR BUSINESS AND HELP, DON'T SPAM!*"

// Feature handles the /profile, /howtobet and /contactus commands
type Feature struct {
	messenger   interfaces.Messenger
	gate        interfaces.MembershipService
	membership  *membership.Feature
	users       interfaces.UserRepository
	predictions interfaces.PredictionRepository
}

// NewFeature creates the profile feature
func NewFeature(messenger interfaces.Messenger, gate interfaces.MembershipService, membershipFeature *membership.Feature, users interfaces.UserRepository, predictions interfaces.PredictionRepository) *Feature {
	return &Feature{
		messenger:   messenger,
		gate:        gate,
		membership:  membershipFeature,
		users:       users,
		predictions: predictions,
	}
}

// HandleProfile handles the /profile command
func (f *Feature) HandleProfile(msg *tgbotapi.Message) {
	if !f.gate.IsAuthorized(msg.From.ID) {
		f.membership.RequestJoin(msg.Chat.ID)
		return
	}

	ctx := context.Background()

	user, err := f.users.GetByTelegramID(ctx, msg.From.ID)
	if err != nil {
		log.WithError(err).WithField("user_id", msg.From.ID).Error("Failed to load user profile")
	}

	count, err := f.predictions.CountByUser(ctx, msg.From.ID)
	if err != nil {
		log.WithError(err).WithField("user_id", msg.From.ID).Error("Failed to count user predictions")
	}

	joined := "N/A"
	if user != nil {
		joined = user.JoinedAt.Format("2006-01-02 15:04:05")
	}
	username := msg.From.UserName
	if username == "" {
		username = "N/A"
	}

	text := fmt.Sprintf("👤 User Info:\n\n"+
		"🆔 User ID: %d\n"+
		"🤵 Name: %s\n"+
		"👤 Username: %s\n"+
		"📊 Predictions: %d\n"+
		"⏳ Joined: %s\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━\n",
		msg.From.ID, msg.From.FirstName, username, count, joined)

	f.send(entities.OutboundMessage{ChatID: msg.Chat.ID, Text: text})
}

// HandleHowToBet handles the /howtobet command
func (f *Feature) HandleHowToBet(msg *tgbotapi.Message) {
	if !f.gate.IsAuthorized(msg.From.ID) {
		f.membership.RequestJoin(msg.Chat.ID)
		return
	}

	f.send(entities.OutboundMessage{
		ChatID:    msg.Chat.ID,
		Text:      howToBetText,
		ParseMode: "Markdown",
	})
}

// HandleContact handles the /contactus command
func (f *Feature) HandleContact(msg *tgbotapi.Message) {
	f.send(entities.OutboundMessage{
		ChatID:    msg.Chat.ID,
		Text:      contactText,
		ParseMode: "Markdown",
		Buttons: [][]entities.Button{
			{{Label: "📩 Mᴇꜱꜱᴀɢᴇ Aᴅᴍɪɴ", URL: adminContactURL}},
		},
	})
}

func (f *Feature) send(msg entities.OutboundMessage) {
	if _, err := f.messenger.SendMessage(msg); err != nil {
		log.WithError(err).WithField("chat_id", msg.ChatID).Error("Failed to send message")
	}
}
