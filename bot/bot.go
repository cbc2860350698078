package bot

import (
	"predictor/bot/common"
	"predictor/bot/features/admin"
	"predictor/bot/features/leaderboard"
	"predictor/bot/features/membership"
	"predictor/bot/features/prediction"
	"predictor/bot/features/profile"
	"predictor/domain/entities"
	"predictor/domain/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Config holds bot configuration
type Config struct {
	AdminID          int64
	RequiredChannels []string
	ChannelLinks     []string
}

// Services groups the domain services the bot dispatches into
type Services struct {
	Gate        interfaces.MembershipService
	Predictions interfaces.PredictionService
	Broadcasts  interfaces.BroadcastService
	Stats       interfaces.StatsService
}

// Repositories groups the repositories the features read from
type Repositories struct {
	Users             interfaces.UserRepository
	PredictionRecords interfaces.PredictionRepository
	Leaderboard       interfaces.LeaderboardRepository
}

// Bot routes inbound updates to feature handlers
type Bot struct {
	config    Config
	messenger interfaces.Messenger

	// Feature modules
	membership  *membership.Feature
	prediction  *prediction.Feature
	profile     *profile.Feature
	leaderboard *leaderboard.Feature
	admin       *admin.Feature
}

// New creates a new bot instance with all features
func New(config Config, messenger interfaces.Messenger, services Services, repos Repositories) *Bot {
	bot := &Bot{
		config:    config,
		messenger: messenger,
	}

	bot.membership = membership.NewFeature(messenger, services.Gate, repos.Users, config.RequiredChannels, config.ChannelLinks)
	// Prediction depends on membership for the join prompt short-circuit
	bot.prediction = prediction.NewFeature(messenger, services.Predictions, services.Gate, bot.membership)
	bot.profile = profile.NewFeature(messenger, services.Gate, bot.membership, repos.Users, repos.PredictionRecords)
	bot.leaderboard = leaderboard.NewFeature(messenger, repos.Leaderboard)
	bot.admin = admin.NewFeature(messenger, config.AdminID, services.Broadcasts, services.Stats)

	return bot
}

// HandleUpdate dispatches one inbound update to exactly one handler.
// Unrecognized update kinds are dropped silently; unknown provider payloads
// are expected and must not crash or reply.
func (b *Bot) HandleUpdate(update *tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand() && update.Message.From != nil:
		b.handleCommand(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

// handleCommand routes text commands to feature handlers
func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.membership.HandleStart(msg)
	case "howtobet":
		b.profile.HandleHowToBet(msg)
	case "profile":
		b.profile.HandleProfile(msg)
	case "leaderboard":
		b.leaderboard.HandleLeaderboard(msg)
	case "stats":
		b.admin.HandleStats(msg)
	case "broadcast":
		b.admin.HandleBroadcast(msg)
	case "contactus":
		b.profile.HandleContact(msg)
	}
}

// handleCallback routes button presses to feature handlers
func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	switch cb.Data {
	case common.CallbackColorPrediction:
		b.prediction.HandleCallback(cb, entities.PredictionKindColor)
	case common.CallbackNumberPrediction:
		b.prediction.HandleCallback(cb, entities.PredictionKindNumber)
	case common.CallbackVerifyMembership:
		b.membership.HandleVerify(cb)
	}
}
