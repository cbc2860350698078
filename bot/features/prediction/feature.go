package prediction

import (
	"context"
	"time"

	"predictor/bot/common"
	"predictor/bot/features/membership"
	"predictor/domain/entities"
	"predictor/domain/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const resultFooter = "📑 Remember: Read how to bet from the /howtobet command before you proceed!\n\n" +
	`🔗 <a href="https://matatulord.com?referral_code=W7GNJF">Make Money with Matatu Game</a>`

// Feature runs the animated prediction workflow
type Feature struct {
	messenger   interfaces.Messenger
	predictions interfaces.PredictionService
	gate        interfaces.MembershipService
	membership  *membership.Feature

	// frameInterval is the delay between animation edits
	frameInterval time.Duration
}

// NewFeature creates the prediction feature
func NewFeature(messenger interfaces.Messenger, predictions interfaces.PredictionService, gate interfaces.MembershipService, membershipFeature *membership.Feature) *Feature {
	return &Feature{
		messenger:     messenger,
		predictions:   predictions,
		gate:          gate,
		membership:    membershipFeature,
		frameInterval: time.Second,
	}
}

// HandleCallback handles a prediction button press. The callback is
// acknowledged immediately; the animated sequence then runs on its own
// goroutine so a slow animation never blocks other updates.
func (f *Feature) HandleCallback(cb *tgbotapi.CallbackQuery, kind entities.PredictionKind) {
	if err := f.messenger.AnswerCallback(cb.ID, "", false); err != nil {
		log.WithError(err).Warn("Failed to answer prediction callback")
	}

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	if !f.gate.IsAuthorized(cb.From.ID) {
		f.membership.RequestJoin(chatID)
		return
	}

	go f.runSequence(chatID, cb.From, kind)
}

// runSequence plays the progress animation, draws the outcome, persists it
// and delivers the result. Persistence runs concurrently with delivery: a
// failed store write is logged but never withholds the outcome from the user.
func (f *Feature) runSequence(chatID int64, from *tgbotapi.User, kind entities.PredictionKind) {
	placeholder, err := f.messenger.SendMessage(entities.OutboundMessage{
		ChatID: chatID,
		Text:   syncFrames[0],
	})
	if err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Failed to send animation placeholder")
		return
	}

	ticker := time.NewTicker(f.frameInterval)
	defer ticker.Stop()
	for _, frame := range syncFrames[1:] {
		<-ticker.C
		if err := f.messenger.EditMessageText(chatID, placeholder.MessageID, frame); err != nil {
			// Message may have been deleted concurrently; keep going
			log.WithError(err).WithField("chat_id", chatID).Warn("Failed to edit animation frame")
		}
	}

	outcome := f.predictions.Draw(kind)

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := f.predictions.Record(context.Background(), from.ID, from.UserName, outcome)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id": from.ID,
				"kind":    kind,
			}).Error("Failed to record prediction")
		}
	}()

	if err := f.messenger.DeleteMessage(chatID, placeholder.MessageID); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Warn("Failed to delete animation message")
	}

	if _, err := f.messenger.SendPhoto(buildResultPhoto(chatID, outcome)); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Failed to send prediction result")
	}

	<-done
}

func buildResultPhoto(chatID int64, outcome entities.Outcome) entities.OutboundPhoto {
	var caption, repeat string
	switch outcome.Kind {
	case entities.PredictionKindNumber:
		caption = "🔢 Number Prediction:\n\n🎰 Number: " + outcome.Result + "\n\n" + resultFooter
		repeat = common.CallbackNumberPrediction
	default:
		caption = "🎨 Color Prediction:\n\n" + outcome.Result + "\n\n" + resultFooter
		repeat = common.CallbackColorPrediction
	}

	return entities.OutboundPhoto{
		ChatID:    chatID,
		PhotoURL:  outcome.ImageURL,
		Caption:   caption,
		ParseMode: "HTML",
		Buttons: [][]entities.Button{
			{{Label: "🔄 Get Prediction Again", CallbackData: repeat}},
		},
	}
}
