package interfaces

import "predictor/domain/entities"

// Messenger is the outbound surface of the messaging provider. All calls are
// best-effort: a returned error means the provider rejected or failed the
// call, never that the process should stop.
type Messenger interface {
	// SendMessage delivers a text message and returns a handle to it
	SendMessage(msg entities.OutboundMessage) (entities.MessageRef, error)

	// SendPhoto delivers a photo message and returns a handle to it
	SendPhoto(photo entities.OutboundPhoto) (entities.MessageRef, error)

	// EditMessageText replaces the full text of a previously sent message
	EditMessageText(chatID int64, messageID int, text string) error

	// DeleteMessage removes a previously sent message
	DeleteMessage(chatID int64, messageID int) error

	// AnswerCallback acknowledges a callback query, optionally with a
	// transient notice shown to the user.
	AnswerCallback(callbackID string, text string, showAlert bool) error

	// GetChatMember queries a user's membership status in a channel.
	// The channel is given as a public @name.
	GetChatMember(channel string, userID int64) (entities.MemberStatus, error)
}
