package telegram

import (
	"fmt"

	"predictor/domain/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client implements the Messenger interface on top of the Telegram Bot API
type Client struct {
	api *tgbotapi.BotAPI
}

// NewClient creates a Telegram client and verifies the bot credential with a
// getMe round trip.
func NewClient(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	return &Client{api: api}, nil
}

// Username returns the authenticated bot's username
func (c *Client) Username() string {
	return c.api.Self.UserName
}

// RegisterWebhook points Telegram's update delivery at the given URL. The
// secret token is echoed back by Telegram in a header on every delivery.
func (c *Client) RegisterWebhook(url, secret string) error {
	params := tgbotapi.Params{"url": url}
	params.AddNonEmpty("secret_token", secret)

	if _, err := c.api.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("failed to register webhook: %w", err)
	}
	return nil
}

// SendMessage delivers a text message
func (c *Client) SendMessage(msg entities.OutboundMessage) (entities.MessageRef, error) {
	config := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	config.ParseMode = msg.ParseMode
	if markup := buildKeyboard(msg.Buttons); markup != nil {
		config.ReplyMarkup = markup
	}

	sent, err := c.api.Send(config)
	if err != nil {
		return entities.MessageRef{}, fmt.Errorf("failed to send message to chat %d: %w", msg.ChatID, err)
	}

	return entities.MessageRef{ChatID: msg.ChatID, MessageID: sent.MessageID}, nil
}

// SendPhoto delivers a photo message by URL
func (c *Client) SendPhoto(photo entities.OutboundPhoto) (entities.MessageRef, error) {
	config := tgbotapi.NewPhoto(photo.ChatID, tgbotapi.FileURL(photo.PhotoURL))
	config.Caption = photo.Caption
	config.ParseMode = photo.ParseMode
	if markup := buildKeyboard(photo.Buttons); markup != nil {
		config.ReplyMarkup = markup
	}

	sent, err := c.api.Send(config)
	if err != nil {
		return entities.MessageRef{}, fmt.Errorf("failed to send photo to chat %d: %w", photo.ChatID, err)
	}

	return entities.MessageRef{ChatID: photo.ChatID, MessageID: sent.MessageID}, nil
}

// EditMessageText replaces the full text of a previously sent message
func (c *Client) EditMessageText(chatID int64, messageID int, text string) error {
	if _, err := c.api.Request(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		return fmt.Errorf("failed to edit message %d in chat %d: %w", messageID, chatID, err)
	}
	return nil
}

// DeleteMessage removes a previously sent message
func (c *Client) DeleteMessage(chatID int64, messageID int) error {
	if _, err := c.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("failed to delete message %d in chat %d: %w", messageID, chatID, err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query
func (c *Client) AnswerCallback(callbackID string, text string, showAlert bool) error {
	callback := tgbotapi.NewCallback(callbackID, text)
	callback.ShowAlert = showAlert

	if _, err := c.api.Request(callback); err != nil {
		return fmt.Errorf("failed to answer callback %s: %w", callbackID, err)
	}
	return nil
}

// GetChatMember queries a user's membership status in a channel
func (c *Client) GetChatMember(channel string, userID int64) (entities.MemberStatus, error) {
	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: channel,
			UserID:             userID,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get chat member %d of %s: %w", userID, channel, err)
	}

	return entities.MemberStatus(member.Status), nil
}

func buildKeyboard(buttons [][]entities.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, row := range buttons {
		keyboardRow := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			if button.URL != "" {
				keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonURL(button.Label, button.URL))
			} else {
				keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Label, button.CallbackData))
			}
		}
		rows = append(rows, keyboardRow)
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}
