package entities

// Button is one inline keyboard button. Exactly one of URL or CallbackData
// should be set.
type Button struct {
	Label        string
	URL          string
	CallbackData string
}

// OutboundMessage is a text message to be delivered to a chat
type OutboundMessage struct {
	ChatID    int64
	Text      string
	ParseMode string
	Buttons   [][]Button
}

// OutboundPhoto is a photo message with an optional caption and keyboard
type OutboundPhoto struct {
	ChatID    int64
	PhotoURL  string
	Caption   string
	ParseMode string
	Buttons   [][]Button
}

// MessageRef identifies a delivered message so it can later be edited or
// deleted.
type MessageRef struct {
	ChatID    int64
	MessageID int
}
