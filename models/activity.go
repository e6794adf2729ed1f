package models

const ActivityTypeMessage = "message"

type ChannelAccount struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name,omitempty"`
}

type ConversationAccount struct {
	ID string `json:"id" validate:"required"`
}

// ChatEvent is the subset of an inbound Bot Framework activity the bot reads.
// Validation only applies to message activities.
type ChatEvent struct {
	Type         string              `json:"type"`
	ID           string              `json:"id" validate:"required"`
	Text         string              `json:"text"`
	ServiceURL   string              `json:"serviceUrl" validate:"required,url"`
	Conversation ConversationAccount `json:"conversation"`
	Recipient    ChannelAccount      `json:"recipient"`
	From         ChannelAccount      `json:"from"`
}

func (e ChatEvent) IsMessage() bool {
	return e.Type == ActivityTypeMessage
}

// ReplyActivity is posted back to the connector service.
type ReplyActivity struct {
	Type         string              `json:"type"`
	From         ChannelAccount      `json:"from"`
	Recipient    ChannelAccount      `json:"recipient"`
	Conversation ConversationAccount `json:"conversation"`
	Text         string              `json:"text"`
	ReplyToID    string              `json:"replyToId"`
}

// NewReply addresses text back to the sender of e.
func NewReply(e ChatEvent, text string) ReplyActivity {
	return ReplyActivity{
		Type:         ActivityTypeMessage,
		From:         ChannelAccount{ID: e.Recipient.ID},
		Recipient:    ChannelAccount{ID: e.From.ID},
		Conversation: ConversationAccount{ID: e.Conversation.ID},
		Text:         text,
		ReplyToID:    e.ID,
	}
}
