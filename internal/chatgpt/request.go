package chatgpt

import "github.com/google/uuid"

const (
	actionNext      = "next"
	roleUser        = "user"
	contentTypeText = "text"

	// DefaultModel is the backend model variant used when none is configured.
	DefaultModel = "text-davinci-002-render-sha"
)

type Content struct {
	ContentType string   `json:"content_type"`
	Parts       []string `json:"parts"`
}

type Message struct {
	ID      string  `json:"id"`
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

// ConversationRequest is one outbound conversation turn. The conversation id
// is a pointer so that a new conversation serializes without the field.
type ConversationRequest struct {
	Action          string    `json:"action"`
	Messages        []Message `json:"messages"`
	ConversationID  *string   `json:"conversation_id,omitempty"`
	ParentMessageID string    `json:"parent_message_id"`
	Model           string    `json:"model"`
}

// NewConversationRequest wraps text into a request that starts a new
// conversation. Every call generates fresh message and parent message ids.
func NewConversationRequest(text, model string) ConversationRequest {
	if model == "" {
		model = DefaultModel
	}
	return ConversationRequest{
		Action: actionNext,
		Messages: []Message{
			{
				ID:   uuid.NewString(),
				Role: roleUser,
				Content: Content{
					ContentType: contentTypeText,
					Parts:       []string{text},
				},
			},
		},
		ParentMessageID: uuid.NewString(),
		Model:           model,
	}
}
