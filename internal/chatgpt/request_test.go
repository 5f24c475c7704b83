package chatgpt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversationRequest(t *testing.T) {
	req := NewConversationRequest("hello", "gpt-test")

	assert.Equal(t, "next", req.Action)
	assert.Equal(t, "gpt-test", req.Model)
	assert.Nil(t, req.ConversationID)
	assert.NotEmpty(t, req.ParentMessageID)

	require.Len(t, req.Messages, 1)
	msg := req.Messages[0]
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "user", msg.Role)
	assert.Equal(t, "text", msg.Content.ContentType)
	assert.Equal(t, []string{"hello"}, msg.Content.Parts)
}

func TestNewConversationRequestDefaultsModel(t *testing.T) {
	req := NewConversationRequest("", "")
	assert.Equal(t, DefaultModel, req.Model)
	assert.Equal(t, []string{""}, req.Messages[0].Content.Parts)
}

func TestNewConversationRequestFreshIDs(t *testing.T) {
	first := NewConversationRequest("hello", "")
	second := NewConversationRequest("hello", "")

	assert.NotEqual(t, first.ParentMessageID, second.ParentMessageID)
	assert.NotEqual(t, first.Messages[0].ID, second.Messages[0].ID)
}

func TestConversationRequestJSON(t *testing.T) {
	req := NewConversationRequest("hello", "gpt-test")

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Contains(t, fields, "action")
	assert.Contains(t, fields, "messages")
	assert.Contains(t, fields, "parent_message_id")
	assert.Contains(t, fields, "model")
	// null conversation id is omitted entirely
	assert.NotContains(t, fields, "conversation_id")

	messages := fields["messages"].([]any)
	require.Len(t, messages, 1)
	content := messages[0].(map[string]any)["content"].(map[string]any)
	assert.Equal(t, "text", content["content_type"])
	assert.Equal(t, []any{"hello"}, content["parts"])
}
