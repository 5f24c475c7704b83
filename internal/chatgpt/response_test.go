package chatgpt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationResponseText(t *testing.T) {
	raw := `{"message":{"content":{"content_type":"text","parts":["Hello there"]}},"conversation_id":"c-1"}`
	var event ConversationResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &event))

	assert.Equal(t, "Hello there", event.Text())
	assert.Equal(t, "c-1", event.ConversationID())
}

func TestConversationResponseTextMissing(t *testing.T) {
	assert.Empty(t, ConversationResponse{}.Text())
	assert.Empty(t, ConversationResponse{"message": "nope"}.Text())
	assert.Empty(t, ConversationResponse{}.ConversationID())
}
