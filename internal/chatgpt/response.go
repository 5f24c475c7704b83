package chatgpt

// ConversationResponse is one decoded stream event. The backend does not
// document a stable shape for these payloads, so they are kept as parsed
// JSON and passed through to the caller.
type ConversationResponse map[string]any

// Text returns the assistant text carried by this event, or "" when the
// event has no message content.
func (r ConversationResponse) Text() string {
	message, ok := r["message"].(map[string]any)
	if !ok {
		return ""
	}
	content, ok := message["content"].(map[string]any)
	if !ok {
		return ""
	}
	parts, ok := content["parts"].([]any)
	if !ok || len(parts) == 0 {
		return ""
	}
	text, _ := parts[0].(string)
	return text
}

// ConversationID returns the conversation id carried by this event, or "".
func (r ConversationResponse) ConversationID() string {
	id, _ := r["conversation_id"].(string)
	return id
}

type Model struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type ModelList struct {
	Models []Model `json:"models"`
}

type ConversationSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	CreateTime string `json:"create_time"`
}

type ConversationList struct {
	Items  []ConversationSummary `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}
