package chatgpt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the conversation backend used when none is configured.
const DefaultBaseURL = "https://chatgpt.duti.tech"

type Config struct {
	BaseURL    string
	Token      string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the ChatGPT conversation backend. The access token is sent
// as a bearer header on every call.
type Client struct {
	baseURL    string
	token      string
	model      string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("access token is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		model:      model,
		httpClient: client,
	}, nil
}

// StreamEvent is one item of a streaming conversation: a decoded response or
// the terminal error. The channel closes after the terminal item, so a
// stream that ends without an Err event completed cleanly.
type StreamEvent struct {
	Response ConversationResponse
	Err      error
}

// StreamConversation starts a new conversation with text and returns a
// channel of decoded events. The HTTP call runs in its own goroutine, so the
// caller gets the channel back immediately. Cancelling ctx abandons the
// stream and releases the connection.
func (c *Client) StreamConversation(ctx context.Context, text string) (<-chan StreamEvent, error) {
	req, err := c.newConversationRequest(ctx, text)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	ch := make(chan StreamEvent)
	go func() {
		defer close(ch)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			emit(ctx, ch, StreamEvent{Err: &TransportError{Err: err}})
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			emit(ctx, ch, StreamEvent{Err: statusError(resp)})
			return
		}
		decoder := NewDecoder(resp.Body)
		for {
			event, err := decoder.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				emit(ctx, ch, StreamEvent{Err: err})
				return
			}
			if !emit(ctx, ch, StreamEvent{Response: event}) {
				return
			}
		}
	}()
	return ch, nil
}

// Conversation starts a new conversation with text, reads the whole response
// body, and returns the decoded events in order. A mid-body failure fails
// the whole call; no partial list is returned.
func (c *Client) Conversation(ctx context.Context, text string) ([]ConversationResponse, error) {
	req, err := c.newConversationRequest(ctx, text)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return NewDecoder(bytes.NewReader(body)).All()
}

// Models lists the backend model variants available to this account.
func (c *Client) Models(ctx context.Context) (ModelList, error) {
	var list ModelList
	if err := c.get(ctx, "/backend-api/models", nil, &list); err != nil {
		return ModelList{}, err
	}
	return list, nil
}

// Conversations lists stored conversations. Offset and limit are forwarded
// as-is; the backend reports out-of-range values.
func (c *Client) Conversations(ctx context.Context, offset, limit int) (ConversationList, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var list ConversationList
	if err := c.get(ctx, "/backend-api/conversations", query, &list); err != nil {
		return ConversationList{}, err
	}
	return list, nil
}

func (c *Client) newConversationRequest(ctx context.Context, text string) (*http.Request, error) {
	body, err := json.Marshal(NewConversationRequest(text, c.model))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/backend-api/conversation", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	return req, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// emit sends event unless the caller has gone away.
func emit(ctx context.Context, ch chan<- StreamEvent, event StreamEvent) bool {
	select {
	case ch <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

func statusError(resp *http.Response) *TransportError {
	return &TransportError{Status: resp.StatusCode, Err: errors.New(resp.Status)}
}
