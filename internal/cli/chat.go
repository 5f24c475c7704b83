package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"chatgpt-cli/internal/chatgpt"
	"chatgpt-cli/internal/config"

	"github.com/spf13/cobra"
)

type chatOptions struct {
	Prompt   string
	Stream   bool
	NoStream bool
	Model    string
	URL      string
	Token    string
}

func newChatCmd() *cobra.Command {
	opts := &chatOptions{}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start a new conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Prompt, "prompt", "", "prompt content (read stdin if empty)")
	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "stream response")
	cmd.Flags().BoolVar(&opts.NoStream, "no-stream", false, "disable streaming response")
	cmd.Flags().StringVar(&opts.Model, "model", "", "override model name")
	cmd.Flags().StringVar(&opts.URL, "url", "", "override base url")
	cmd.Flags().StringVar(&opts.Token, "token", "", "override access token")

	return cmd
}

func runChat(cmd *cobra.Command, opts *chatOptions) error {
	if opts.Stream && opts.NoStream {
		return errors.New("only one of --stream or --no-stream can be set")
	}

	prompt := strings.TrimSpace(opts.Prompt)
	if prompt == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read prompt: %w", err)
		}
		prompt = strings.TrimSpace(string(data))
	}
	if prompt == "" {
		return errors.New("prompt is required")
	}

	client, err := newClient(opts.Model, opts.URL, opts.Token)
	if err != nil {
		return err
	}

	if opts.Stream {
		return streamChat(cmd, client, prompt)
	}

	events, err := client.Conversation(cmd.Context(), prompt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), finalText(events))
	return err
}

func streamChat(cmd *cobra.Command, client *chatgpt.Client, prompt string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	events, err := client.StreamConversation(ctx, prompt)
	if err != nil {
		return err
	}

	// Each event carries the full text so far; print only the new suffix.
	printed := ""
	for event := range events {
		if event.Err != nil {
			return event.Err
		}
		text := event.Response.Text()
		if delta, ok := strings.CutPrefix(text, printed); ok && delta != "" {
			if _, err := fmt.Fprint(cmd.OutOrStdout(), delta); err != nil {
				return err
			}
			printed = text
		}
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout())
	return err
}

func finalText(events []chatgpt.ConversationResponse) string {
	for i := len(events) - 1; i >= 0; i-- {
		if text := events[i].Text(); text != "" {
			return text
		}
	}
	return ""
}

func newClient(model, url, token string) (*chatgpt.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return chatgpt.NewClient(chatgpt.Config{
		BaseURL: firstNonEmpty(url, cfg.Chat.URL),
		Token:   firstNonEmpty(token, cfg.Chat.Token),
		Model:   firstNonEmpty(model, cfg.Chat.Model),
		Timeout: cfg.Chat.Timeout,
	})
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
