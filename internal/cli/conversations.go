package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type conversationsOptions struct {
	Offset int
	Limit  int
	URL    string
	Token  string
}

func newConversationsCmd() *cobra.Command {
	opts := &conversationsOptions{}
	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "List stored conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversations(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "pagination offset")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "pagination limit")
	cmd.Flags().StringVar(&opts.URL, "url", "", "override base url")
	cmd.Flags().StringVar(&opts.Token, "token", "", "override access token")

	return cmd
}

func runConversations(cmd *cobra.Command, opts *conversationsOptions) error {
	client, err := newClient("", opts.URL, opts.Token)
	if err != nil {
		return err
	}

	list, err := client.Conversations(cmd.Context(), opts.Offset, opts.Limit)
	if err != nil {
		return err
	}
	for _, item := range list.Items {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.ID, item.Title)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", list.Total)
	return nil
}
