package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type modelsOptions struct {
	URL   string
	Token string
}

func newModelsCmd() *cobra.Command {
	opts := &modelsOptions{}
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List available backend models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.URL, "url", "", "override base url")
	cmd.Flags().StringVar(&opts.Token, "token", "", "override access token")

	return cmd
}

func runModels(cmd *cobra.Command, opts *modelsOptions) error {
	client, err := newClient("", opts.URL, opts.Token)
	if err != nil {
		return err
	}

	list, err := client.Models(cmd.Context())
	if err != nil {
		return err
	}
	for _, model := range list.Models {
		if model.Title != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", model.Slug, model.Title)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), model.Slug)
	}
	return nil
}
