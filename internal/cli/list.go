package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewCmdList(opts *Options) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roadmap items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()

			if raw {
				result, err := svc.Load(ctx, "")
				if err != nil {
					return fmt.Errorf("failed to load roadmap: %w", err)
				}
				return printJSON(opts.Out, result.Pages)
			}

			items, err := svc.Items(ctx, "")
			if err != nil {
				return fmt.Errorf("failed to load roadmap: %w", err)
			}
			return printJSON(opts.Out, items)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print upstream pages instead of normalized items")
	return cmd
}
