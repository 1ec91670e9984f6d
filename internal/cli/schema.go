package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewCmdSchema(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the database title and property types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()

			schema, err := svc.Schema(ctx)
			if err != nil {
				return fmt.Errorf("failed to load schema: %w", err)
			}
			return printJSON(opts.Out, schema)
		},
	}
}
