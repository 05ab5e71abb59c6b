package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"patchman/internal/launch"
)

func newDescriptorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "descriptor",
		Short: "Print the launch descriptor as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(launch.BuildDescriptor(cfg), "", "  ")
			if err != nil {
				return fmt.Errorf("encode descriptor: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
