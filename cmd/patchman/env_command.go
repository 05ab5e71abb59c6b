package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patchman/internal/launch"
)

func newEnvCommand(ctx *commandContext) *cobra.Command {
	var production bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the effective process environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			env, err := launch.EffectiveEnv(cfg, production)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !stdoutIsTerminal() {
				for _, key := range launch.SortedKeys(env) {
					fmt.Fprintf(out, "%s=%s\n", key, env[key])
				}
				return nil
			}

			rows := make([][]string, 0, len(env))
			for _, key := range launch.SortedKeys(env) {
				rows = append(rows, []string{key, env[key]})
			}
			fmt.Fprintln(out, renderTable([]string{"Variable", "Value"}, rows))
			fmt.Fprintf(out, "Command: %s\n", strings.Join(launch.Command(cfg), " "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&production, "production", false, "Select the production profile")
	return cmd
}
