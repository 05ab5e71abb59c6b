package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"patchman/internal/patch"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "rules",
		Short:       "List the active replacement rules",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := patch.DefaultRules()

			rows := make([][]string, 0, len(rules))
			for _, rule := range rules {
				rows = append(rows, []string{
					rule.Note,
					strconv.Quote(rule.Pattern),
					strconv.Quote(rule.Replacement),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Character", "Pattern", "Replacement"}, rows))
			return nil
		},
	}
}
