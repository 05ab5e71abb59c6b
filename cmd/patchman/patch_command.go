package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"patchman/internal/history"
	"patchman/internal/patch"
)

func newPatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "patch",
		Short: "Repair mis-encoded emoji sequences in the target file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			runID := uuid.NewString()
			started := time.Now()
			rules := patch.DefaultRules()

			result, err := patch.File(cfg.Patch.Target, rules, cfg.Patch.Lock)
			if err != nil {
				return err
			}
			finished := time.Now()

			logger.Debug("patch run complete",
				slog.String("run_id", runID),
				slog.String("target", result.Target),
				slog.Int("replacements", result.Replacements),
				slog.Bool("changed", result.Changed),
				slog.Duration("elapsed", finished.Sub(started)),
			)

			if cfg.History.Enabled {
				if err := recordRun(cmd, cfg.History.Path, runID, result, started, finished); err != nil {
					logger.Warn("record patch run", slog.String("error", err.Error()))
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Patched %s: %d replacements\n", result.Target, result.Replacements)
			return nil
		},
	}
}

func recordRun(cmd *cobra.Command, path, runID string, result *patch.Result, started, finished time.Time) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	hits := make(map[string]int, len(result.Hits))
	for _, hit := range result.Hits {
		hits[hit.Rule.Note] = hit.Count
	}
	return store.Record(cmd.Context(), history.Run{
		ID:           runID,
		Target:       result.Target,
		Replacements: result.Replacements,
		Hits:         hits,
		StartedAt:    started,
		FinishedAt:   finished,
	})
}
