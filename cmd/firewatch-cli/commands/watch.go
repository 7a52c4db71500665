package commands

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"firewatch-backend/services/legislature"
)

var watchInterval *time.Duration

func init() {
	watchInterval = watchCmd.Flags().Duration("interval", time.Minute*30, "How often to check whether the snapshot needs rebuilding.")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [--interval <duration>]",
	Short: "Keeps the snapshot warm, rebuilding whenever the TTL lapses, until interrupted.",
	Run: func(cmd *cobra.Command, args []string) {
		service, database := setupService()
		defer database.Close()

		refresh := func() {
			snapshot, err := service.GetSnapshot(cmd.Context(), false)
			var staleErr *legislature.StaleSnapshotError
			if errors.As(err, &staleErr) {
				slog.Warn("rebuild failed, keeping stale snapshot", "err", staleErr.Err, "builtAt", snapshot.BuiltAt)
				return
			}
			if err != nil {
				slog.Error("failed to build snapshot", "err", err)
				return
			}
			slog.Info("snapshot up to date",
				"state", service.CacheState(),
				"builtAt", snapshot.BuiltAt,
				"anomalies", len(snapshot.Report.Anomalies))
		}

		refresh()
		ticker := time.NewTicker(*watchInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				refresh()
			case <-cmd.Context().Done():
				slog.Info("shutting down")
				return
			}
		}
	},
}
