package commands

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"firewatch-backend/lib/util/serviceutil"
	"firewatch-backend/services/legislature"
)

var snapshotForce *bool

func init() {
	snapshotForce = snapshotCmd.Flags().Bool("force", false, "Rebuild even if the cached snapshot is fresh.")
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [--force]",
	Short: "Builds (or serves) the current snapshot and summarizes it.",
	Run: func(cmd *cobra.Command, args []string) {
		service, database := setupService()
		defer database.Close()

		t1 := time.Now()
		snapshot, err := service.GetSnapshot(cmd.Context(), *snapshotForce)
		var staleErr *legislature.StaleSnapshotError
		if errors.As(err, &staleErr) {
			slog.Warn("rebuild failed, showing stale snapshot", "err", staleErr.Err)
		} else if err != nil {
			serviceutil.Fatal("failed to build snapshot", err)
		}
		slog.Info("snapshot ready", "seconds", time.Since(t1).Seconds(), "state", service.CacheState())

		related := 0
		for _, bill := range snapshot.Bills {
			if bill.Classification.Related {
				related++
			}
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Built At", "Members", "Bills", "Related", "Votes", "Anomalies"})
		t.AppendRow(table.Row{
			snapshot.BuiltAt.Format(time.RFC822),
			len(snapshot.Members),
			len(snapshot.Bills),
			related,
			len(snapshot.Votes),
			len(snapshot.Report.Anomalies),
		})
		t.SetStyle(table.StyleRounded)
		t.Render()

		if len(snapshot.Report.Anomalies) > 0 {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Kind", "Ref", "Detail"})
			for _, anomaly := range snapshot.Report.Anomalies {
				t.AppendRow(table.Row{anomaly.Kind, anomaly.Ref, anomaly.Detail})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
		}
	},
}
