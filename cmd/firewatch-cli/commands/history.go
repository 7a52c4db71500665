package commands

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"firewatch-backend/lib/util/serviceutil"
)

var historyLimit *int64

func init() {
	historyLimit = historyCmd.Flags().Int64("limit", 20, "How many builds to show.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [--limit <n>]",
	Short: "Shows recorded build history, newest first.",
	Run: func(cmd *cobra.Command, args []string) {
		service, database := setupService()
		defer database.Close()

		builds, err := service.BuildHistory(cmd.Context(), *historyLimit)
		if err != nil {
			serviceutil.Fatal("failed to read build history", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Finished", "Took", "Members", "Bills", "Related", "Votes", "Anomalies"})
		for _, build := range builds {
			finished := time.Unix(build.FinishedAt, 0)
			took := time.Unix(build.FinishedAt, 0).Sub(time.Unix(build.StartedAt, 0))
			t.AppendRow(table.Row{
				build.ID,
				finished.Format(time.RFC822),
				took.String(),
				build.Members,
				build.Bills,
				build.RelatedBills,
				build.Votes,
				build.Anomalies,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
