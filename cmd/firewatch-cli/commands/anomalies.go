package commands

import (
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"firewatch-backend/lib/util/serviceutil"
)

func init() {
	rootCmd.AddCommand(anomaliesCmd)
}

var anomaliesCmd = &cobra.Command{
	Use:   "anomalies <build id>",
	Short: "Shows the anomalies recorded for one build.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		buildID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			serviceutil.Fatal("invalid build id", err)
		}

		service, database := setupService()
		defer database.Close()

		anomalies, err := service.BuildAnomalies(cmd.Context(), buildID)
		if err != nil {
			serviceutil.Fatal("failed to read anomalies", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Kind", "Ref", "Detail"})
		for _, anomaly := range anomalies {
			t.AppendRow(table.Row{anomaly.Kind, anomaly.Ref, anomaly.Detail})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
