package commands

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"firewatch-backend/lib/util/serviceutil"
)

func init() {
	rootCmd.AddCommand(billCmd)
}

var billCmd = &cobra.Command{
	Use:   "bill <bill id>",
	Short: "Shows a bill's keywords and why it was (or wasn't) flagged.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, database := setupService()
		defer database.Close()

		bill, err := service.GetBillClassification(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to get bill", err)
		}

		related := "no"
		if bill.Classification.Related {
			related = "yes"
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"ID", bill.ID})
		t.AppendRow(table.Row{"Title", bill.Title})
		t.AppendRow(table.Row{"Keywords", strings.Join(bill.Keywords, "; ")})
		t.AppendRow(table.Row{"Related", related})
		t.AppendRow(table.Row{"Reason", bill.Classification.Reason})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
