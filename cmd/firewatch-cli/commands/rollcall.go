package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"firewatch-backend/lib/util/serviceutil"
	"firewatch-backend/services/legislature"
)

func init() {
	rootCmd.AddCommand(rollcallCmd)
}

func cellSymbol(cell legislature.RollCallCell) string {
	switch cell {
	case legislature.CellAye:
		return "Y"
	case legislature.CellNo:
		return "N"
	default:
		return "-"
	}
}

var rollcallCmd = &cobra.Command{
	Use:   "rollcall",
	Short: "Prints the member-by-bill roll call over firefighter-related bills.",
	Run: func(cmd *cobra.Command, args []string) {
		service, database := setupService()
		defer database.Close()

		snapshot, err := service.GetSnapshot(cmd.Context(), false)
		if snapshot == nil {
			serviceutil.Fatal("failed to get snapshot", err)
		}
		matrix := snapshot.RollCall

		names := make(map[string]string, len(snapshot.Members))
		for _, member := range snapshot.Members {
			names[member.ID] = member.Name
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		header := table.Row{"Member"}
		for _, billID := range matrix.BillIDs {
			header = append(header, billID)
		}
		t.AppendHeader(header)

		for _, memberID := range matrix.MemberIDs {
			row := table.Row{names[memberID]}
			for _, billID := range matrix.BillIDs {
				row = append(row, cellSymbol(matrix.Cell(billID, memberID)))
			}
			t.AppendRow(row)
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
