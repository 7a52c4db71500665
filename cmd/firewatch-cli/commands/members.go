package commands

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"firewatch-backend/lib/util/serviceutil"
)

func init() {
	rootCmd.AddCommand(membersCmd)
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Lists chamber members with their firefighter-bill tallies.",
	Run: func(cmd *cobra.Command, args []string) {
		service, database := setupService()
		defer database.Close()

		snapshot, err := service.GetSnapshot(cmd.Context(), false)
		if snapshot == nil {
			serviceutil.Fatal("failed to get snapshot", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Name", "Party", "District", "Counties", "Phone", "Email", "Support", "Oppose", "Not Counted"})
		for _, member := range snapshot.Members {
			tally := snapshot.Tallies[member.ID]
			t.AppendRow(table.Row{
				member.ID,
				member.Name,
				member.Party.Icon(),
				member.District,
				strings.Join(member.Counties, ", "),
				member.Phone,
				member.Email,
				tally.Support,
				tally.Oppose,
				tally.NotCounted,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
