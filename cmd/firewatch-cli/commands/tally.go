package commands

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"firewatch-backend/lib/util/serviceutil"
)

func init() {
	rootCmd.AddCommand(tallyCmd)
}

var tallyCmd = &cobra.Command{
	Use:   "tally <member id>",
	Short: "Shows one member's contact info and firefighter-bill tally.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, database := setupService()
		defer database.Close()

		member, tally, err := service.GetMemberTally(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to get member tally", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"Name", member.Name})
		t.AppendRow(table.Row{"Party", member.Party.Icon()})
		t.AppendRow(table.Row{"District", member.District})
		t.AppendRow(table.Row{"Counties", strings.Join(member.Counties, ", ")})
		t.AppendRow(table.Row{"Phone", member.Phone})
		t.AppendRow(table.Row{"Assistant", member.Assistant})
		t.AppendRow(table.Row{"Email", member.Email})
		t.AppendRow(table.Row{"Support", tally.Support})
		t.AppendRow(table.Row{"Oppose", tally.Oppose})
		t.AppendRow(table.Row{"Not Counted", tally.NotCounted})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
