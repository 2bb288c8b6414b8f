package mmcli

import (
	"context"
	"fmt"
	"sort"

	client "github.com/mattertools/mattermost-go-client"
	"github.com/spf13/cobra"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the teams visible to the user",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		teams, err := newAPIClient().GetTeams(context.Background())
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(teams)
		}

		sorted := make([]string, 0, len(teams))
		for id := range teams {
			sorted = append(sorted, string(id))
		}
		sort.Strings(sorted)

		tw := newTable()
		fmt.Fprintln(tw, "ID\tNAME\tDISPLAY NAME\tTYPE")
		for _, id := range sorted {
			team := teams[client.TeamID(id)]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", team.ID, team.Name, team.DisplayName, team.Type)
		}
		flushTable(tw)
		return nil
	},
}
