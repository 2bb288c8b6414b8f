package mmcli

import (
	"context"
	"fmt"
	"sort"

	client "github.com/mattertools/mattermost-go-client"
	"github.com/spf13/cobra"
)

var (
	membersTeamFlag  string
	profilesTeamFlag string
	profilesDMFlag   bool
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated user",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		user, err := newAPIClient().GetMe(context.Background())
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(user)
		}

		printUser(user)
		return nil
	},
}

var userCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show a user by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		user, err := newAPIClient().GetUser(context.Background(), client.UserID(args[0]))
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(user)
		}

		printUser(user)
		return nil
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List a team's membership records",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		members, err := newAPIClient().GetTeamMembers(context.Background(), client.TeamID(membersTeamFlag))
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(members)
		}

		tw := newTable()
		fmt.Fprintln(tw, "USER\tROLES")
		for _, member := range members {
			fmt.Fprintf(tw, "%s\t%s\n", member.UserID, member.Roles)
		}
		flushTable(tw)
		return nil
	},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List user profiles for a team (or its DM list with --dm)",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		c := newAPIClient()
		ctx := context.Background()
		team := client.TeamID(profilesTeamFlag)

		var profiles map[client.UserID]client.UserProfile
		var err error
		if profilesDMFlag {
			profiles, err = c.GetProfilesForDMList(ctx, team)
		} else {
			profiles, err = c.GetProfiles(ctx, team)
		}
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(profiles)
		}

		sorted := make([]string, 0, len(profiles))
		for id := range profiles {
			sorted = append(sorted, string(id))
		}
		sort.Strings(sorted)

		tw := newTable()
		fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tNICKNAME")
		for _, id := range sorted {
			profile := profiles[client.UserID(id)]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", profile.ID, profile.Username, profile.Email, profile.Nickname)
		}
		flushTable(tw)
		return nil
	},
}

func printUser(user *client.User) {
	fmt.Printf("User:     %s (%s)\n", user.Username, user.ID)
	fmt.Printf("Email:    %s\n", user.Email)
	fmt.Printf("Nickname: %s\n", user.Nickname)
	fmt.Printf("Name:     %s %s\n", user.FirstName, user.LastName)
	fmt.Printf("Roles:    %s\n", user.Roles)
}

func init() {
	membersCmd.Flags().StringVar(&membersTeamFlag, "team", "", "Team id")
	_ = membersCmd.MarkFlagRequired("team")

	profilesCmd.Flags().StringVar(&profilesTeamFlag, "team", "", "Team id")
	profilesCmd.Flags().BoolVar(&profilesDMFlag, "dm", false, "List profiles for the DM list instead")
	_ = profilesCmd.MarkFlagRequired("team")
}
