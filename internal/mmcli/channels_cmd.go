package mmcli

import (
	"context"
	"fmt"

	client "github.com/mattertools/mattermost-go-client"
	"github.com/spf13/cobra"
)

var (
	channelsTeamFlag   string
	channelTeamFlag    string
	channelIDFlag      string
	markViewedTeamFlag string
	markViewedChanFlag string
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List a team's channels",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		channels, err := newAPIClient().GetChannels(context.Background(), client.TeamID(channelsTeamFlag))
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(channels)
		}

		tw := newTable()
		fmt.Fprintln(tw, "ID\tNAME\tDISPLAY NAME\tTYPE\tLAST POST")
		for _, ch := range channels.Channels {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				ch.ID, ch.Name, ch.DisplayName, ch.Type, formatMillis(ch.LastPostAt))
		}
		flushTable(tw)
		return nil
	},
}

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Show one channel and the caller's membership",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		data, err := newAPIClient().GetChannel(context.Background(),
			client.TeamID(channelTeamFlag), client.ChannelID(channelIDFlag))
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(data)
		}

		ch := data.Channel
		fmt.Printf("Channel:   %s (%s)\n", ch.DisplayName, ch.ID)
		fmt.Printf("Name:      %s\n", ch.Name)
		fmt.Printf("Type:      %s\n", ch.Type)
		fmt.Printf("Purpose:   %s\n", ch.Purpose)
		fmt.Printf("Messages:  %d\n", ch.TotalMsgCount)
		fmt.Printf("Last post: %s\n", formatMillis(ch.LastPostAt))
		if data.Member != nil {
			fmt.Printf("Viewed:    %s (%d mentions)\n",
				formatMillis(data.Member.LastViewedAt), data.Member.MentionCount)
		}
		return nil
	},
}

var markViewedCmd = &cobra.Command{
	Use:   "mark-viewed",
	Short: "Mark a channel read up to now",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		err := newAPIClient().UpdateLastViewedAt(context.Background(),
			client.TeamID(markViewedTeamFlag), client.ChannelID(markViewedChanFlag))
		if err != nil {
			return err
		}

		fmt.Println("Channel marked as viewed.")
		return nil
	},
}

func init() {
	channelsCmd.Flags().StringVar(&channelsTeamFlag, "team", "", "Team id")
	_ = channelsCmd.MarkFlagRequired("team")

	channelCmd.Flags().StringVar(&channelTeamFlag, "team", "", "Team id")
	channelCmd.Flags().StringVar(&channelIDFlag, "channel", "", "Channel id")
	_ = channelCmd.MarkFlagRequired("team")
	_ = channelCmd.MarkFlagRequired("channel")

	markViewedCmd.Flags().StringVar(&markViewedTeamFlag, "team", "", "Team id")
	markViewedCmd.Flags().StringVar(&markViewedChanFlag, "channel", "", "Channel id")
	_ = markViewedCmd.MarkFlagRequired("team")
	_ = markViewedCmd.MarkFlagRequired("channel")
}
