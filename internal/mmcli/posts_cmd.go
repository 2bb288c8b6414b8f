package mmcli

import (
	"context"
	"fmt"

	client "github.com/mattertools/mattermost-go-client"
	"github.com/spf13/cobra"
)

var (
	postsTeamFlag   string
	postsChanFlag   string
	postsOffsetFlag int
	postsLimitFlag  int
	postTeamFlag    string
	postChanFlag    string
	postMessageFlag string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List a page of a channel's posts, newest first",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		page, err := newAPIClient().GetPosts(context.Background(),
			client.TeamID(postsTeamFlag), client.ChannelID(postsChanFlag),
			postsOffsetFlag, postsLimitFlag)
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(page)
		}

		tw := newTable()
		fmt.Fprintln(tw, "ID\tUSER\tCREATED\tMESSAGE")
		for _, id := range page.Order {
			post, ok := page.Posts[id]
			if !ok {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				post.ID, post.UserID, formatMillis(post.CreateAt), truncate(post.Message, 60))
		}
		flushTable(tw)
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a message to a channel",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		created, err := newAPIClient().CreatePost(context.Background(),
			client.TeamID(postTeamFlag), client.ChannelID(postChanFlag),
			client.PendingPost{Message: postMessageFlag})
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(created)
		}

		fmt.Printf("Posted %s at %s\n", created.ID, formatMillis(created.CreateAt))
		return nil
	},
}

func init() {
	postsCmd.Flags().StringVar(&postsTeamFlag, "team", "", "Team id")
	postsCmd.Flags().StringVar(&postsChanFlag, "channel", "", "Channel id")
	postsCmd.Flags().IntVar(&postsOffsetFlag, "offset", 0, "Number of posts to skip")
	postsCmd.Flags().IntVar(&postsLimitFlag, "limit", 20, "Maximum posts to return")
	_ = postsCmd.MarkFlagRequired("team")
	_ = postsCmd.MarkFlagRequired("channel")

	postCmd.Flags().StringVar(&postTeamFlag, "team", "", "Team id")
	postCmd.Flags().StringVar(&postChanFlag, "channel", "", "Channel id")
	postCmd.Flags().StringVar(&postMessageFlag, "message", "", "Message text")
	_ = postCmd.MarkFlagRequired("team")
	_ = postCmd.MarkFlagRequired("channel")
	_ = postCmd.MarkFlagRequired("message")
}
