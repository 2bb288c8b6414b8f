package mmcli

import (
	"context"
	"fmt"

	client "github.com/mattertools/mattermost-go-client"
	"github.com/spf13/cobra"
)

var (
	loginIDFlag  string
	passwordFlag string
	mfaTokenFlag string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and print a session token",
	RunE: func(_ *cobra.Command, _ []string) error {
		loginID := loginIDFlag
		if loginID == "" {
			loginID = appConfig.LoginID
		}
		password := passwordFlag
		if password == "" {
			password = appConfig.Password
		}
		if loginID == "" || password == "" {
			return fmt.Errorf("login requires --login-id and --password (or MMCLI_LOGIN_ID / MMCLI_PASSWORD)")
		}

		c := newAPIClient()

		token, user, err := c.Login(context.Background(), client.LoginRequest{
			LoginID:  loginID,
			Password: password,
			MFAToken: mfaTokenFlag,
		})
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(map[string]any{"token": token, "user": user})
		}

		fmt.Printf("Logged in as %s (%s)\n", user.Username, user.ID)
		fmt.Printf("export MMCLI_TOKEN=%s\n", token)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginIDFlag, "login-id", "", "Username or email address")
	loginCmd.Flags().StringVar(&passwordFlag, "password", "", "Account password")
	loginCmd.Flags().StringVar(&mfaTokenFlag, "mfa-token", "", "Multi-factor authentication code")
}
