package mmcli

import (
	"fmt"
	"os"

	client "github.com/mattertools/mattermost-go-client"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	overrideServer string
	overridePort   int
	overrideToken  string
	noTLS          bool
	insecure       bool
	verbose        bool
	outputFormat   string

	appConfig *Config
)

// Execute runs the CLI.
func Execute() error {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	err := rootCmd.Execute()
	if err != nil {
		printErrorLine("Error: %v", err)
	}
	return err
}

var rootCmd = &cobra.Command{
	Use:   "mmcli",
	Short: "Interact with a Mattermost v3 chat server",
	Long: `mmcli is a command-line companion for the mattermost-go-client library.
Point it at a server with --server (or MMCLI_SERVER), authenticate with
'mmcli login', export the printed token as MMCLI_TOKEN, then browse
teams, channels, and posts.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if appConfig == nil {
			var err error
			appConfig, err = LoadConfig()
			if err != nil {
				return err
			}
		}
		applyOverrides(cmd, appConfig)

		if appConfig.Server == "" {
			return fmt.Errorf("no server configured (use --server or MMCLI_SERVER)")
		}
		return nil
	},
}

func applyOverrides(cmd *cobra.Command, cfg *Config) {
	if overrideServer != "" {
		cfg.Server = overrideServer
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = overridePort
	}
	if overrideToken != "" {
		cfg.Token = overrideToken
	}
	if noTLS {
		cfg.UseTLS = false
	}
	if insecure {
		cfg.InsecureSkipVerify = true
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&overrideServer, "server", "", "Server hostname (overrides MMCLI_SERVER)")
	rootCmd.PersistentFlags().IntVar(&overridePort, "port", 443, "Server port (overrides MMCLI_PORT)")
	rootCmd.PersistentFlags().StringVar(&overrideToken, "token", "", "Session token (overrides MMCLI_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&noTLS, "no-tls", false, "Use plain HTTP instead of TLS")
	rootCmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every API request and response to stderr")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table|json")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(channelsCmd)
	rootCmd.AddCommand(channelCmd)
	rootCmd.AddCommand(markViewedCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(profilesCmd)
}

// newAPIClient builds a library client from the resolved configuration.
func newAPIClient() *client.Client {
	opts := []client.Option{
		client.WithPort(appConfig.Port),
		client.WithTLS(appConfig.UseTLS),
		client.WithUserAgent("mmcli/" + client.Version),
	}
	if appConfig.InsecureSkipVerify {
		opts = append(opts, client.WithInsecureSkipVerify())
	}
	if appConfig.Timeout > 0 {
		opts = append(opts, client.WithTimeout(appConfig.Timeout))
	}
	if appConfig.Token != "" {
		opts = append(opts, client.WithAuthToken(client.Token(appConfig.Token)))
	}
	if verbose {
		opts = append(opts, client.WithLogger(client.NewZapLogger(newZapLogger())))
	}

	return client.New(appConfig.Server, opts...)
}

// newZapLogger builds the structured logger backing --verbose. Events go
// to stderr so table and JSON output stay parseable.
func newZapLogger() *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func requireToken() error {
	if appConfig.Token == "" {
		return fmt.Errorf("no token configured (run 'mmcli login' and export MMCLI_TOKEN)")
	}
	return nil
}
