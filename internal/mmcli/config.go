package mmcli

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration loaded from environment variables
// and an optional .env file in the working directory. All keys use the
// MMCLI_ prefix, e.g. MMCLI_SERVER, MMCLI_TOKEN.
type Config struct {
	Server             string        `mapstructure:"server"`
	Port               int           `mapstructure:"port"`
	UseTLS             bool          `mapstructure:"use_tls"`
	InsecureSkipVerify bool          `mapstructure:"insecure"`
	Token              string        `mapstructure:"token"`
	LoginID            string        `mapstructure:"login_id"`
	Password           string        `mapstructure:"password"`
	TimeoutSeconds     int64         `mapstructure:"timeout_seconds"`
	Timeout            time.Duration `mapstructure:"-"`
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults that match the library's.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("mmcli")

	v.SetDefault("server", "")
	v.SetDefault("port", 443)
	v.SetDefault("use_tls", true)
	v.SetDefault("insecure", false)
	v.SetDefault("timeout_seconds", int64(30))

	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so bind each one.
	keys := []string{
		"server", "port", "use_tls", "insecure",
		"token", "login_id", "password", "timeout_seconds",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid timeout_seconds (must not be negative)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}
