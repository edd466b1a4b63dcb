package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/internal/postgres"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
	"github.com/dega-network/nft-engine/pkg/middleware/requestcontext"
	"github.com/dega-network/nft-engine/pkg/middleware/requestlogger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		HTTPServer: HTTPServer{
			Port: 8080,
		},
	}
)

type Config struct {
	Logger     logger.Config `mapstructure:"logger"`
	HTTPServer HTTPServer    `mapstructure:"http_server"`
	APIOnly    bool          `mapstructure:"api_only"`
	Modules    Modules       `mapstructure:"modules"`
	Minter     Minter        `mapstructure:"minter"`
}

type HTTPServer struct {
	Port      int                               `mapstructure:"port"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"request_ip"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
}

type Modules struct {
	Minter     Module `mapstructure:"minter"`
	Collection Module `mapstructure:"collection"`
}

type Module struct {
	Postgres postgres.Config `mapstructure:"postgres"`
}

// Minter holds the instantiation parameters applied on first run, when the
// minter contract state does not exist yet.
type Minter struct {
	Address           string     `mapstructure:"address"`
	CollectionAddress string     `mapstructure:"collection_address"`
	SignerPubKey      string     `mapstructure:"signer_pub_key"`
	InitialAdmin      string     `mapstructure:"initial_admin"`
	CollectionLabel   string     `mapstructure:"collection_label"`
	CollectionAdmin   string     `mapstructure:"collection_admin"`
	Collection        Collection `mapstructure:"collection"`
}

type Collection struct {
	CodeID                uint64 `mapstructure:"code_id"`
	Name                  string `mapstructure:"name"`
	Symbol                string `mapstructure:"symbol"`
	Description           string `mapstructure:"description"`
	Image                 string `mapstructure:"image"`
	ExternalLink          string `mapstructure:"external_link"`
	RoyaltyPaymentAddress string `mapstructure:"royalty_payment_address"`
	RoyaltyShare          string `mapstructure:"royalty_share"`
}

// BindPFlag binds a command-line flag to a configuration key.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("failed to bind flag to config", slogx.String("key", key), slogx.Error(err))
	}
}

// Parse loads the configuration from the given file (or ./config.yaml when
// empty), with environment variables taking precedence.
func Parse(configFile string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.WarnContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(&config); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
	})

	return *config
}

// Load returns the already-parsed configuration.
func Load() Config {
	return Parse("")
}
