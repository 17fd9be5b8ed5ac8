package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"magnetmoments-sync/lib/configutil"
	configlibsql "magnetmoments-sync/lib/configutil/libsql"
	"magnetmoments-sync/lib/serviceutil"
	"magnetmoments-sync/lib/telemetry"
)

type ShopifyConfig struct {
	// myshopify domain of the storefront
	Domain string `json:"domain"`
	// public storefront api token, not an admin secret
	Token string `json:"token"`
}

type SiteConfig struct {
	// Dir is the root of the site checkout, the directory holding
	// index.html and shop/. Defaults to the working directory.
	Dir string `json:"dir"`
}

type DebugConfig struct {
	// HttpDumpDir receives one file per storefront request when set.
	HttpDumpDir string `json:"http_dump_dir"`
}

type Config struct {
	Shopify ShopifyConfig       `json:"shopify"`
	Site    SiteConfig          `json:"site"`
	Journal configlibsql.Struct `json:"journal"`
	Debug   DebugConfig         `json:"debug"`
}

var (
	configFile string
	verbose    bool

	config Config
)

var rootCmd = &cobra.Command{
	Use:   "magnetsync",
	Short: "magnetsync regenerates the Magnet Moments Co. site from the Shopify catalog.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		if err := godotenv.Load(); err == nil {
			slog.Debug("loaded .env file")
		}

		loaded, err := configutil.ReadConfig[Config](configFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			serviceutil.Fatal("failed to read config", err)
		}
		config = loaded
		applyDefaults(&config)
	},
}

// applyDefaults layers the environment over the config file and fills
// in the production storefront, the tool runs with zero configuration
// from inside the site checkout.
func applyDefaults(config *Config) {
	if domain := os.Getenv("SHOPIFY_DOMAIN"); domain != "" {
		config.Shopify.Domain = domain
	}
	if token := os.Getenv("SHOPIFY_STOREFRONT_TOKEN"); token != "" {
		config.Shopify.Token = token
	}

	if config.Shopify.Domain == "" {
		config.Shopify.Domain = "dbx3hf-qe.myshopify.com"
	}
	if config.Shopify.Token == "" {
		config.Shopify.Token = "3ed866388b8a983188443f1d808fd561"
	}
	if config.Site.Dir == "" {
		config.Site.Dir = "."
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.json5", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
