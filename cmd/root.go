// Package cmd provides the command-line interface for the portfolio site.
//
// Configuration comes from the environment, optionally seeded from a .env
// file in the working directory:
//
//	FORMSPREE_ENDPOINT  form relay URL (default https://formspree.io/f/demo)
//	RELAY_TIMEOUT       bound on one relay call (default 15s)
//	PORT                HTTP port for serve (default 8080)
//	SESSION_TTL         idle lifetime of a visitor's form (default 30m)
//	MAX_SESSIONS        cap on live visitor forms (default 10000)
//	ALLOWED_ORIGINS     comma-separated CORS origins (default *)
//	GIN_MODE            gin mode (default release)
//	LOG_LEVEL           debug, info, warn or error (default info)
//	CONTACT_EMAIL       address offered as the fallback contact
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"portfolio-site/pkg/config"
	"portfolio-site/pkg/logging"
)

var (
	envFile string
	v       *viper.Viper = config.New()
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Contact form backend for the portfolio site",
	Long: `portfolio serves the contact section of the portfolio site and relays
visitor messages to the configured form relay endpoint.

Quick Start:
  portfolio serve                 Start the HTTP server
  portfolio send --name ...       Send one message from the terminal`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}
		} else if err := config.LoadEnvFile(); err != nil {
			fmt.Fprintln(os.Stderr, "Error loading .env file:", err)
		}

		cfg = config.LoadConfig(v)

		var err error
		logger, err = logging.New(cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default .env if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("endpoint", "", "form relay endpoint (overrides FORMSPREE_ENDPOINT)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "relay call timeout (overrides RELAY_TIMEOUT)")

	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("formspree_endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = v.BindPFlag("relay_timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	rootCmd.AddCommand(serveCmd, sendCmd)
}
