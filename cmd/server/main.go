package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fadilmartias/recruit-admin/internal/config"
	"github.com/fadilmartias/recruit-admin/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	timeout time.Duration
	apiURL  string
	userID  string

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "recruit",
	Short:         "Recruiting pipeline administration backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "could not load .env file:", err)
		}
		var err error
		log, err = logger.New(config.LoadAppConfig().Env, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for one-shot commands")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of a running server (preview, summary)")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "Console user id sent as X-User-ID")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(summaryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
