package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hrops/okta-bob-origin/report"
)

var (
	appId    string
	appLabel string
	output   string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "okta-bob-origin",
	Short: "Report which Okta users were provisioned through bob",
	Long: `Fetches all Okta users plus the user assignments of the bob HR
integration app and writes a spreadsheet classifying every account as
imported via bob or manually managed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}

		var cfg *report.Config
		var err error
		if os.Getenv(report.KsmConfigEnv) != "" {
			cfg, err = report.LoadConfigFromKSM()
		} else {
			cfg, err = report.LoadConfig()
		}
		if err != nil {
			return err
		}
		if appId != "" {
			cfg.AppId = appId
		}
		if appLabel != "" {
			cfg.AppLabel = appLabel
		}
		if output != "" {
			cfg.Output = output
		}

		summary, err := report.Run(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("Report generated successfully: %s\n", summary.Output)
		fmt.Printf("Total users processed: %d\n", summary.Rows)
		fmt.Printf("bob app id used: %s\n", summary.AppId)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&appId, "app-id", "", "bob application id (overrides BOB_APP_ID)")
	rootCmd.Flags().StringVar(&appLabel, "app-label", "", "bob application label (overrides BOB_APP_LABEL)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output spreadsheet path")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
