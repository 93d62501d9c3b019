package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "skytrack",
		Short: "CLI tool for the SkyTracker API",
		Long: `skytrack is a CLI tool for the SkyTracker JSON API.

It resolves usernames, looks up Skyblock profiles, browses the auction
house and resolves player identifiers to display names.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != FormatText && cfg.Output != FormatJSON {
				return fmt.Errorf("unknown output format %q", cfg.Output)
			}

			client = NewClient(cfg.ServerURL, cfg.Verbose)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SKYTRACK_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: SKYTRACK_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log HTTP requests and responses")

	// Add subcommands
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newUUIDCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newAuctionsCmd())
	rootCmd.AddCommand(newNamesCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}
