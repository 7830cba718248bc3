package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/receipt_processor/internal/platform/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// @title Receipt Processor API
// @version 1.0
// @description Scores purchase receipts with reward points.

// @host localhost:8080
// @BasePath /

func newRootCmd() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "receipt_processor",
		Short: "Receipt reward points service",
		Long: `receipt_processor validates purchase receipts, scores them with a fixed
set of reward rules and serves the points over HTTP.

Running without a subcommand starts the HTTP server.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("host", "", "address to listen on (env HOST)")
	flags.String("port", "", "port to listen on (env PORT)")
	flags.Bool("debug", false, "enable debug logging (env DEBUG)")
	for key, flag := range map[string]string{
		config.KeyHost:  "host",
		config.KeyPort:  "port",
		config.KeyDebug: "debug",
	} {
		if err := bindFlag(rootCmd, key, flag); err != nil {
			return nil, err
		}
	}

	rootCmd.AddCommand(serveCmd(), scoreCmd())
	return rootCmd, nil
}

func main() {
	rootCmd, err := newRootCmd()
	if err == nil {
		err = rootCmd.Execute()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bindFlag lets an explicitly set flag override the environment for key.
func bindFlag(cmd *cobra.Command, key, flag string) error {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		return fmt.Errorf("bind flag --%s to %s: %w", flag, key, err)
	}
	return nil
}
