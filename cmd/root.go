package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uibridge/uibridge/internal/config"
	"github.com/uibridge/uibridge/internal/logger"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath string

	rootCmd = &cobra.Command{
		Use:   "uibridge",
		Short: "uibridge - select(2) bridge for GUI event loops",
		Long: `uibridge lets a host built around a blocking select/pselect main loop
observe window-system events without giving up its multiplexing contract.
It pumps the GUI event loop for at most one timeout's worth of time,
captures relevant events, and reports them through interrupted-call
semantics the host already understands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			if level := config.Get().Logging.LogLevel; level != "" {
				logger.SetLevel(level)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
}
