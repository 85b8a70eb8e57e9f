// Package cli implements the serialdesk command line interface, a thin
// synchronous shell over the serial backend: every subcommand invokes the
// bridge operations and prints the results.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	serial "github.com/wllcyg/serialdesk"
	"github.com/wllcyg/serialdesk/internal/logger"
)

var (
	cfgFile string

	log    zerolog.Logger
	bridge *serial.Bridge
)

var rootCmd = &cobra.Command{
	Use:   "serialdesk",
	Short: "Serial port communication backend",
	Long: `serialdesk enumerates serial interfaces and exchanges raw bytes with them.

Besides real hardware ports it exposes three built-in virtual ports for
testing without a device:

  VIRTUAL-COM1   echoes written bytes back
  VIRTUAL-COM2   replies with "Received: <text>"
  VIRTUAL-COM3   replies with a pseudo-random token`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.New(logger.Options{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
			File:   viper.GetString("log.file"),
		})
		bridge = serial.New(log)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.serialdesk.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to a rotating file instead of stderr")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".serialdesk")
		}
	}

	viper.SetEnvPrefix("SERIALDESK")
	viper.AutomaticEnv()

	// Missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}
