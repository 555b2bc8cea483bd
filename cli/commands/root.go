package commands

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robgonnella/sockchat/internal/config"
	"github.com/robgonnella/sockchat/internal/core"
	"github.com/robgonnella/sockchat/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CoreFactory creates the app core for a loaded configuration
type CoreFactory func(conf config.Config, reg prometheus.Registerer) (*core.Core, error)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	CreateCore CoreFactory
}

// flags shared by every command
type globalFlags struct {
	verbose     bool
	silent      bool
	configFile  string
	metricsAddr string
}

// loadConfig reads the config file selected by --config, falling back to
// the runtime config-file path
func (f *globalFlags) loadConfig() (*config.Config, error) {
	path := f.configFile

	if path == "" {
		path = viper.GetString("config-file")
	}

	return config.Load(path)
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "sockchat",
		Short: "Discover devices on your network and chat with them over tcp",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if flags.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if flags.silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := flags.loadConfig()

			if err != nil {
				return err
			}

			reg, stopMetrics, err := serveMetrics(flags.metricsAddr)

			if err != nil {
				return err
			}

			defer stopMetrics()

			appCore, err := props.CreateCore(*conf, reg)

			if err != nil {
				return err
			}

			return ui.New(appCore).Launch()
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&flags.silent, "silent", false, "disables all logging")
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "path to config file")
	cmd.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, e.g. :9090")

	cmd.AddCommand(scan(props, flags))
	cmd.AddCommand(clear())
	cmd.AddCommand(info(flags))
	cmd.AddCommand(version())

	return cmd
}
