package commands

import (
	"errors"
	"os"

	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

/**
 * Command to remove config and log files
 */
func clear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clears config and log files",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			for _, key := range []string{"config-file", "log-file"} {
				file := viper.GetString(key)

				if file == "" {
					continue
				}

				if err := os.Remove(file); err != nil {
					if errors.Is(err, os.ErrNotExist) {
						continue
					}

					return err
				}

				log.Info().Str("file", file).Msgf("removed %s", key)
			}

			return nil
		},
	}

	return cmd
}
