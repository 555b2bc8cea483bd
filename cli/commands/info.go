package commands

import (
	"fmt"
	"os/exec"

	app_info "github.com/robgonnella/sockchat/internal/app-info"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func info(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detailed app info",
		Run: func(cmd *cobra.Command, args []string) {
			configFile := flags.configFile

			if configFile == "" {
				configFile = viper.GetString("config-file")
			}

			nmapInfo, err := exec.Command("nmap", "--version").Output()

			if err != nil {
				nmapInfo = []byte("nmap not found, the nmap scanner is unavailable\n")
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s: %s\n\nconfig: %s\nlogs: %s\n\n%s",
				app_info.NAME,
				app_info.VERSION,
				configFile,
				viper.GetString("log-file"),
				nmapInfo,
			)
		},
	}

	return cmd
}
