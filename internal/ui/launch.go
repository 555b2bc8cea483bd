package ui

import (
	"fmt"
	"os"

	"github.com/robgonnella/sockchat/internal/core"
	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/util"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var originalStdout = os.Stdout
var originalStderr = os.Stderr

func restoreStdout() {
	os.Stdout = originalStdout
	os.Stderr = originalStderr
}

type UI struct {
	appCore *core.Core
	view    *view
}

func New(appCore *core.Core) *UI {
	return &UI{appCore: appCore}
}

// Launch runs the terminal interface until the user quits. Logs are
// redirected to the configured log file so they don't corrupt the screen.
func (u *UI) Launch() error {
	log := logger.New()

	level := zerolog.GlobalLevel()

	if level != zerolog.Disabled {
		logFile, ok := viper.Get("log-file").(string)

		if !ok || logFile == "" {
			log.Error().Err(
				fmt.Errorf("invalid log file path: %s", logFile),
			).Msg("disabling logs")
			zerolog.SetGlobalLevel(zerolog.Disabled)
		} else {
			if err := logger.GlobalSetLogFile(logFile); err != nil {
				log.Error().Err(err).Msg("disabling logs")
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}
		}
	}

	userIP := "unknown"

	if networkInfo, err := util.GetNetworkInfo(); err != nil {
		log.Warn().Err(err).Msg("failed to get default network info")
	} else {
		userIP = networkInfo.UserIP.String()
	}

	u.view = newView(userIP, u.appCore)

	os.Stdout, _ = os.Open(os.DevNull)
	os.Stderr, _ = os.Open(os.DevNull)

	defer restoreStdout()

	return u.view.run()
}
