package core

import (
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robgonnella/sockchat/internal/config"
	"github.com/robgonnella/sockchat/internal/connector"
	"github.com/robgonnella/sockchat/internal/database"
	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/discovery"
	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/metrics"
	"github.com/robgonnella/sockchat/internal/transcript"
	"github.com/robgonnella/sockchat/internal/util"
)

// getTargets returns the configured discovery targets, falling back to the
// network this machine routes through by default
func getTargets(conf config.Config) ([]string, error) {
	if len(conf.Discovery.Targets) > 0 {
		return conf.Discovery.Targets, nil
	}

	networkInfo, err := util.GetNetworkInfo()

	if err != nil {
		return nil, err
	}

	logger.New().Info().Str("cidr", networkInfo.Cidr).Msg("no targets configured, using default network")

	return []string{networkInfo.Cidr}, nil
}

// createFeed returns the discovery feed selected in conf
func createFeed(conf config.Config, targets []string) (discovery.Feed, error) {
	if conf.Discovery.Scanner == config.NmapScanner {
		return discovery.NewNmapFeed(targets), nil
	}

	return discovery.NewTargetFeed(targets, net.DefaultResolver)
}

// CreateNewAppCore creates and returns a new instance of *core.Core backed
// by session scoped in-memory storage. Metrics are registered with reg when
// it is not nil.
func CreateNewAppCore(conf config.Config, reg prometheus.Registerer) (*Core, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	targets, err := getTargets(conf)

	if err != nil {
		return nil, err
	}

	feed, err := createFeed(conf, targets)

	if err != nil {
		return nil, err
	}

	m, err := metrics.New(reg)

	if err != nil {
		return nil, err
	}

	db, err := database.NewMemory(&device.Device{}, &transcript.Message{})

	if err != nil {
		return nil, err
	}

	eventManager := event.NewEventManager()

	deviceService := device.NewService(device.NewSqliteRepo(db), eventManager, m)
	transcriptService := transcript.NewService(transcript.NewSqliteRepo(db), eventManager)

	c, err := New(
		conf,
		feed,
		deviceService,
		transcriptService,
		eventManager,
		connector.WithMetrics(m),
	)

	if err != nil {
		database.Close(db)
		return nil, err
	}

	c.onStop = append(c.onStop, func() error {
		return database.Close(db)
	})

	return c, nil
}
