package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/imdario/mergo"
	"github.com/robgonnella/sockchat/internal/exception"
	"github.com/robgonnella/sockchat/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Scanner names accepted for discovery.scanner
const (
	NmapScanner   = "nmap"
	TargetScanner = "targets"
)

// PortRange is the closed interval of ports probed per device, in ascending order
type PortRange struct {
	First int `yaml:"first" mapstructure:"first"`
	Last  int `yaml:"last" mapstructure:"last"`
}

// Validate fails when the range is empty or outside valid tcp ports
func (r PortRange) Validate() error {
	if r.First < 1 || r.First > 65535 || r.Last < 1 || r.Last > 65535 {
		return fmt.Errorf("%w: ports must be within 1-65535: %d-%d", exception.ErrInvalidPortRange, r.First, r.Last)
	}

	if r.First > r.Last {
		return fmt.Errorf("%w: first port %d is greater than last port %d", exception.ErrInvalidPortRange, r.First, r.Last)
	}

	return nil
}

// Ports returns every port in the range, first to last
func (r PortRange) Ports() []int {
	ports := []int{}

	for p := r.First; p <= r.Last; p++ {
		ports = append(ports, p)
	}

	return ports
}

// Discovery represents our network discovery configuration
type Discovery struct {
	Scanner string   `yaml:"scanner" mapstructure:"scanner"`
	Targets []string `yaml:"targets" mapstructure:"targets"`
}

// Connection represents how we connect to discovered devices
type Connection struct {
	Ports          PortRange     `yaml:"ports" mapstructure:"ports"`
	DialTimeout    time.Duration `yaml:"dial-timeout" mapstructure:"dial-timeout"`
	Concurrency    int           `yaml:"concurrency" mapstructure:"concurrency"`
	DialRate       float64       `yaml:"dial-rate" mapstructure:"dial-rate"`
	Reconnect      bool          `yaml:"reconnect" mapstructure:"reconnect"`
	ReconnectDelay time.Duration `yaml:"reconnect-delay" mapstructure:"reconnect-delay"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Discovery  Discovery  `yaml:"discovery" mapstructure:"discovery"`
	Connection Connection `yaml:"connection" mapstructure:"connection"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Discovery: Discovery{
			Scanner: TargetScanner,
			Targets: []string{},
		},
		Connection: Connection{
			Ports: PortRange{
				First: 2000,
				Last:  2020,
			},
			DialTimeout:    time.Second,
			Concurrency:    0,
			DialRate:       0,
			Reconnect:      false,
			ReconnectDelay: time.Second,
		},
	}
}

// Validate checks invariants that must hold before any connection is made
func (c *Config) Validate() error {
	if err := c.Connection.Ports.Validate(); err != nil {
		return err
	}

	if c.Connection.DialTimeout <= 0 {
		return errors.New("dial-timeout must be greater than zero")
	}

	if c.Connection.Concurrency < 0 {
		return errors.New("concurrency cannot be negative")
	}

	if c.Connection.DialRate < 0 {
		return errors.New("dial-rate cannot be negative")
	}

	if !util.SliceIncludes([]string{NmapScanner, TargetScanner}, c.Discovery.Scanner) {
		return fmt.Errorf("unknown discovery scanner: %s", c.Discovery.Scanner)
	}

	return nil
}

// Load reads the config file at path, filling any missing values with
// defaults. A default config file is written if none exists.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		conf := Default()

		if err := Write(path, *conf); err != nil {
			return nil, err
		}

		return conf, nil
	}

	conf := Config{}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&conf, Default()); err != nil {
		return nil, err
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Write encodes conf as yaml to path
func Write(path string, conf Config) error {
	file, err := os.Create(path)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}
