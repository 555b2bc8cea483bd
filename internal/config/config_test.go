package config_test

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/robgonnella/sockchat/internal/config"
	"github.com/robgonnella/sockchat/internal/exception"
	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("default config is valid", func(st *testing.T) {
		conf := config.Default()

		assert.NoError(st, conf.Validate())
		assert.Equal(st, 2000, conf.Connection.Ports.First)
		assert.Equal(st, 2020, conf.Connection.Ports.Last)
	})

	t.Run("rejects port range where first is greater than last", func(st *testing.T) {
		conf := config.Default()
		conf.Connection.Ports = config.PortRange{First: 2002, Last: 2000}

		err := conf.Validate()

		assert.ErrorIs(st, err, exception.ErrInvalidPortRange)
	})

	t.Run("rejects ports out of bounds", func(st *testing.T) {
		r := config.PortRange{First: 0, Last: 70000}

		assert.ErrorIs(st, r.Validate(), exception.ErrInvalidPortRange)
	})

	t.Run("lists ports in ascending order", func(st *testing.T) {
		r := config.PortRange{First: 2000, Last: 2002}

		assert.Equal(st, []int{2000, 2001, 2002}, r.Ports())
	})

	t.Run("accepts single port range", func(st *testing.T) {
		r := config.PortRange{First: 2000, Last: 2000}

		assert.NoError(st, r.Validate())
		assert.Equal(st, []int{2000}, r.Ports())
	})

	t.Run("rejects unknown scanner", func(st *testing.T) {
		conf := config.Default()
		conf.Discovery.Scanner = "arp"

		assert.Error(st, conf.Validate())
	})

	t.Run("writes default config when file is missing", func(st *testing.T) {
		confPath := path.Join(st.TempDir(), "sockchat.yml")

		conf, err := config.Load(confPath)

		assert.NoError(st, err)
		assert.Equal(st, config.Default(), conf)

		_, err = os.Stat(confPath)

		assert.NoError(st, err)
	})

	t.Run("loads config and merges defaults", func(st *testing.T) {
		confPath := path.Join(st.TempDir(), "sockchat.yml")

		contents := []byte(`
discovery:
  targets:
    - 192.168.1.0/24
connection:
  ports:
    first: 3000
    last: 3005
  dial-timeout: 250ms
`)

		err := os.WriteFile(confPath, contents, 0644)

		assert.NoError(st, err)

		conf, err := config.Load(confPath)

		assert.NoError(st, err)
		assert.Equal(st, config.TargetScanner, conf.Discovery.Scanner)
		assert.Equal(st, []string{"192.168.1.0/24"}, conf.Discovery.Targets)
		assert.Equal(st, config.PortRange{First: 3000, Last: 3005}, conf.Connection.Ports)
		assert.Equal(st, time.Millisecond*250, conf.Connection.DialTimeout)
		assert.Equal(st, time.Second, conf.Connection.ReconnectDelay)
	})

	t.Run("fails to load invalid port range", func(st *testing.T) {
		confPath := path.Join(st.TempDir(), "sockchat.yml")

		contents := []byte(`
connection:
  ports:
    first: 3005
    last: 3000
`)

		err := os.WriteFile(confPath, contents, 0644)

		assert.NoError(st, err)

		_, err = config.Load(confPath)

		assert.ErrorIs(st, err, exception.ErrInvalidPortRange)
	})
}
