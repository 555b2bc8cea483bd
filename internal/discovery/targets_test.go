package discovery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/robgonnella/sockchat/internal/discovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver map[string][]string

func (r fakeResolver) LookupAddr(ctx context.Context, addr string) ([]string, error) {
	names, ok := r[addr]

	if !ok {
		return nil, errors.New("not found")
	}

	return names, nil
}

func collect(
	st *testing.T,
	ctx context.Context,
	feed discovery.Feed,
) (map[string]string, []float64, discovery.Status) {
	results := make(chan *discovery.Result)
	done := make(chan struct{})

	devices := map[string]string{}
	progress := []float64{}

	go func() {
		defer close(done)

		for r := range results {
			switch r.Type {
			case discovery.DeviceFoundResult:
				devices[r.IP] = r.Hostname
			case discovery.ScanProgressResult:
				progress = append(progress, r.Progress)
			}
		}
	}()

	status, err := feed.Scan(ctx, results)
	close(results)
	<-done

	require.NoError(st, err)

	return devices, progress, status
}

func TestTargetFeed(t *testing.T) {
	t.Run("expands cidr targets", func(st *testing.T) {
		feed, err := discovery.NewTargetFeed([]string{"192.168.1.0/30", "10.0.0.5"}, nil)

		require.NoError(st, err)

		targets := feed.Targets()

		assert.Contains(st, targets, "192.168.1.1")
		assert.Contains(st, targets, "192.168.1.2")
		assert.Contains(st, targets, "10.0.0.5")
	})

	t.Run("reports overlapping targets once", func(st *testing.T) {
		feed, err := discovery.NewTargetFeed([]string{"10.0.0.5", "10.0.0.6", "10.0.0.5"}, nil)

		require.NoError(st, err)

		assert.Equal(st, []string{"10.0.0.5", "10.0.0.6"}, feed.Targets())
	})

	t.Run("fails on invalid cidr", func(st *testing.T) {
		_, err := discovery.NewTargetFeed([]string{"192.168.1.0/99"}, nil)

		assert.Error(st, err)
	})

	t.Run("reports every target with resolved hostnames", func(st *testing.T) {
		resolver := fakeResolver{
			"10.0.0.5": {"printer.lan."},
		}

		feed, err := discovery.NewTargetFeed([]string{"10.0.0.5", "10.0.0.6"}, resolver)

		require.NoError(st, err)

		devices, progress, status := collect(st, context.Background(), feed)

		assert.Equal(st, discovery.StatusFinished, status)
		assert.Equal(st, map[string]string{"10.0.0.5": "printer.lan", "10.0.0.6": ""}, devices)
		assert.Equal(st, []float64{0.5, 1}, progress)
	})

	t.Run("reports cancelled when context is done", func(st *testing.T) {
		feed, err := discovery.NewTargetFeed([]string{"10.0.0.5", "10.0.0.6"}, nil)

		require.NoError(st, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, status := collect(st, ctx, feed)

		assert.Equal(st, discovery.StatusCancelled, status)
	})
}
