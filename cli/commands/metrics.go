package commands

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robgonnella/sockchat/internal/logger"
)

// serveMetrics exposes a fresh prometheus registry on addr. An empty addr
// disables metrics and returns a nil registerer.
func serveMetrics(addr string) (prometheus.Registerer, func(), error) {
	if addr == "" {
		return nil, func() {}, nil
	}

	log := logger.New()

	reg := prometheus.NewRegistry()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	listener, err := net.Listen("tcp", addr)

	if err != nil {
		return nil, nil, err
	}

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: time.Second * 5,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()

	log.Info().Str("addr", listener.Addr().String()).Msg("serving metrics")

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}

	return reg, stop, nil
}
