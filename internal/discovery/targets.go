package discovery

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/projectdiscovery/mapcidr"
	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/util"
	"golang.org/x/sync/errgroup"
)

// lookups running at once when resolving hostnames
const resolveConcurrency = 64

// Resolver looks up hostnames for an address, satisfied by *net.Resolver
type Resolver interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// TargetFeed is an implementation of the Feed interface that reports every
// configured target as a device. CIDR blocks are expanded to their addresses
// and overlapping targets are reported once.
type TargetFeed struct {
	targets  []string
	resolver Resolver
	timeout  time.Duration
	log      logger.Logger
}

// NewTargetFeed returns a new instance of TargetFeed. When resolver is not
// nil it is used to fill in hostnames.
func NewTargetFeed(targets []string, resolver Resolver) (*TargetFeed, error) {
	ipList := []string{}

	for _, t := range targets {
		if strings.Contains(t, "/") {
			ips, err := mapcidr.IPAddresses(t)

			if err != nil {
				return nil, err
			}

			ipList = append(ipList, ips...)
		} else {
			ipList = append(ipList, t)
		}
	}

	return &TargetFeed{
		targets:  util.Unique(ipList),
		resolver: resolver,
		timeout:  time.Millisecond * 500,
		log:      logger.New(),
	}, nil
}

// Targets returns the expanded list of addresses reported by Scan
func (f *TargetFeed) Targets() []string {
	return f.targets
}

// Scan reports every target, resolving hostnames concurrently
func (f *TargetFeed) Scan(ctx context.Context, results chan<- *Result) (Status, error) {
	f.log.Info().Int("targets", len(f.targets)).Msg("Scanning network targets...")

	g := errgroup.Group{}
	g.SetLimit(resolveConcurrency)

	mux := sync.Mutex{}
	done := 0
	total := len(f.targets)

	for _, ip := range f.targets {
		if ctx.Err() != nil {
			break
		}

		ip := ip

		g.Go(func() error {
			found := &Result{
				Type:     DeviceFoundResult,
				IP:       ip,
				Hostname: f.lookup(ctx, ip),
			}

			if !sendResult(ctx, results, found) {
				return nil
			}

			mux.Lock()
			defer mux.Unlock()

			done++

			sendResult(ctx, results, progressResult(done, total))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	if ctx.Err() != nil {
		return StatusCancelled, nil
	}

	return StatusFinished, nil
}

func (f *TargetFeed) lookup(ctx context.Context, ip string) string {
	if f.resolver == nil {
		return ""
	}

	lookupCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	names, err := f.resolver.LookupAddr(lookupCtx, ip)

	if err != nil || len(names) == 0 {
		return ""
	}

	return strings.TrimSuffix(names[0], ".")
}
