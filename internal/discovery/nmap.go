package discovery

import (
	"context"
	"strconv"
	"strings"

	"github.com/Ullaakut/nmap/v3"
	"github.com/robgonnella/sockchat/internal/logger"
)

// NmapFeed is an implementation of the Feed interface using an nmap ping scan
type NmapFeed struct {
	targets []string
	log     logger.Logger
}

// NewNmapFeed returns a new instance of NmapFeed
func NewNmapFeed(targets []string) *NmapFeed {
	return &NmapFeed{
		targets: targets,
		log:     logger.New(),
	}
}

// Scan runs nmap host discovery over the targets and reports every host that
// is up
func (f *NmapFeed) Scan(ctx context.Context, results chan<- *Result) (Status, error) {
	f.log.Info().Strs("targets", f.targets).Msg("Scanning network with nmap...")

	scanner, err := nmap.NewScanner(
		ctx,
		nmap.WithTargets(f.targets...),
		nmap.WithPingScan(),
		nmap.WithTimingTemplate(nmap.TimingAggressive),
	)

	if err != nil {
		return "", err
	}

	result, warnings, err := scanner.Run()

	if ctx.Err() != nil {
		return StatusCancelled, nil
	}

	if warnings != nil && len(*warnings) > 0 {
		fields := map[string]interface{}{}

		for i, warning := range *warnings {
			fields[strconv.Itoa(i)] = warning
		}

		f.log.Warn().
			Fields(fields).
			Msg("encountered network scan warnings")
	}

	if err != nil {
		f.log.Error().Err(err).Msg("encountered network scan error")
		return "", err
	}

	total := len(result.Hosts)

	for i, host := range result.Hosts {
		if host.Status.State == "up" {
			if ip := hostIPv4(host); ip != "" {
				found := &Result{
					Type:     DeviceFoundResult,
					IP:       ip,
					Hostname: hostName(host),
				}

				if !sendResult(ctx, results, found) {
					return StatusCancelled, nil
				}
			}
		}

		if !sendResult(ctx, results, progressResult(i+1, total)) {
			return StatusCancelled, nil
		}
	}

	return StatusFinished, nil
}

func hostIPv4(host nmap.Host) string {
	for _, addr := range host.Addresses {
		if addr.AddrType == "ipv4" {
			return addr.Addr
		}
	}

	return ""
}

func hostName(host nmap.Host) string {
	for _, name := range host.Hostnames {
		if name.Name != "" {
			return strings.TrimSuffix(name.Name, ".")
		}
	}

	return ""
}
