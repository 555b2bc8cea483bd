package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/transcript"
	"github.com/spf13/cobra"
)

// creates and returns the headless "scan" command
func scan(props *CommandProps, flags *globalFlags) *cobra.Command {
	var listen time.Duration

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan once, connect to every device found and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			conf, err := flags.loadConfig()

			if err != nil {
				return err
			}

			reg, stopMetrics, err := serveMetrics(flags.metricsAddr)

			if err != nil {
				return err
			}

			defer stopMetrics()

			appCore, err := props.CreateCore(*conf, reg)

			if err != nil {
				return err
			}

			defer func() {
				if err := appCore.Stop(); err != nil {
					log.Error().Err(err).Msg("failed to stop cleanly")
				}
			}()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			events := make(chan event.Event, 100)
			listenerID := appCore.RegisterEventListener(event.AnyEventType, events)
			defer appCore.RemoveEventListener(listenerID)

			go logEvents(ctx, events)

			if err := appCore.Scan(ctx); err != nil {
				return err
			}

			appCore.WaitForConnections()

			if listen > 0 {
				log.Info().Dur("duration", listen).Msg("listening for messages")

				select {
				case <-ctx.Done():
				case <-time.After(listen):
				}
			}

			devices, err := appCore.Devices()

			if err != nil {
				return err
			}

			return printDevices(cmd.OutOrStdout(), devices)
		},
	}

	cmd.Flags().DurationVar(&listen, "listen", 0, "keep streams open this long after connecting and log received messages")

	return cmd
}

func logEvents(ctx context.Context, events chan event.Event) {
	log := logger.New()

	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-events:
			switch payload := evt.Payload.(type) {
			case *device.Device:
				log.Debug().Str("event", string(evt.Type)).Str("ip", payload.IP).Str("hostname", payload.Hostname).Msg("device")
			case event.StreamPayload:
				log.Debug().Str("event", string(evt.Type)).Str("ip", payload.IP).Int("port", payload.Port).Err(payload.Err).Msg("stream")
			case *transcript.Message:
				log.Info().Str("ip", payload.Peer).Str("direction", string(payload.Direction)).Msg(payload.Text)
			case error:
				log.Error().Str("event", string(evt.Type)).Err(payload).Msg("")
			default:
				log.Debug().Str("event", string(evt.Type)).Interface("payload", payload).Msg("")
			}
		}
	}
}

func printDevices(out io.Writer, devices []*device.Device) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "HOSTNAME\tIP\tSTATUS")

	for _, d := range devices {
		hostname := d.Hostname

		if hostname == "" {
			hostname = "unknown"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", hostname, d.IP, d.Status)
	}

	return w.Flush()
}
