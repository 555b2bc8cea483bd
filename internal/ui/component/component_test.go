package component_test

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/ui/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceTable(t *testing.T) {
	t.Run("replaces rows on update", func(st *testing.T) {
		deviceTable := component.NewDeviceTable("devices", func(ip string) {})

		table, ok := deviceTable.Primitive().(*tview.Table)
		require.True(st, ok)

		deviceTable.UpdateTable([]*device.Device{
			{IP: "192.168.1.50", Hostname: "printer", Status: device.StatusActive},
			{IP: "192.168.1.51", Status: device.StatusNotActive},
		})

		assert.Equal(st, 4, table.GetRowCount())
		assert.Equal(st, "unknown", table.GetCell(3, 0).Text)
		assert.Equal(st, "active", table.GetCell(2, 2).Text)

		deviceTable.UpdateTable([]*device.Device{
			{IP: "192.168.1.52", Status: device.StatusNotActive},
		})

		assert.Equal(st, 3, table.GetRowCount())
		assert.Equal(st, "192.168.1.52", table.GetCell(2, 1).Text)
		assert.Equal(st, "HOSTNAME", table.GetCell(0, 0).Text)
	})

	t.Run("calls onSelect with selected ip", func(st *testing.T) {
		selected := ""

		deviceTable := component.NewDeviceTable("devices", func(ip string) {
			selected = ip
		})

		table := deviceTable.Primitive().(*tview.Table)

		deviceTable.UpdateTable([]*device.Device{
			{IP: "192.168.1.50", Status: device.StatusActive},
		})

		table.Select(2, 0)
		table.InputHandler()(tcellEnter(), func(p tview.Primitive) {})

		assert.Equal(st, "192.168.1.50", selected)
	})
}

func TestEventTable(t *testing.T) {
	t.Run("describes stream events", func(st *testing.T) {
		eventTable := component.NewEventTable()

		table := eventTable.Primitive().(*tview.Table)

		eventTable.UpdateTable(event.Event{
			Type: event.StreamFailedEventType,
			Payload: event.StreamPayload{
				IP:   "192.168.1.50",
				Port: 2001,
				Err:  errors.New("write failed"),
			},
		})

		assert.Equal(st, 3, table.GetRowCount())
		assert.Equal(st, "1", table.GetCell(2, 0).Text)
		assert.Equal(st, string(event.StreamFailedEventType), table.GetCell(2, 1).Text)
		assert.Equal(st, "192.168.1.50", table.GetCell(2, 2).Text)
		assert.Equal(st, "2001", table.GetCell(2, 3).Text)
		assert.Equal(st, "write failed", table.GetCell(2, 4).Text)
	})

	t.Run("skips progress events", func(st *testing.T) {
		eventTable := component.NewEventTable()

		table := eventTable.Primitive().(*tview.Table)

		eventTable.UpdateTable(event.Event{
			Type:    event.ScanProgressEventType,
			Payload: 0.5,
		})

		assert.Equal(st, 2, table.GetRowCount())
	})

	t.Run("keeps the most recent events", func(st *testing.T) {
		eventTable := component.NewEventTable()

		table := eventTable.Primitive().(*tview.Table)

		for i := 0; i < 150; i++ {
			eventTable.UpdateTable(event.Event{
				Type:    event.DeviceFoundEventType,
				Payload: &device.Device{IP: "10.0.0.1"},
			})
		}

		assert.Equal(st, 102, table.GetRowCount())
		assert.Equal(st, "51", table.GetCell(2, 0).Text)
		assert.Equal(st, "150", table.GetCell(101, 0).Text)
	})
}

func TestFormatProgress(t *testing.T) {
	assert.Equal(t, "50%", component.FormatProgress(0.5))
	assert.Equal(t, "100%", component.FormatProgress(1))
}

func TestChat(t *testing.T) {
	t.Run("tracks the open peer", func(st *testing.T) {
		chat := component.NewChat(func(ip, text string) {}, func(ip string) {})

		assert.Equal(st, "", chat.Peer())

		chat.Open("192.168.1.50", "printer", true)

		assert.Equal(st, "192.168.1.50", chat.Peer())
	})
}

func tcellEnter() *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
}
