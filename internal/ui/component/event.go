package component

import (
	"fmt"
	"strconv"

	"github.com/rivo/tview"
	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/discovery"
	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/transcript"
	"github.com/robgonnella/sockchat/internal/ui/style"
)

type EventTable struct {
	table     *tview.Table
	count     uint
	maxEvents int
}

func NewEventTable() *EventTable {
	columnHeaders := []string{
		"NO",
		"EVENT TYPE",
		"IP",
		"PORT",
		"DETAIL",
	}

	return &EventTable{
		table:     createTable("events", columnHeaders),
		count:     0,
		maxEvents: 100,
	}
}

func (t *EventTable) Primitive() tview.Primitive {
	return t.table
}

func (t *EventTable) UpdateTable(evt event.Event) {
	if evt.Type == event.ScanProgressEventType {
		// progress is shown in the header
		return
	}

	ip, port, detail := describe(evt)

	t.count++

	color := style.ColorWhite

	switch evt.Type {
	case event.ErrorEventType, event.FatalErrorEventType, event.ScanFailedEventType, event.StreamFailedEventType:
		color = style.ColorRed
	case event.DeviceActiveEventType, event.StreamConnectedEventType:
		color = style.ColorMediumGreen
	}

	row := []string{strconv.Itoa(int(t.count)), string(evt.Type), ip, port, detail}
	rowIdx := t.table.GetRowCount()

	for col, text := range row {
		t.table.SetCell(rowIdx, col, newCell(text, color))
	}

	if t.table.GetRowCount()-headerRows > t.maxEvents {
		t.table.RemoveRow(headerRows)
	}
}

func describe(evt event.Event) (string, string, string) {
	switch payload := evt.Payload.(type) {
	case event.StreamPayload:
		detail := ""

		if payload.Err != nil {
			detail = payload.Err.Error()
		}

		return payload.IP, strconv.Itoa(payload.Port), detail
	case *device.Device:
		return payload.IP, "", payload.Hostname
	case *transcript.Message:
		return payload.Peer, "", payload.Text
	case discovery.Status:
		return "", "", string(payload)
	case float64:
		return "", "", FormatProgress(payload)
	case error:
		return "", "", payload.Error()
	default:
		return "", "", ""
	}
}

// FormatProgress renders scan progress in [0,1] as a percentage
func FormatProgress(progress float64) string {
	return fmt.Sprintf("%.0f%%", progress*100)
}
