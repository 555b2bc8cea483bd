package component

import (
	"github.com/rivo/tview"
	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/ui/style"
)

// column holding the device ip
const ipColumn = 1

// DeviceTable lists devices. Selecting a row calls onSelect with its ip.
type DeviceTable struct {
	table *tview.Table
}

// NewDeviceTable returns a new instance of DeviceTable
func NewDeviceTable(title string, onSelect func(ip string)) *DeviceTable {
	table := createTable(title, []string{"HOSTNAME", "IP", "STATUS"})

	table.SetSelectedFunc(func(row, column int) {
		if ip, ok := selectedText(table, ipColumn); ok {
			onSelect(ip)
		}
	})

	return &DeviceTable{table: table}
}

// Primitive returns the root primitive for DeviceTable
func (t *DeviceTable) Primitive() tview.Primitive {
	return t.table
}

// UpdateTable replaces the listed devices
func (t *DeviceTable) UpdateTable(devices []*device.Device) {
	clearRows(t.table)

	for rowIdx, d := range devices {
		hostname := d.Hostname

		if hostname == "" {
			hostname = "unknown"
		}

		statusColor := style.ColorDimGrey

		if d.Status == device.StatusActive {
			statusColor = style.ColorMediumGreen
		}

		row := headerRows + rowIdx

		t.table.SetCell(row, 0, newCell(hostname, style.ColorWhite))
		t.table.SetCell(row, ipColumn, newCell(d.IP, style.ColorWhite))
		t.table.SetCell(row, 2, newCell(string(d.Status), statusColor))
	}
}
