package ui

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/robgonnella/sockchat/internal/core"
	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/discovery"
	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/ui/component"
	"github.com/robgonnella/sockchat/internal/ui/key"
)

const (
	devicesView = "devices"
	activeView  = "active"
	eventsView  = "events"
	chatView    = "chat"
	modalPage   = "modal"
)

type view struct {
	ctx             context.Context
	cancel          context.CancelFunc
	app             *tview.Application
	root            *tview.Flex
	pages           *tview.Pages
	header          *component.Header
	deviceTable     *component.DeviceTable
	activeTable     *component.DeviceTable
	eventTable      *component.EventTable
	chat            *component.Chat
	appCore         *core.Core
	eventUpdateChan chan event.Event
	eventListenerId int
	focused         tview.Primitive
	focusedName     string
	previousName    string
	viewNames       []string
	logger          logger.Logger
}

func newView(userIP string, appCore *core.Core) *view {
	log := logger.New()

	ctx, cancel := context.WithCancel(context.Background())

	app := tview.NewApplication()

	v := &view{
		ctx:       ctx,
		cancel:    cancel,
		appCore:   appCore,
		app:       app,
		viewNames: []string{devicesView, activeView, eventsView},
		logger:    log,
	}

	root := tview.NewFlex().SetDirection(tview.FlexRow)
	pages := tview.NewPages()

	header := component.NewHeader(
		userIP,
		appCore.Conf().Discovery.Targets,
		v.viewNames,
		v.onActionSubmit,
	)
	deviceTable := component.NewDeviceTable("devices", v.openChat)
	activeTable := component.NewDeviceTable("active", v.openChat)
	eventTable := component.NewEventTable()
	chat := component.NewChat(v.onSend, v.onReconnect)

	pages.AddPage(devicesView, deviceTable.Primitive(), true, false)
	pages.AddPage(activeView, activeTable.Primitive(), true, false)
	pages.AddPage(eventsView, eventTable.Primitive(), true, false)
	pages.AddPage(chatView, chat.Primitive(), true, false)

	root.
		AddItem(header.Primitive(), 13, 1, false).
		AddItem(pages, 0, 1, true)

	eventUpdateChan := make(chan event.Event, 100)

	eventListenerId := appCore.RegisterEventListener(event.AnyEventType, eventUpdateChan)

	v.root = root
	v.pages = pages
	v.header = header
	v.deviceTable = deviceTable
	v.activeTable = activeTable
	v.eventTable = eventTable
	v.chat = chat
	v.eventUpdateChan = eventUpdateChan
	v.eventListenerId = eventListenerId

	v.focused = deviceTable.Primitive()
	v.focusedName = devicesView

	v.focus()

	return v
}

func (v *view) onActionSubmit(text string) {
	if text != "" {
		for _, name := range v.viewNames {
			if strings.HasPrefix(name, text) {
				v.switchTo(name)
				break
			}
		}
	}

	v.header.HideSwitchViewInput()
	v.focus()
}

func (v *view) switchTo(name string) {
	if name != v.focusedName {
		v.previousName = v.focusedName
	}

	v.focusedName = name

	switch name {
	case devicesView:
		v.focused = v.deviceTable.Primitive()
	case activeView:
		v.focused = v.activeTable.Primitive()
	case eventsView:
		v.focused = v.eventTable.Primitive()
	case chatView:
		v.focused = v.chat.Input()
	}
}

func (v *view) openChat(ip string) {
	hostname := ""

	if devices, err := v.appCore.Devices(); err == nil {
		for _, d := range devices {
			if d.IP == ip {
				hostname = d.Hostname
				break
			}
		}
	}

	s, ok := v.appCore.Stream(ip)

	v.chat.Open(ip, hostname, ok && s.IsConnected())
	v.refreshChat()

	v.switchTo(chatView)
	v.focus()
}

func (v *view) refreshChat() {
	peer := v.chat.Peer()

	if peer == "" {
		return
	}

	history, err := v.appCore.History(peer)

	if err != nil {
		v.logger.Error().Err(err).Str("ip", peer).Msg("failed to load transcript")
		return
	}

	v.chat.SetHistory(history)
}

func (v *view) onSend(ip, text string) {
	if err := v.appCore.Send(ip, text); err != nil {
		v.logger.Error().Err(err).Str("ip", ip).Msg("failed to send message")
		v.showError(err)
	}
}

func (v *view) onReconnect(ip string) {
	if err := v.appCore.Reconnect(ip); err != nil {
		v.logger.Error().Err(err).Str("ip", ip).Msg("failed to reconnect")
		v.showError(err)
	}
}

func (v *view) toggleScan() {
	if v.appCore.Scanning() {
		v.appCore.StopScan()
		return
	}

	v.header.SetScanStatus("scanning")
	v.appCore.StartScan()
}

func (v *view) showError(err error) {
	modal := component.NewErrorModal(err, func() {
		v.pages.RemovePage(modalPage)
		v.focus()
	})

	v.pages.AddPage(modalPage, modal.Primitive(), true, true)
	v.app.SetFocus(modal.Primitive())
}

func (v *view) bindKeys() {
	v.app.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		switch evt.Key() {
		case key.KeyCtrlC:
			v.stop()
			return nil
		case key.KeyCtrlS:
			v.toggleScan()
			return nil
		case key.KeyEsc:
			if v.header.IsShowingSwitchViewInput() {
				v.header.HideSwitchViewInput()
				v.focus()
				return nil
			}

			if v.focusedName == chatView {
				back := v.previousName

				if back == "" {
					back = devicesView
				}

				v.switchTo(back)
				v.focus()

				return nil
			}
		}

		if evt.Rune() == key.RuneColon {
			// colons are valid chat text
			if v.header.IsShowingSwitchViewInput() || v.focusedName == chatView {
				return evt
			}

			v.header.ShowSwitchViewInput()
			v.app.SetFocus(v.header.SwitchViewInput().Primitive())

			return nil
		}

		return evt
	})
}

func (v *view) focus() {
	extraLegend := map[string]string{}

	switch v.focusedName {
	case devicesView, activeView:
		extraLegend["enter"] = "chat with selected device"
	case chatView:
		extraLegend["ctrl+r"] = "reconnect"
		extraLegend["esc"] = "back"
	}

	v.header.ShowExtraLegend(extraLegend)

	v.pages.SwitchToPage(v.focusedName)
	v.app.SetFocus(v.focused)
}

func (v *view) stop() {
	v.appCore.RemoveEventListener(v.eventListenerId)
	v.cancel()

	if err := v.appCore.Stop(); err != nil {
		v.logger.Error().Err(err).Msg("failed to stop cleanly")
	}

	v.app.Stop()
}

func (v *view) refreshDevices() {
	devices, err := v.appCore.Devices()

	if err != nil {
		v.logger.Error().Err(err).Msg("failed to load devices")
		return
	}

	active := []*device.Device{}

	for _, d := range devices {
		if d.Status == device.StatusActive {
			active = append(active, d)
		}
	}

	v.deviceTable.UpdateTable(devices)
	v.activeTable.UpdateTable(active)
}

func (v *view) handleEvent(evt event.Event) {
	v.eventTable.UpdateTable(evt)

	switch evt.Type {
	case event.DeviceFoundEventType, event.DeviceActiveEventType:
		v.refreshDevices()
	case event.ScanProgressEventType:
		if progress, ok := evt.Payload.(float64); ok {
			v.header.SetScanStatus(component.FormatProgress(progress))
		}
	case event.ScanFinishedEventType:
		if status, ok := evt.Payload.(discovery.Status); ok {
			v.header.SetScanStatus(string(status))
		}
	case event.ScanFailedEventType:
		v.header.SetScanStatus("failed")
	case event.StreamConnectedEventType, event.StreamDisconnectedEventType:
		if payload, ok := evt.Payload.(event.StreamPayload); ok && payload.IP == v.chat.Peer() {
			v.chat.SetConnected(evt.Type == event.StreamConnectedEventType)
		}
	case event.MessageReceivedEventType, event.MessageSentEventType:
		v.refreshChat()
	case event.FatalErrorEventType:
		if err, ok := evt.Payload.(error); ok {
			v.showError(err)
		}
	}
}

func (v *view) processBackgroundEventUpdates() {
	go func() {
		for {
			select {
			case <-v.ctx.Done():
				return
			case evt := <-v.eventUpdateChan:
				v.app.QueueUpdateDraw(func() {
					v.handleEvent(evt)
				})
			}
		}
	}()
}

func (v *view) run() error {
	v.bindKeys()
	v.processBackgroundEventUpdates()
	v.refreshDevices()
	v.header.SetScanStatus("scanning")
	v.appCore.StartScan()
	return v.app.SetRoot(v.root, true).EnableMouse(true).Run()
}
