package component

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/robgonnella/sockchat/internal/transcript"
	"github.com/robgonnella/sockchat/internal/ui/key"
	"github.com/robgonnella/sockchat/internal/ui/style"
)

// Chat shows the transcript for a single peer with an input to send
// messages. ctrl+r reconnects the peer's stream.
type Chat struct {
	root       *tview.Flex
	status     *tview.TextView
	transcript *tview.TextView
	input      *tview.InputField
	peer       string
	hostname   string
}

// NewChat returns a new instance of Chat
func NewChat(onSend func(ip, text string), onReconnect func(ip string)) *Chat {
	c := &Chat{}

	c.status = tview.NewTextView().SetDynamicColors(true)
	c.status.SetBorderPadding(0, 0, 1, 1)

	c.transcript = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)

	c.transcript.SetBorder(true)
	c.transcript.SetBorderPadding(0, 0, 1, 1)
	c.transcript.SetTitleColor(style.ColorLightGreen)

	c.input = tview.NewInputField()
	c.input.SetFieldStyle(style.StyleDefault)
	c.input.SetBorder(true)
	c.input.SetBorderPadding(0, 0, 1, 1)
	c.input.SetPlaceholder("type a message and press enter")
	c.input.SetPlaceholderStyle(style.StyleDefault.Dim(true))

	c.input.SetFocusFunc(func() {
		c.input.SetBorderColor(style.ColorPurple)
	})

	c.input.SetBlurFunc(func() {
		c.input.SetBorderColor(style.ColorDefault)
	})

	c.input.SetDoneFunc(func(k tcell.Key) {
		if k != key.KeyEnter || c.peer == "" {
			return
		}

		text := strings.TrimSpace(c.input.GetText())

		if text == "" {
			return
		}

		onSend(c.peer, text)
		c.input.SetText("")
	})

	c.input.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		if evt.Key() == key.KeyCtrlR && c.peer != "" {
			onReconnect(c.peer)
			return nil
		}

		return evt
	})

	c.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(c.status, 1, 1, false).
		AddItem(c.transcript, 0, 1, false).
		AddItem(c.input, 3, 1, true)

	return c
}

// Primitive returns the root primitive for Chat
func (c *Chat) Primitive() tview.Primitive {
	return c.root
}

// Input returns the primitive that should receive focus
func (c *Chat) Input() tview.Primitive {
	return c.input
}

// Peer returns the ip of the device being chatted with
func (c *Chat) Peer() string {
	return c.peer
}

// Open switches the chat to a new peer
func (c *Chat) Open(ip, hostname string, connected bool) {
	c.peer = ip
	c.hostname = hostname

	title := ip

	if hostname != "" {
		title = fmt.Sprintf("%s (%s)", hostname, ip)
	}

	c.transcript.SetTitle(" " + title + " ")
	c.transcript.Clear()
	c.input.SetText("")
	c.SetConnected(connected)
}

// SetConnected updates the connection status line
func (c *Chat) SetConnected(connected bool) {
	if connected {
		c.status.SetText("[mediumseagreen]connected[-]")
		return
	}

	c.status.SetText("[indianred]disconnected[-] " + style.TagDim + "ctrl+r to reconnect" + style.TagReset)
}

// SetHistory renders the transcript
func (c *Chat) SetHistory(messages []*transcript.Message) {
	b := strings.Builder{}

	for _, m := range messages {
		b.WriteString(c.format(m))
		b.WriteString("\n")
	}

	c.transcript.SetText(b.String())
	c.transcript.ScrollToEnd()
}

func (c *Chat) format(m *transcript.Message) string {
	from := style.TagOutbound + "you" + style.TagReset

	if m.Direction == transcript.Inbound {
		name := m.Peer

		if c.hostname != "" {
			name = c.hostname
		}

		from = style.TagInbound + tview.Escape(name) + style.TagReset
	}

	return fmt.Sprintf(
		"%s%s%s %s: %s",
		style.TagDim,
		m.Timestamp.Local().Format("15:04:05"),
		style.TagReset,
		from,
		tview.Escape(m.Text),
	)
}
