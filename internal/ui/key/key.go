package key

import "github.com/gdamore/tcell/v2"

/**
 * Keys and Runes!
 */

const (
	RuneColon = ':'
)

const (
	KeyCtrlC = tcell.KeyCtrlC
	KeyCtrlR = tcell.KeyCtrlR
	KeyCtrlS = tcell.KeyCtrlS
	KeyEnter = tcell.KeyEnter
	KeyEsc   = tcell.KeyEsc
)
