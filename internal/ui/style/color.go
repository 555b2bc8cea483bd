package style

import "github.com/gdamore/tcell/v2"

/**
 * Styles and Colors!
 */

const (
	ColorDefault     = tcell.ColorDefault
	ColorBlack       = tcell.ColorBlack
	ColorWhite       = tcell.ColorWhite
	ColorPurple      = tcell.ColorMediumPurple
	ColorGreen       = tcell.ColorSeaGreen
	ColorLightGreen  = tcell.ColorLightSeaGreen
	ColorMediumGreen = tcell.ColorMediumSeaGreen
	ColorOrange      = tcell.ColorOrange
	ColorDimGrey     = tcell.ColorDimGrey
	ColorRed         = tcell.ColorIndianRed
)

// color tags for tview dynamic color text
const (
	TagOutbound = "[mediumpurple]"
	TagInbound  = "[lightseagreen]"
	TagDim      = "[dimgrey]"
	TagReset    = "[-]"
)

var (
	StyleDefault = tcell.StyleDefault
)
