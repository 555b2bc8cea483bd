package component

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/robgonnella/sockchat/internal/ui/style"
)

// rows above the first data row: column headers and a spacer
const headerRows = 2

func createTable(title string, columnHeaders []string) *tview.Table {
	table := tview.NewTable().
		SetBorders(false).
		SetFixed(headerRows, 0).
		SetSelectable(true, false).
		SetSelectedStyle(style.StyleDefault.Background(style.ColorLightGreen).Bold(true))

	table.SetBorder(true)
	table.SetBorderPadding(1, 1, 2, 2)

	for c, h := range columnHeaders {
		cell := newCell(h, style.ColorPurple)
		cell.SetSelectable(false)
		cell.SetAttributes(tcell.AttrBold)
		table.SetCell(0, c, cell)

		spacer := newCell("", style.ColorPurple)
		spacer.SetSelectable(false)
		table.SetCell(1, c, spacer)
	}

	table.SetBlurFunc(func() {
		table.SetBorderColor(style.ColorDefault)
	})

	table.SetFocusFunc(func() {
		table.SetBorderColor(style.ColorPurple)
	})

	table.SetTitle(" " + title + " ")
	table.SetTitleColor(style.ColorLightGreen)

	return table
}

func newCell(text string, color tcell.Color) *tview.TableCell {
	cell := tview.NewTableCell(text)
	cell.SetExpansion(1)
	cell.SetAlign(tview.AlignLeft)
	cell.SetTextColor(color)
	return cell
}

// clearRows removes every data row, keeping the headers
func clearRows(table *tview.Table) {
	for table.GetRowCount() > headerRows {
		table.RemoveRow(headerRows)
	}
}

// selectedText returns the text in column col of the selected data row
func selectedText(table *tview.Table, col int) (string, bool) {
	row, _ := table.GetSelection()

	if row < headerRows || row >= table.GetRowCount() {
		return "", false
	}

	cell := table.GetCell(row, col)

	if cell == nil || cell.Text == "" {
		return "", false
	}

	return cell.Text, true
}
