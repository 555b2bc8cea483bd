package component

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/robgonnella/sockchat/internal/ui/key"
	"github.com/robgonnella/sockchat/internal/ui/style"
)

type SwitchViewInput struct {
	root     *tview.InputField
	onSubmit func(text string)
}

func NewSwitchViewInput(viewNames []string, onSubmit func(text string)) *SwitchViewInput {
	placeholder := "Enter view: " + strings.Join(viewNames, ", ")

	input := tview.NewInputField()
	input.SetFieldStyle(style.StyleDefault.Dim(true))
	input.SetBorderPadding(0, 0, 1, 1)
	input.SetPlaceholderStyle(style.StyleDefault.Dim(true))

	input.SetAutocompleteFunc(func(current string) []string {
		if current == "" {
			return nil
		}

		matches := []string{}

		for _, name := range viewNames {
			if strings.HasPrefix(name, current) {
				matches = append(matches, name)
			}
		}

		return matches
	})

	input.SetFocusFunc(func() {
		input.SetBorder(true)
		input.SetBorderColor(style.ColorPurple)
		input.SetPlaceholder(placeholder)
	})

	input.SetBlurFunc(func() {
		input.SetBorder(false)
		input.SetPlaceholder("")
	})

	ai := &SwitchViewInput{
		root:     input,
		onSubmit: onSubmit,
	}

	ai.root.SetDoneFunc(func(k tcell.Key) {
		if k == key.KeyEnter {
			ai.onSubmit(strings.TrimSpace(ai.root.GetText()))
			ai.root.SetText("")
		}
	})

	return ai
}

func (i *SwitchViewInput) Primitive() tview.Primitive {
	return i.root
}
