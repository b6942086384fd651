package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/teletext/internal/nav"
)

type keyMap struct {
	Quit        key.Binding
	Back        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	NextSubPage key.Binding
	PrevSubPage key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "back"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next page"),
		),
		NextSubPage: key.NewBinding(
			key.WithKeys("up", "+"),
			key.WithHelp("↑/+", "next sub-page"),
		),
		PrevSubPage: key.NewBinding(
			key.WithKeys("down", "-"),
			key.WithHelp("↓/-", "previous sub-page"),
		),
	}
}

// commandFor translates a key press into a navigation command. Keys
// without a binding produce no command.
func (k keyMap) commandFor(msg tea.KeyMsg) (nav.Command, bool) {
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return nav.Digit{Value: int(s[0] - '0')}, true
	}
	switch {
	case key.Matches(msg, k.Back):
		return nav.Back{}, true
	case key.Matches(msg, k.PrevPage):
		return nav.PrevPage{}, true
	case key.Matches(msg, k.NextPage):
		return nav.NextPage{}, true
	case key.Matches(msg, k.NextSubPage):
		return nav.NextSubPage{}, true
	case key.Matches(msg, k.PrevSubPage):
		return nav.PrevSubPage{}, true
	}
	return nil, false
}
