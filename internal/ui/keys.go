package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tabdo/internal/config"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Add      key.Binding
	Tap      key.Binding
	Removal  key.Binding
	ClearAll key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Up:       binding("move up", k.Up, "up"),
		Down:     binding("move down", k.Down, "down"),
		NextView: binding("next tab", k.NextView, "right", "tab"),
		PrevView: binding("prev tab", k.PrevView, "left", "shift+tab"),
		Add:      binding("add", k.Add),
		Tap:      binding("toggle/remove", k.Tap),
		Removal:  binding("removal mode", k.Removal),
		ClearAll: binding("delete all", k.ClearAll),
		Confirm:  binding("confirm", k.Confirm),
		Cancel:   binding("cancel", k.Cancel),
		Quit:     binding("quit", k.Quit, "ctrl+c"),
	}
}

// binding skips empty keys so an unset keymap entry never matches "".
func binding(desc string, keys ...string) key.Binding {
	var set []string
	for _, k := range keys {
		if k != "" {
			set = append(set, k)
		}
	}
	if len(set) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(set...),
		key.WithHelp(helpLabel(set[0]), desc),
	)
}

func helpLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevView, k.NextView, k.Add, k.Tap, k.Removal, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevView, k.NextView},
		{k.Add, k.Tap, k.Removal, k.ClearAll},
		{k.Confirm, k.Cancel, k.Quit},
	}
}
