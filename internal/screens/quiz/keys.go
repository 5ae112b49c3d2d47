package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Answer  key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Next    key.Binding
	Prev    key.Binding
	Restart key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Answer: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9",
				"a", "b", "c", "d", "e", "f", "g", "h", "i"),
			key.WithHelp("1-9/a-i", "answer"),
		),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "move")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Next:    key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next")),
		Prev:    key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "previous")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	}
}

// optionIndex maps an answer key to a zero-based option index.
func optionIndex(k string) (int, bool) {
	if len(k) != 1 {
		return 0, false
	}
	switch c := k[0]; {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'i':
		return int(c - 'a'), true
	}
	return 0, false
}
