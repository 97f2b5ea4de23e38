package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *bubble) Init() tea.Cmd {
	return nil
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		current := b.current()

		// typing a filter query
		if current.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.toggleMode):
			b.toggleMode()
			return b, nil
		case key.Matches(msg, b.keymap.back):
			if current.FilterState() == list.FilterApplied {
				break
			}

			b.previousState()
			return b, nil
		case key.Matches(msg, b.keymap.confirm):
			if b.state != groupsState {
				return b, nil
			}

			if item, ok := b.groupsC.SelectedItem().(*groupItem); ok {
				b.openGroup(item.name)
			}

			return b, nil
		}
	}

	var cmd tea.Cmd
	current := b.current()
	*current, cmd = current.Update(msg)

	return b, cmd
}
