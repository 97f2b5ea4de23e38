package tui

func (b *bubble) View() string {
	return listStyle.Render(b.current().View())
}
