package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question. Enter accepts the default answer,
// which is "no".
type confirmModel struct {
	label      string
	answer     bool
	done       bool
	quitByUser bool
}

func newConfirmModel(label string) confirmModel {
	return confirmModel{label: label}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.yes):
		m.answer, m.done = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.enter):
		m.answer, m.done = false, true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	label := labelStyle.Render(m.label)

	if m.done {
		if m.answer {
			return label + "[y/N]: y\n"
		}
		return label + "[y/N]: n\n"
	}
	if m.quitByUser {
		return label + "[y/N]: \n"
	}

	return label + "[y/N]: "
}
