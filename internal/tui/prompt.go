package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptModel struct {
	label      string
	hidden     bool
	input      textinput.Model
	submitted  bool
	quitByUser bool
}

func newPromptModel(label string, hidden bool) promptModel {
	input := textinput.New()
	input.Prompt = ": "
	input.Width = 60
	if hidden {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.Focus()

	return promptModel{
		label:  label,
		hidden: hidden,
		input:  input,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	label := labelStyle.Render(m.label)

	if m.submitted || m.quitByUser {
		// hidden answers never reach the scrollback
		if m.hidden {
			return label + ": \n"
		}
		return label + ": " + m.input.Value() + "\n"
	}

	return label + m.input.View() + "\n" + helpStyle.Render("  enter submit • esc quit") + "\n"
}

// value trims visible answers only. Hidden answers such as passwords are
// returned exactly as typed.
func (m promptModel) value() string {
	if m.hidden {
		return m.input.Value()
	}
	return strings.TrimSpace(m.input.Value())
}
