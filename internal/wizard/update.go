package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and advances the questionnaire.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

		if m.done() {
			// Any key dismisses the summary.
			return m, tea.Quit
		}
		return m.handleStepKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleStepKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.steps[m.index]

	switch current.kind {
	case stepChoice:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(current.choices)-1 {
				m.cursor++
			}
		case "enter":
			return m.submit(current.choices[m.cursor]), nil
		}
		return m, nil

	default:
		if msg.String() == "enter" {
			return m.submit(strings.TrimSpace(m.input.Value())), nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// submit applies the answer and moves to the next step. A rejected answer
// keeps the wizard on the current step with the error shown.
func (m Model) submit(value string) Model {
	if err := m.steps[m.index].apply(&m.profile, value); err != nil {
		m.err = err
		return m
	}

	m.err = nil
	m.index++
	m.cursor = 0
	m.input.Reset()
	if !m.done() {
		m.input.Placeholder = m.steps[m.index].placeholder
		return m
	}
	return m.finish()
}
