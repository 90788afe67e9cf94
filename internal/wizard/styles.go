package wizard

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	stepCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	promptStyle = lipgloss.NewStyle().
			Bold(true)

	choiceStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedChoiceStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Bold(true).
				Foreground(lipgloss.Color("170"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Width(22)

	summaryValueStyle = lipgloss.NewStyle().
				Bold(true)
)
