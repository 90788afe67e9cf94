package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// View renders the current question, or the summary once done.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Study Abroad Budget Wizard"))
	b.WriteString("\n")

	if m.done() {
		b.WriteString(m.renderSummary())
		return b.String()
	}

	current := m.steps[m.index]
	b.WriteString(stepCountStyle.Render(fmt.Sprintf("Step %d of %d", m.index+1, len(m.steps))))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(current.title))
	b.WriteString("\n\n")

	switch current.kind {
	case stepChoice:
		for i, choice := range current.choices {
			if i == m.cursor {
				b.WriteString(selectedChoiceStyle.Render("> " + choice))
			} else {
				b.WriteString(choiceStyle.Render(choice))
			}
			b.WriteString("\n")
		}
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter confirm (blank keeps the default)  -  esc quit"))
	return b.String()
}

func (m Model) renderSummary() string {
	if m.err != nil {
		return errorStyle.Render("Analysis failed: "+m.err.Error()) + "\n" +
			helpStyle.Render("press any key to exit")
	}
	if m.report == nil {
		return "No report available.\n"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Location", m.report.Costs.Location},
		{"Monthly expenses", money(m.report.Costs.Totals.Monthly)},
		{"First year total", money(m.report.Costs.Totals.Yearly)},
		{"Final balance", money(m.report.CashFlow.Summary.FinalBalance)},
		{"Months in deficit", strconv.Itoa(m.report.CashFlow.Summary.MonthsInDeficit)},
		{"Risk level", strings.ToUpper(string(m.report.RiskAnalysis.OverallRisk))},
		{"Risk score", fmt.Sprintf("%d/100", m.report.RiskAnalysis.Score)},
		{"Affordability", fmt.Sprintf("%d/100", m.report.Insights.AffordabilityIndex)},
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, row := range rows {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			summaryLabelStyle.Render(row.label),
			summaryValueStyle.Render(row.value))
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.report.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("Top recommendations"))
		b.WriteString("\n")
		limit := len(m.report.Recommendations)
		if limit > 3 {
			limit = 3
		}
		for _, rec := range m.report.Recommendations[:limit] {
			b.WriteString(choiceStyle.Render("- " + rec.Title))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("press any key to exit"))
	return b.String()
}

func money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
