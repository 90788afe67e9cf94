// Package wizard implements the interactive questionnaire that collects a
// profile step by step and renders the resulting analysis.
package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/edooconnect/studycost/internal/calculation"
	"github.com/edooconnect/studycost/internal/domain"
	"github.com/edooconnect/studycost/internal/refdata"
)

type stepKind int

const (
	stepText stepKind = iota
	stepChoice
)

// step is one wizard question. Text steps accept a blank answer, which
// leaves the field at its documented default.
type step struct {
	title       string
	placeholder string
	kind        stepKind
	choices     []string
	apply       func(*domain.Profile, string) error
}

// Model is the wizard application state.
type Model struct {
	steps   []step
	index   int
	input   textinput.Model
	cursor  int
	profile domain.Profile
	engine  *calculation.Engine
	report  *domain.PremiumReport
	err     error

	width  int
	height int
}

// NewModel creates the wizard over the given reference tables.
func NewModel(tables *refdata.Tables) Model {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 32

	m := Model{
		steps:  buildSteps(tables),
		input:  input,
		engine: calculation.NewEngine(tables),
	}
	m.input.Placeholder = m.steps[0].placeholder
	return m
}

// Init starts the cursor blink (required by tea.Model interface).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Report returns the generated analysis, nil until the wizard finishes.
func (m Model) Report() *domain.PremiumReport {
	return m.report
}

// Err returns the terminal error, if the analysis failed.
func (m Model) Err() error {
	return m.err
}

// Run executes the wizard as a full-screen program and returns the report.
func Run(tables *refdata.Tables) (*domain.PremiumReport, error) {
	final, err := tea.NewProgram(NewModel(tables), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", final)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func buildSteps(tables *refdata.Tables) []step {
	return []step{
		{
			title:       "How old are you?",
			placeholder: strconv.Itoa(domain.DefaultAge),
			kind:        stepText,
			apply:       applyInt(1, 120, func(p *domain.Profile, v int) { p.Age = v }),
		},
		{
			title:       "English speaking score (1-10)?",
			placeholder: strconv.Itoa(domain.DefaultEnglishScore),
			kind:        stepText,
			apply:       applyInt(1, 10, func(p *domain.Profile, v int) { p.English.Speaking = v }),
		},
		{
			title:       "English reading score (1-10)?",
			placeholder: strconv.Itoa(domain.DefaultEnglishScore),
			kind:        stepText,
			apply:       applyInt(1, 10, func(p *domain.Profile, v int) { p.English.Reading = v }),
		},
		{
			title:       "English listening score (1-10)?",
			placeholder: strconv.Itoa(domain.DefaultEnglishScore),
			kind:        stepText,
			apply:       applyInt(1, 10, func(p *domain.Profile, v int) { p.English.Listening = v }),
		},
		{
			title:       "English writing score (1-10)?",
			placeholder: strconv.Itoa(domain.DefaultEnglishScore),
			kind:        stepText,
			apply:       applyInt(1, 10, func(p *domain.Profile, v int) { p.English.Writing = v }),
		},
		{
			title:   "Who is traveling with you?",
			kind:    stepChoice,
			choices: []string{"single", "couple", "family"},
			apply: func(p *domain.Profile, v string) error {
				p.FamilyStatus = domain.FamilyStatus(v)
				return nil
			},
		},
		{
			title:   "What program are you enrolling in?",
			kind:    stepChoice,
			choices: []string{"undergraduate", "graduate", "phd", "certificate", "language"},
			apply: func(p *domain.Profile, v string) error {
				p.ProgramType = domain.ProgramType(v)
				return nil
			},
		},
		{
			title:       "Expected monthly income while studying?",
			placeholder: "0",
			kind:        stepText,
			apply:       applyMoney(func(p *domain.Profile, v decimal.Decimal) { p.MonthlyIncome = v }),
		},
		{
			title:       "Current savings?",
			placeholder: "0",
			kind:        stepText,
			apply:       applyMoney(func(p *domain.Profile, v decimal.Decimal) { p.CurrentSavings = v }),
		},
		{
			title:   "Where are you going to study?",
			kind:    stepChoice,
			choices: tables.Costs.Locations(),
			apply: func(p *domain.Profile, v string) error {
				parts := strings.Split(v, ", ")
				if len(parts) != 3 {
					return fmt.Errorf("malformed location %q", v)
				}
				p.City, p.Region, p.Country = parts[0], parts[1], parts[2]
				return nil
			},
		},
		{
			title:   "What housing do you prefer?",
			kind:    stepChoice,
			choices: []string{"shared", "dormitory", "individual", "homestay"},
			apply: func(p *domain.Profile, v string) error {
				p.HousingType = v
				return nil
			},
		},
		{
			title:   "How will you get around?",
			kind:    stepChoice,
			choices: []string{"public", "bicycle", "car", "walking"},
			apply: func(p *domain.Profile, v string) error {
				p.TransportType = v
				return nil
			},
		},
		{
			title:       "Planned part-time work hours per week?",
			placeholder: "0",
			kind:        stepText,
			apply:       applyInt(0, 40, func(p *domain.Profile, v int) { p.WorkHours = v }),
		},
	}
}

// applyInt builds an apply function for an optional bounded integer answer.
func applyInt(min, max int, set func(*domain.Profile, int)) func(*domain.Profile, string) error {
	return func(p *domain.Profile, value string) error {
		if value == "" {
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%q is not a number", value)
		}
		if n < min || n > max {
			return fmt.Errorf("value must be between %d and %d", min, max)
		}
		set(p, n)
		return nil
	}
}

// applyMoney builds an apply function for an optional non-negative amount.
func applyMoney(set func(*domain.Profile, decimal.Decimal)) func(*domain.Profile, string) error {
	return func(p *domain.Profile, value string) error {
		if value == "" {
			return nil
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("%q is not an amount", value)
		}
		if amount.IsNegative() {
			return fmt.Errorf("amount cannot be negative")
		}
		set(p, amount)
		return nil
	}
}

func (m Model) done() bool {
	return m.index >= len(m.steps)
}

// finish runs the full analysis once the last answer is in.
func (m Model) finish() Model {
	analysis, err := m.engine.Analyze(m.profile)
	if err != nil {
		m.err = err
		return m
	}
	m.report = calculation.BuildPremiumReport(analysis, m.profile, true, time.Now().UTC())
	return m
}
