package calculation

import (
	"github.com/edooconnect/studycost/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// DefaultProjectionMonths is used when the caller does not pick a horizon.
	DefaultProjectionMonths = 24

	// Part-time work assumptions: an average student hourly wage and four
	// working weeks per month. The estimate is computed once and held
	// constant across every projected month.
	partTimeHourlyRate = 15
	weeksPerMonth      = 4
)

// CashFlowProjector expands monthly costs into a multi-month ledger given
// the student's income and savings.
type CashFlowProjector struct{}

// NewCashFlowProjector creates a cash-flow projector.
func NewCashFlowProjector() *CashFlowProjector {
	return &CashFlowProjector{}
}

// Project builds the month-by-month ledger. Tuition is due as a lump sum in
// month one; the cumulative balance is seeded with current savings. A
// non-positive duration yields an empty projection whose final balance is the
// savings untouched.
func (cp *CashFlowProjector) Project(cost *domain.CostResult, profile domain.Profile, duration int) *domain.CashFlowResult {
	if duration <= 0 {
		return &domain.CashFlowResult{
			Projection: []domain.CashFlowMonth{},
			Summary:    domain.CashFlowSummary{FinalBalance: profile.CurrentSavings},
		}
	}

	partTimeIncome := decimal.Zero
	if profile.WorkHours > 0 {
		partTimeIncome = decimal.NewFromInt(int64(profile.WorkHours * partTimeHourlyRate * weeksPerMonth))
	}
	inflow := profile.MonthlyIncome.Add(partTimeIncome)

	projection := make([]domain.CashFlowMonth, 0, duration)
	summary := domain.CashFlowSummary{}
	balance := profile.CurrentSavings

	for month := 1; month <= duration; month++ {
		tuitionPayment := decimal.Zero
		if month == 1 {
			tuitionPayment = cost.Totals.TuitionOnly
		}
		expenses := cost.Totals.Monthly.Add(tuitionPayment)
		netFlow := inflow.Sub(expenses)
		balance = balance.Add(netFlow)

		entry := domain.CashFlowMonth{
			Month:             month,
			Income:            inflow,
			Expenses:          expenses,
			NetFlow:           netFlow,
			CumulativeBalance: balance,
			TuitionPayment:    tuitionPayment,
			IsDeficit:         balance.IsNegative(),
		}
		projection = append(projection, entry)

		summary.TotalIncome = summary.TotalIncome.Add(inflow)
		summary.TotalExpenses = summary.TotalExpenses.Add(expenses)
		if entry.IsDeficit {
			summary.MonthsInDeficit++
		}
		if month == 1 || balance.LessThan(summary.MinimumBalance) {
			summary.MinimumBalance = balance
		}
	}
	summary.FinalBalance = balance

	return &domain.CashFlowResult{Projection: projection, Summary: summary}
}
