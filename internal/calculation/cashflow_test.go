package calculation

import (
	"testing"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/edooconnect/studycost/internal/refdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func torontoCost(t *testing.T, profile domain.Profile) *domain.CostResult {
	t.Helper()
	cost, err := NewCostCalculator(refdata.Default()).Calculate(profile)
	require.NoError(t, err)
	return cost
}

func TestProjectFirstMonthCarriesTuition(t *testing.T) {
	profile := torontoProfile()
	cost := torontoCost(t, profile)

	result := NewCashFlowProjector().Project(cost, profile, DefaultProjectionMonths)
	require.Len(t, result.Projection, 24)

	first := result.Projection[0]
	assertMoney(t, 29700, first.Expenses, "1700 monthly + 28000 tuition")
	assertMoney(t, 28000, first.TuitionPayment)
	assert.True(t, first.IsDeficit)

	second := result.Projection[1]
	assertMoney(t, 1700, second.Expenses)
	assertMoney(t, 0, second.TuitionPayment)
}

func TestProjectPartTimeIncomeConstant(t *testing.T) {
	profile := torontoProfile()
	profile.MonthlyIncome = decimal.NewFromInt(500)
	profile.WorkHours = 10 // 10h x $15 x 4 weeks = 600/month
	cost := torontoCost(t, profile)

	result := NewCashFlowProjector().Project(cost, profile, 12)

	for _, month := range result.Projection {
		assertMoney(t, 1100, month.Income, "month %d", month.Month)
	}
	assertMoney(t, 13200, result.Summary.TotalIncome)
}

// cumulativeBalance[m] == cumulativeBalance[m-1] + netFlow[m], seeded with
// current savings.
func TestProjectBalanceConservation(t *testing.T) {
	profile := torontoProfile()
	profile.CurrentSavings = decimal.NewFromInt(10000)
	profile.MonthlyIncome = decimal.NewFromInt(1200)
	cost := torontoCost(t, profile)

	result := NewCashFlowProjector().Project(cost, profile, 36)
	require.Len(t, result.Projection, 36)

	previous := profile.CurrentSavings
	for _, month := range result.Projection {
		assert.True(t, month.CumulativeBalance.Equal(previous.Add(month.NetFlow)),
			"month %d: %s != %s + %s", month.Month, month.CumulativeBalance, previous, month.NetFlow)
		assert.Equal(t, month.CumulativeBalance.IsNegative(), month.IsDeficit, "month %d", month.Month)
		previous = month.CumulativeBalance
	}
	assert.True(t, result.Summary.FinalBalance.Equal(previous))
}

func TestProjectSummaryAggregates(t *testing.T) {
	profile := torontoProfile()
	profile.CurrentSavings = decimal.NewFromInt(50000)
	profile.MonthlyIncome = decimal.NewFromInt(2000)
	cost := torontoCost(t, profile)

	result := NewCashFlowProjector().Project(cost, profile, 24)

	// Net +300/month after month one's tuition hit of -27700.
	assertMoney(t, 48000, result.Summary.TotalIncome)
	assertMoney(t, 68800, result.Summary.TotalExpenses, "1700 x 24 + 28000")
	assertMoney(t, 29200, result.Summary.FinalBalance)
	assertMoney(t, 22300, result.Summary.MinimumBalance, "Low point is month one")
	assert.Equal(t, 0, result.Summary.MonthsInDeficit)
}

func TestProjectZeroDuration(t *testing.T) {
	profile := torontoProfile()
	profile.CurrentSavings = decimal.NewFromInt(1234)
	cost := torontoCost(t, profile)

	for _, duration := range []int{0, -5} {
		result := NewCashFlowProjector().Project(cost, profile, duration)

		assert.Empty(t, result.Projection, "duration=%d", duration)
		assertMoney(t, 1234, result.Summary.FinalBalance, "Final balance is the untouched savings")
		assertMoney(t, 0, result.Summary.TotalIncome)
		assertMoney(t, 0, result.Summary.TotalExpenses)
		assertMoney(t, 0, result.Summary.MinimumBalance)
		assert.Equal(t, 0, result.Summary.MonthsInDeficit)
	}
}

func TestProjectDeficitCount(t *testing.T) {
	profile := torontoProfile() // zero income, zero savings
	cost := torontoCost(t, profile)

	result := NewCashFlowProjector().Project(cost, profile, 24)

	assert.Equal(t, 24, result.Summary.MonthsInDeficit, "Every month is under water")
	assert.True(t, result.Summary.MinimumBalance.Equal(result.Summary.FinalBalance),
		"Monotonically declining balance bottoms out at the end")
}
