package calculation

import (
	"sort"
	"testing"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, profile domain.Profile) []domain.Recommendation {
	t.Helper()
	cost, cashFlow, risk := analyzeRisk(t, profile, DefaultProjectionMonths)
	return NewRecommendationGenerator().Generate(cost, cashFlow, risk, profile)
}

func findByCategory(recs []domain.Recommendation, cat domain.RecommendationCategory) (domain.Recommendation, bool) {
	for _, r := range recs {
		if r.Category == cat {
			return r, true
		}
	}
	return domain.Recommendation{}, false
}

func TestGenerateRiskMitigations(t *testing.T) {
	recs := generate(t, torontoProfile())

	var mitigations []domain.Recommendation
	for _, r := range recs {
		if r.Category == domain.CategoryRiskMitigation {
			mitigations = append(mitigations, r)
		}
	}
	require.Len(t, mitigations, 3, "One mitigation per triggered finding")

	// insufficient_funds is high severity, so its mitigation leads.
	assert.Equal(t, 1, mitigations[0].Priority)
	assert.Equal(t, "Mitigate: Insufficient Funds", mitigations[0].Title)
	assertMoney(t, 0, mitigations[0].EstimatedSavings)
}

func TestGenerateMitigationImpacts(t *testing.T) {
	profile := torontoProfile()
	cost := torontoCost(t, profile)

	// 10% of the 1700 monthly total.
	assertMoney(t, 170, mitigationImpact(domain.RiskNegativeCashFlow, cost))
	// Potential income, signalled as a negative amount.
	assertMoney(t, -800, mitigationImpact(domain.RiskNoIncome, cost))
	// 15% of the 800 housing cost.
	assertMoney(t, 120, mitigationImpact(domain.RiskExpensiveLocation, cost))
	assertMoney(t, 0, mitigationImpact(domain.RiskInsufficientFunds, cost))
}

func TestGenerateHousingOptimization(t *testing.T) {
	profile := torontoProfile()
	profile.HousingType = "individual" // 1500 of a 2400 monthly total

	recs := generate(t, profile)

	rec, ok := findByCategory(recs, domain.CategoryCostOptimization)
	require.True(t, ok, "Housing above 40%% of monthly spend must trigger the optimization")
	assert.Equal(t, 2, rec.Priority)
	assertMoney(t, 300, rec.EstimatedSavings, "20%% of the housing cost")
}

func TestGenerateHousingOptimizationNotTriggeredAtOrBelowShare(t *testing.T) {
	// Shared housing in ottawa is 600 of a 1575 monthly total (the basic
	// english surcharge pads the non-housing side), which is under 40%.
	profile := torontoProfile()
	profile.City = "ottawa"
	profile.English = domain.EnglishSkills{Speaking: 3, Reading: 3, Listening: 3, Writing: 3}

	cost := torontoCost(t, profile)
	share := cost.Breakdown.Housing.Div(cost.Totals.Monthly)
	require.True(t, share.LessThanOrEqual(decimal.NewFromFloat(0.4)), "fixture must stay at or below the 40%% line")

	recs := generate(t, profile)
	_, ok := findByCategory(recs, domain.CategoryCostOptimization)
	assert.False(t, ok)
}

func TestGeneratePartTimeWorkSuggestion(t *testing.T) {
	profile := torontoProfile() // zero work hours

	rec, ok := findByCategory(generate(t, profile), domain.CategoryIncomeGeneration)
	require.True(t, ok)
	assert.Equal(t, 2, rec.Priority)
	assertMoney(t, -1200, rec.EstimatedSavings, "Additional income signal")

	profile.WorkHours = 20
	_, ok = findByCategory(generate(t, profile), domain.CategoryIncomeGeneration)
	assert.False(t, ok, "20 weekly hours or more suppresses the suggestion")
}

func TestGeneratePreparationForBasicEnglish(t *testing.T) {
	profile := torontoProfile()
	profile.English = domain.EnglishSkills{Speaking: 3, Reading: 3, Listening: 3, Writing: 3}

	rec, ok := findByCategory(generate(t, profile), domain.CategoryPreparation)
	require.True(t, ok)
	assert.Equal(t, 1, rec.Priority)
	assertMoney(t, 150, rec.EstimatedSavings)
}

func TestGenerateSortedByPriorityStable(t *testing.T) {
	profile := torontoProfile()
	profile.English = domain.EnglishSkills{Speaking: 3, Reading: 3, Listening: 3, Writing: 3}

	recs := generate(t, profile)
	require.NotEmpty(t, recs)

	assert.True(t, sort.SliceIsSorted(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	}), "Output must be non-decreasing in priority")

	// Among the priority-2 entries, insertion order survives the sort:
	// risk mitigations first, then housing/income suggestions.
	var priorityTwo []domain.RecommendationCategory
	for _, r := range recs {
		if r.Priority == 2 {
			priorityTwo = append(priorityTwo, r.Category)
		}
	}
	require.NotEmpty(t, priorityTwo)
	assert.Equal(t, domain.CategoryRiskMitigation, priorityTwo[0])
}
