package calculation

import (
	"fmt"
	"sort"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	housingShareCeiling = 0.4 // housing above 40% of monthly spend
	lowWorkHours        = 20
)

// RecommendationGenerator derives prioritized action items from the cost,
// cash-flow and risk outputs.
type RecommendationGenerator struct{}

// NewRecommendationGenerator creates a recommendation generator.
func NewRecommendationGenerator() *RecommendationGenerator {
	return &RecommendationGenerator{}
}

// Generate produces the recommendation list sorted ascending by priority.
// The sort is stable so ties keep their insertion order.
func (rg *RecommendationGenerator) Generate(cost *domain.CostResult, cashFlow *domain.CashFlowResult, risk *domain.RiskResult, profile domain.Profile) []domain.Recommendation {
	recommendations := []domain.Recommendation{}

	for _, finding := range risk.Findings {
		recommendations = append(recommendations, domain.Recommendation{
			Category:         domain.CategoryRiskMitigation,
			Priority:         priorityForSeverity(finding.Severity),
			Title:            fmt.Sprintf("Mitigate: %s", finding.Title),
			Description:      finding.Recommendation,
			EstimatedSavings: mitigationImpact(finding.Type, cost),
		})
	}

	housingCeiling := cost.Totals.Monthly.Mul(decimal.NewFromFloat(housingShareCeiling))
	if cost.Breakdown.Housing.GreaterThan(housingCeiling) {
		recommendations = append(recommendations, domain.Recommendation{
			Category:         domain.CategoryCostOptimization,
			Priority:         2,
			Title:            "Optimize Housing Costs",
			Description:      "Housing represents more than 40% of your monthly expenses. Consider cheaper options.",
			EstimatedSavings: cost.Breakdown.Housing.Mul(decimal.NewFromFloat(0.2)).Round(0),
		})
	}

	if profile.WorkHours < lowWorkHours {
		recommendations = append(recommendations, domain.Recommendation{
			Category:    domain.CategoryIncomeGeneration,
			Priority:    2,
			Title:       "Increase Income with Part-Time Work",
			Description: "Working 20 hours per week could generate significant additional income.",
			// Negative value: additional income, not a cost cut.
			EstimatedSavings: decimal.NewFromInt(-1200),
		})
	}

	if profile.English.Level() == domain.EnglishBasic {
		recommendations = append(recommendations, domain.Recommendation{
			Category:         domain.CategoryPreparation,
			Priority:         1,
			Title:            "Improve English Before Departure",
			Description:      "Investing in English classes before traveling can reduce academic support costs.",
			EstimatedSavings: decimal.NewFromInt(150),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority < recommendations[j].Priority
	})

	return recommendations
}

func priorityForSeverity(severity domain.RiskSeverity) int {
	switch severity {
	case domain.SeverityHigh:
		return 1
	case domain.SeverityMedium:
		return 2
	default:
		return 3
	}
}

// mitigationImpact estimates the monetary effect of acting on a finding.
// A negative value signals potential income.
func mitigationImpact(riskType domain.RiskType, cost *domain.CostResult) decimal.Decimal {
	switch riskType {
	case domain.RiskNegativeCashFlow:
		return cost.Totals.Monthly.Mul(decimal.NewFromFloat(0.1)).Round(0)
	case domain.RiskNoIncome:
		return decimal.NewFromInt(-800)
	case domain.RiskExpensiveLocation:
		return cost.Breakdown.Housing.Mul(decimal.NewFromFloat(0.15)).Round(0)
	default:
		return decimal.Zero
	}
}
