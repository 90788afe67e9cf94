package calculation

import (
	"time"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/shopspring/decimal"
)

const basicRecommendationLimit = 3

// Insights derives the premium-only figures from a finished analysis.
func Insights(cost *domain.CostResult, profile domain.Profile) domain.Insights {
	savingsNeeded := cost.Totals.Yearly.Sub(profile.CurrentSavings)
	if savingsNeeded.IsNegative() {
		savingsNeeded = decimal.Zero
	}

	// Months needed to close the savings gap at the current income rate.
	// Income is floored at one currency unit so the division stays defined.
	incomeFloor := profile.MonthlyIncome
	if incomeFloor.LessThan(decimal.NewFromInt(1)) {
		incomeFloor = decimal.NewFromInt(1)
	}
	monthsToSave := int(savingsNeeded.Div(incomeFloor).Ceil().IntPart())

	return domain.Insights{
		SavingsNeeded:      savingsNeeded,
		MonthsToSave:       monthsToSave,
		CostPerMonth:       cost.Totals.Monthly,
		AffordabilityIndex: AffordabilityIndex(cost, profile),
	}
}

// AffordabilityIndex compares total available resources (savings plus one
// year of income) to the yearly total, capped at 100.
func AffordabilityIndex(cost *domain.CostResult, profile domain.Profile) int {
	if !cost.Totals.Yearly.IsPositive() {
		return 100
	}
	available := profile.CurrentSavings.Add(profile.MonthlyIncome.Mul(decimal.NewFromInt(12)))
	index := int(available.Div(cost.Totals.Yearly).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	if index > 100 {
		return 100
	}
	return index
}

// BuildBasicReport assembles the free tier: breakdown, totals, headline
// summary and the top three recommendations.
func BuildBasicReport(analysis *domain.Analysis) *domain.BasicReport {
	top := analysis.Recommendations
	if len(top) > basicRecommendationLimit {
		top = top[:basicRecommendationLimit]
	}

	return &domain.BasicReport{
		Costs: domain.ReportCosts{
			Breakdown: analysis.Cost.Breakdown,
			Totals:    analysis.Cost.Totals,
			Location:  analysis.Cost.Metadata.Location,
		},
		Summary: domain.ReportSummary{
			MonthlyExpenses: analysis.Cost.Totals.Monthly,
			YearlyTotal:     analysis.Cost.Totals.Yearly,
			RiskLevel:       analysis.Risk.OverallRisk,
			RiskScore:       analysis.Risk.Score,
		},
		BasicRecommendations: top,
	}
}

// BuildPremiumReport assembles the paid tier on top of the basic view.
func BuildPremiumReport(analysis *domain.Analysis, profile domain.Profile, isPremium bool, generatedAt time.Time) *domain.PremiumReport {
	return &domain.PremiumReport{
		BasicReport:     *BuildBasicReport(analysis),
		CashFlow:        analysis.CashFlow,
		RiskAnalysis:    analysis.Risk,
		Recommendations: analysis.Recommendations,
		Insights:        Insights(&analysis.Cost, profile),
		Metadata: domain.ReportMetadata{
			GeneratedAt:        generatedAt.UTC(),
			IsPremium:          isPremium,
			WizardCompleteness: WizardCompleteness(profile),
		},
	}
}

// WizardCompleteness is the percentage of wizard sections with an answer.
// Sections mirror the wizard's step order: personal, family, program,
// finances, destination, housing, transport and work plans.
func WizardCompleteness(profile domain.Profile) int {
	sections := []bool{
		profile.Age > 0,
		profile.FamilyStatus != "",
		profile.ProgramType != "",
		profile.MonthlyIncome.IsPositive() || profile.CurrentSavings.IsPositive(),
		profile.Country != "" && profile.Region != "" && profile.City != "",
		profile.HousingType != "",
		profile.TransportType != "",
		profile.WorkHours > 0,
	}

	answered := 0
	for _, ok := range sections {
		if ok {
			answered++
		}
	}
	return int(decimal.NewFromInt(int64(answered * 100)).
		Div(decimal.NewFromInt(int64(len(sections)))).
		Round(0).IntPart())
}
