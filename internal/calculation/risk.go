package calculation

import (
	"fmt"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/shopspring/decimal"
)

// Threshold rules the analyzer evaluates. Each rule fires at most once.
var (
	savingsCoverageFloor    = decimal.NewFromFloat(0.5) // savings below half the yearly total
	deficitMonthsThreshold  = 6
	expensiveMonthlyCeiling = decimal.NewFromInt(2500)
)

// Risk-score bands. The savings-ratio bands are first-match: exactly one of
// the three applies, evaluated top to bottom. Making them cumulative would
// silently shift scores, so keep the chain.
var (
	ratioFullCoverage = decimal.NewFromInt(1)
	ratioHalfCoverage = decimal.NewFromFloat(0.5)
	ratioLowCoverage  = decimal.NewFromFloat(0.3)
)

const (
	baseRiskScore              = 50
	longDeficitMonths          = 12
	minRiskScore, maxRiskScore = 0, 100
)

// RiskAnalyzer scores the cost and cash-flow outcome against threshold rules.
// It is pure and deterministic; numeric edge cases such as zero income are
// valid inputs that become findings, never errors.
type RiskAnalyzer struct{}

// NewRiskAnalyzer creates a risk analyzer.
func NewRiskAnalyzer() *RiskAnalyzer {
	return &RiskAnalyzer{}
}

// Analyze evaluates every rule independently and derives the overall tier
// and the bounded risk score.
func (ra *RiskAnalyzer) Analyze(cost *domain.CostResult, cashFlow *domain.CashFlowResult, profile domain.Profile) *domain.RiskResult {
	findings := []domain.RiskFinding{}

	if profile.CurrentSavings.LessThan(cost.Totals.Yearly.Mul(savingsCoverageFloor)) {
		findings = append(findings, domain.RiskFinding{
			Type:           domain.RiskInsufficientFunds,
			Severity:       domain.SeverityHigh,
			Title:          "Insufficient Funds",
			Description:    "Your current savings cover less than 50% of the estimated total cost.",
			Recommendation: "Consider saving more before starting, or look into financing options.",
		})
	}

	if cashFlow.Summary.MonthsInDeficit > deficitMonthsThreshold {
		findings = append(findings, domain.RiskFinding{
			Type:           domain.RiskNegativeCashFlow,
			Severity:       domain.SeverityMedium,
			Title:          "Prolonged Negative Cash Flow",
			Description:    fmt.Sprintf("You will run a deficit for %d months.", cashFlow.Summary.MonthsInDeficit),
			Recommendation: "Look for part-time work opportunities or cut optional expenses.",
		})
	}

	if profile.MonthlyIncome.IsZero() {
		findings = append(findings, domain.RiskFinding{
			Type:           domain.RiskNoIncome,
			Severity:       domain.SeverityMedium,
			Title:          "No Regular Income",
			Description:    "You have no regular income planned during your studies.",
			Recommendation: "Consider part-time work or scholarships to reduce financial pressure.",
		})
	}

	if cost.Totals.Monthly.GreaterThan(expensiveMonthlyCeiling) {
		findings = append(findings, domain.RiskFinding{
			Type:           domain.RiskExpensiveLocation,
			Severity:       domain.SeverityLow,
			Title:          "Expensive Location",
			Description:    "The selected city has above-average living costs.",
			Recommendation: "Evaluate cheaper housing options or alternative cities.",
		})
	}

	return &domain.RiskResult{
		Findings:    findings,
		OverallRisk: overallRisk(findings),
		Score:       ra.score(cost, cashFlow, profile),
	}
}

// overallRisk is high with any high-severity finding, medium with more than
// one medium-severity finding, low otherwise.
func overallRisk(findings []domain.RiskFinding) domain.RiskLevel {
	var high, medium int
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityHigh:
			high++
		case domain.SeverityMedium:
			medium++
		}
	}
	switch {
	case high > 0:
		return domain.RiskLevelHigh
	case medium > 1:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

func (ra *RiskAnalyzer) score(cost *domain.CostResult, cashFlow *domain.CashFlowResult, profile domain.Profile) int {
	score := baseRiskScore

	// A yearly total of zero cannot happen with validated tables; the guard
	// keeps the ratio defined for arbitrary inputs.
	savingsRatio := decimal.Zero
	if cost.Totals.Yearly.IsPositive() {
		savingsRatio = profile.CurrentSavings.Div(cost.Totals.Yearly)
	}

	if savingsRatio.GreaterThan(ratioFullCoverage) {
		score += 20
	} else if savingsRatio.GreaterThan(ratioHalfCoverage) {
		score += 10
	} else if savingsRatio.LessThan(ratioLowCoverage) {
		score -= 20
	}

	if cashFlow.Summary.FinalBalance.IsPositive() {
		score += 15
	}
	if cashFlow.Summary.MonthsInDeficit > longDeficitMonths {
		score -= 15
	}

	if score < minRiskScore {
		return minRiskScore
	}
	if score > maxRiskScore {
		return maxRiskScore
	}
	return score
}
