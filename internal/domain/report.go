package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Analysis bundles the output of all four engine stages for one profile.
type Analysis struct {
	Cost            CostResult       `json:"cost"`
	CashFlow        CashFlowResult   `json:"cashFlow"`
	Risk            RiskResult       `json:"risk"`
	Recommendations []Recommendation `json:"recommendations"`
}

// ReportCosts is the cost view shared by both report tiers.
type ReportCosts struct {
	Breakdown CostBreakdown `json:"breakdown"`
	Totals    CostTotals    `json:"totals"`
	Location  string        `json:"location"`
}

// ReportSummary is the headline view shared by both report tiers.
type ReportSummary struct {
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	YearlyTotal     decimal.Decimal `json:"yearlyTotal"`
	RiskLevel       RiskLevel       `json:"riskLevel"`
	RiskScore       int             `json:"riskScore"`
}

// BasicReport is the free tier: cost breakdown, headline summary and the top
// three recommendations only.
type BasicReport struct {
	Costs                ReportCosts      `json:"costs"`
	Summary              ReportSummary    `json:"summary"`
	BasicRecommendations []Recommendation `json:"basicRecommendations"`
}

// Insights are the derived figures only premium reports carry.
type Insights struct {
	SavingsNeeded      decimal.Decimal `json:"savingsNeeded"`
	MonthsToSave       int             `json:"monthsToSave"`
	CostPerMonth       decimal.Decimal `json:"costPerMonth"`
	AffordabilityIndex int             `json:"affordabilityIndex"`
}

// ReportMetadata describes when and for whom a report was generated.
type ReportMetadata struct {
	GeneratedAt        time.Time `json:"generatedAt"`
	IsPremium          bool      `json:"isPremium"`
	WizardCompleteness int       `json:"wizardCompleteness"`
}

// PremiumReport extends the basic view with the full projection, the full
// risk findings, every recommendation and the derived insights.
type PremiumReport struct {
	BasicReport
	CashFlow        CashFlowResult   `json:"cashFlow"`
	RiskAnalysis    RiskResult       `json:"riskAnalysis"`
	Recommendations []Recommendation `json:"recommendations"`
	Insights        Insights         `json:"insights"`
	Metadata        ReportMetadata   `json:"metadata"`
}
