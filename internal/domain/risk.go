package domain

// RiskType tags the individual threshold rules the analyzer can trigger.
type RiskType string

const (
	RiskInsufficientFunds RiskType = "insufficient_funds"
	RiskNegativeCashFlow  RiskType = "negative_cash_flow"
	RiskNoIncome          RiskType = "no_income"
	RiskExpensiveLocation RiskType = "expensive_location"
)

// RiskSeverity tiers an individual finding.
type RiskSeverity string

const (
	SeverityHigh   RiskSeverity = "high"
	SeverityMedium RiskSeverity = "medium"
	SeverityLow    RiskSeverity = "low"
)

// RiskLevel is the overall tier for a whole analysis.
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
)

// RiskFinding is one triggered rule with its user-facing text.
type RiskFinding struct {
	Type           RiskType     `json:"type"`
	Severity       RiskSeverity `json:"severity"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Recommendation string       `json:"recommendation"`
}

// RiskResult is the output of the risk analyzer. Score is always in [0, 100].
type RiskResult struct {
	Findings    []RiskFinding `json:"risks"`
	OverallRisk RiskLevel     `json:"overallRisk"`
	Score       int           `json:"riskScore"`
}
