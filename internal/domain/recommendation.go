package domain

import "github.com/shopspring/decimal"

// RecommendationCategory groups recommendations by the kind of action they ask for.
type RecommendationCategory string

const (
	CategoryRiskMitigation   RecommendationCategory = "risk_mitigation"
	CategoryCostOptimization RecommendationCategory = "cost_optimization"
	CategoryIncomeGeneration RecommendationCategory = "income_generation"
	CategoryPreparation      RecommendationCategory = "preparation"
)

// Recommendation is one prioritized action item. Priority 1 is highest.
// A negative EstimatedSavings signals additional income rather than a cost cut.
type Recommendation struct {
	Category         RecommendationCategory `json:"category"`
	Priority         int                    `json:"priority"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	EstimatedSavings decimal.Decimal        `json:"estimatedSavings"`
}
