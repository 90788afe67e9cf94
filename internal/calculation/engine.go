package calculation

import (
	"errors"
	"fmt"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/edooconnect/studycost/internal/refdata"
)

// ErrIncompleteProfile is returned when a profile is missing the answers the
// engine cannot compute without. Validation of everything else is the
// caller's job; numeric zeros are valid inputs the risk analyzer flags.
var ErrIncompleteProfile = errors.New("incomplete profile")

// Engine runs the four pipeline stages in dependency order. It holds only
// read-only reference data, so one engine is safely shared across concurrent
// requests without locking.
type Engine struct {
	Cost      *CostCalculator
	CashFlow  *CashFlowProjector
	Risk      *RiskAnalyzer
	Recommend *RecommendationGenerator
}

// NewEngine creates an engine over the given reference tables.
func NewEngine(tables *refdata.Tables) *Engine {
	return &Engine{
		Cost:      NewCostCalculator(tables),
		CashFlow:  NewCashFlowProjector(),
		Risk:      NewRiskAnalyzer(),
		Recommend: NewRecommendationGenerator(),
	}
}

// Analyze runs the full pipeline with the default projection horizon.
func (e *Engine) Analyze(profile domain.Profile) (*domain.Analysis, error) {
	return e.AnalyzeWithDuration(profile, DefaultProjectionMonths)
}

// AnalyzeWithDuration runs cost calculation, cash-flow projection, risk
// analysis and recommendation generation, each stage consuming the previous
// stage's output. It fails fast on an incomplete destination or an unknown
// location and never returns a partial result.
func (e *Engine) AnalyzeWithDuration(profile domain.Profile, months int) (*domain.Analysis, error) {
	if profile.Country == "" || profile.City == "" {
		return nil, fmt.Errorf("%w: destination country and city are required", ErrIncompleteProfile)
	}
	profile = profile.Normalize()

	cost, err := e.Cost.Calculate(profile)
	if err != nil {
		return nil, err
	}

	cashFlow := e.CashFlow.Project(cost, profile, months)
	risk := e.Risk.Analyze(cost, cashFlow, profile)
	recommendations := e.Recommend.Generate(cost, cashFlow, risk, profile)

	return &domain.Analysis{
		Cost:            *cost,
		CashFlow:        *cashFlow,
		Risk:            *risk,
		Recommendations: recommendations,
	}, nil
}
