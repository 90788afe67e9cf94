package calculation

import (
	"testing"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/edooconnect/studycost/internal/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine(refdata.Default())

	assert.NotNil(t, engine.Cost, "Should initialize cost calculator")
	assert.NotNil(t, engine.CashFlow, "Should initialize cash-flow projector")
	assert.NotNil(t, engine.Risk, "Should initialize risk analyzer")
	assert.NotNil(t, engine.Recommend, "Should initialize recommendation generator")
}

func TestEngineAnalyzeFullPipeline(t *testing.T) {
	engine := NewEngine(refdata.Default())

	analysis, err := engine.Analyze(torontoProfile())
	require.NoError(t, err)

	assertMoney(t, 48400, analysis.Cost.Totals.Yearly)
	assert.Len(t, analysis.CashFlow.Projection, DefaultProjectionMonths)
	assert.Equal(t, domain.RiskLevelHigh, analysis.Risk.OverallRisk)
	assert.NotEmpty(t, analysis.Recommendations)
}

func TestEngineAnalyzeAppliesDefaults(t *testing.T) {
	engine := NewEngine(refdata.Default())

	// A profile with only the destination answered still computes: age 25,
	// single household, default sub-skill scores.
	analysis, err := engine.Analyze(domain.Profile{
		Country: "canada",
		Region:  "ontario",
		City:    "toronto",
	})
	require.NoError(t, err)

	assertMoney(t, 200, analysis.Cost.Breakdown.EnglishSupport, "Default scores average to basic")
	assert.Equal(t, domain.FamilySingle, analysis.Cost.Metadata.FamilyStatus)
}

func TestEngineAnalyzeIncompleteProfile(t *testing.T) {
	engine := NewEngine(refdata.Default())

	_, err := engine.Analyze(domain.Profile{Country: "canada"})
	assert.ErrorIs(t, err, ErrIncompleteProfile)

	_, err = engine.Analyze(domain.Profile{City: "toronto"})
	assert.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestEngineAnalyzeUnknownLocation(t *testing.T) {
	engine := NewEngine(refdata.Default())

	profile := torontoProfile()
	profile.Country = "australia"

	analysis, err := engine.Analyze(profile)
	assert.Nil(t, analysis)
	var notFound *refdata.LocationNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestEngineDeterminism(t *testing.T) {
	engine := NewEngine(refdata.Default())
	profile := torontoProfile()

	first, err := engine.Analyze(profile)
	require.NoError(t, err)
	second, err := engine.Analyze(profile)
	require.NoError(t, err)

	first.Cost.Metadata.CalculatedAt = second.Cost.Metadata.CalculatedAt
	assert.Equal(t, first, second, "Identical inputs produce identical results")
}
