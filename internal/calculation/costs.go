// Package calculation implements the estimation engine: a deterministic
// four-stage pipeline that turns a wizard profile and the static reference
// tables into a cost breakdown, a cash-flow projection, a risk analysis and
// a prioritized recommendation list.
package calculation

import (
	"fmt"
	"time"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/edooconnect/studycost/internal/refdata"
	"github.com/shopspring/decimal"
)

// Program-type tuition multipliers. PhD positions are usually funded;
// certificate and language programs bill far below a full degree.
var programMultipliers = map[domain.ProgramType]decimal.Decimal{
	domain.ProgramUndergraduate: decimal.NewFromFloat(1.0),
	domain.ProgramGraduate:      decimal.NewFromFloat(1.3),
	domain.ProgramPhD:           decimal.NewFromFloat(0.8),
	domain.ProgramCertificate:   decimal.NewFromFloat(0.6),
	domain.ProgramLanguage:      decimal.NewFromFloat(0.4),
}

// Flat monthly english-support surcharge per proficiency level. The surcharge
// is never multiplied by the personal adjustment factors.
var englishSupportSurcharge = map[domain.EnglishLevel]decimal.Decimal{
	domain.EnglishBasic:        decimal.NewFromInt(200),
	domain.EnglishIntermediate: decimal.NewFromInt(100),
	domain.EnglishAdvanced:     decimal.Zero,
}

// CostCalculator resolves base costs from the reference table and applies
// the personal adjustment factors.
type CostCalculator struct {
	tables *refdata.Tables
	now    func() time.Time
}

// NewCostCalculator creates a cost calculator over the given tables.
func NewCostCalculator(tables *refdata.Tables) *CostCalculator {
	return &CostCalculator{tables: tables, now: time.Now}
}

// Calculate produces the full cost result for a normalized profile, or a
// *refdata.LocationNotFoundError when the destination has no table leaf.
func (cc *CostCalculator) Calculate(profile domain.Profile) (*domain.CostResult, error) {
	leaf, err := cc.tables.Costs.Resolve(profile.Country, profile.Region, profile.City)
	if err != nil {
		return nil, err
	}

	tuition := calculateTuition(leaf.Tuition, profile.ProgramType)

	housing := lookupWithFallback(leaf.Housing, profile.HousingType, refdata.FallbackHousing)
	transport := lookupWithFallback(leaf.Transport, profile.TransportType, refdata.FallbackTransport)

	englishLevel := profile.English.Level()
	adjustments := domain.CostAdjustments{
		Age:     factorOrBase(cc.tables.Factors.Age, domain.AgeBracketFor(profile.Age)),
		Family:  factorOrBase(cc.tables.Factors.FamilyStatus, profile.FamilyStatus),
		English: factorOrBase(cc.tables.Factors.EnglishLevel, englishLevel),
	}

	// Tuition is never adjusted by personal factors. Housing, transport and
	// insurance scale with household size only; food and misc also scale with
	// the age bucket. Each category is rounded to whole currency units.
	breakdown := domain.CostBreakdown{
		Tuition:        tuition,
		Housing:        housing.Mul(adjustments.Family).Round(0),
		Food:           leaf.Food.Monthly.Mul(adjustments.Family).Mul(adjustments.Age).Round(0),
		Transport:      transport.Mul(adjustments.Family).Round(0),
		Insurance:      leaf.Insurance.Monthly.Mul(adjustments.Family).Round(0),
		Miscellaneous:  leaf.Misc.Monthly.Mul(adjustments.Family).Mul(adjustments.Age).Round(0),
		EnglishSupport: englishSupportSurcharge[englishLevel],
	}

	monthly := breakdown.Housing.
		Add(breakdown.Food).
		Add(breakdown.Transport).
		Add(breakdown.Insurance).
		Add(breakdown.Miscellaneous).
		Add(breakdown.EnglishSupport)
	yearly := breakdown.Tuition.Add(monthly.Mul(decimal.NewFromInt(12)))

	return &domain.CostResult{
		Breakdown: breakdown,
		Totals: domain.CostTotals{
			Monthly:        monthly,
			Yearly:         yearly,
			TuitionOnly:    breakdown.Tuition,
			LivingExpenses: monthly.Mul(decimal.NewFromInt(12)),
		},
		Adjustments: adjustments,
		Metadata: domain.CostMetadata{
			Location:     fmt.Sprintf("%s, %s, %s", profile.City, profile.Region, profile.Country),
			ProgramType:  profile.ProgramType,
			FamilyStatus: profile.FamilyStatus,
			CalculatedAt: cc.now().UTC(),
		},
	}, nil
}

// calculateTuition applies the program-type multiplier to the average annual
// tuition. Unknown program types fall back to the undergraduate rate.
func calculateTuition(tuition refdata.TuitionRange, program domain.ProgramType) decimal.Decimal {
	multiplier, ok := programMultipliers[program]
	if !ok {
		multiplier = decimal.NewFromInt(1)
	}
	return tuition.Avg.Mul(multiplier).Round(0)
}

func lookupWithFallback(costs map[string]decimal.Decimal, preference, fallback string) decimal.Decimal {
	if cost, ok := costs[preference]; ok {
		return cost
	}
	return costs[fallback]
}

// factorOrBase keeps unrecognized profile values on the base multiplier
// instead of failing the whole request.
func factorOrBase[K comparable](factors map[K]decimal.Decimal, key K) decimal.Decimal {
	if f, ok := factors[key]; ok {
		return f
	}
	return decimal.NewFromInt(1)
}
