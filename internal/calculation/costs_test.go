package calculation

import (
	"testing"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/edooconnect/studycost/internal/refdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func torontoProfile() domain.Profile {
	return domain.Profile{
		Country:        "canada",
		Region:         "ontario",
		City:           "toronto",
		ProgramType:    domain.ProgramUndergraduate,
		HousingType:    "shared",
		TransportType:  "public",
		FamilyStatus:   domain.FamilySingle,
		Age:            25,
		English:        domain.EnglishSkills{Speaking: 8, Reading: 8, Listening: 8, Writing: 8},
		MonthlyIncome:  decimal.Zero,
		CurrentSavings: decimal.Zero,
		WorkHours:      0,
	}
}

func assertMoney(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(decimal.NewFromInt(want)), append(msgAndArgs, "want %d, got %s", want, got)...)
}

func TestCalculateTorontoBaseline(t *testing.T) {
	cc := NewCostCalculator(refdata.Default())

	cost, err := cc.Calculate(torontoProfile())
	require.NoError(t, err)

	assertMoney(t, 28000, cost.Breakdown.Tuition)
	assertMoney(t, 800, cost.Breakdown.Housing)
	assertMoney(t, 400, cost.Breakdown.Food)
	assertMoney(t, 120, cost.Breakdown.Transport)
	assertMoney(t, 80, cost.Breakdown.Insurance)
	assertMoney(t, 300, cost.Breakdown.Miscellaneous)
	assertMoney(t, 0, cost.Breakdown.EnglishSupport)

	assertMoney(t, 1700, cost.Totals.Monthly)
	assertMoney(t, 48400, cost.Totals.Yearly)
	assertMoney(t, 28000, cost.Totals.TuitionOnly)
	assertMoney(t, 20400, cost.Totals.LivingExpenses)

	assert.Equal(t, "toronto, ontario, canada", cost.Metadata.Location)
	assert.False(t, cost.Metadata.CalculatedAt.IsZero())
}

func TestCalculateBasicEnglishSurcharge(t *testing.T) {
	cc := NewCostCalculator(refdata.Default())

	profile := torontoProfile()
	profile.English = domain.EnglishSkills{Speaking: 3, Reading: 3, Listening: 3, Writing: 3}

	cost, err := cc.Calculate(profile)
	require.NoError(t, err)

	assertMoney(t, 200, cost.Breakdown.EnglishSupport)
	assertMoney(t, 1900, cost.Totals.Monthly, "Surcharge joins the monthly total")
	assert.True(t, cost.Adjustments.English.Equal(decimal.NewFromFloat(1.2)))
}

func TestCalculateProgramMultipliers(t *testing.T) {
	cc := NewCostCalculator(refdata.Default())

	tests := []struct {
		program domain.ProgramType
		tuition int64
	}{
		{domain.ProgramUndergraduate, 28000},
		{domain.ProgramGraduate, 36400},
		{domain.ProgramPhD, 22400},
		{domain.ProgramCertificate, 16800},
		{domain.ProgramLanguage, 11200},
		{domain.ProgramType("bootcamp"), 28000}, // unknown types use the base rate
	}

	for _, tt := range tests {
		t.Run(string(tt.program), func(t *testing.T) {
			profile := torontoProfile()
			profile.ProgramType = tt.program

			cost, err := cc.Calculate(profile)
			require.NoError(t, err)
			assertMoney(t, tt.tuition, cost.Breakdown.Tuition)
		})
	}
}

// Tuition must stay untouched by the personal multipliers for every family
// status and age bucket.
func TestTuitionInvariance(t *testing.T) {
	cc := NewCostCalculator(refdata.Default())

	for _, status := range []domain.FamilyStatus{domain.FamilySingle, domain.FamilyCouple, domain.FamilyFamily} {
		for _, age := range []int{19, 25, 30, 45} {
			profile := torontoProfile()
			profile.FamilyStatus = status
			profile.Age = age

			cost, err := cc.Calculate(profile)
			require.NoError(t, err)
			assertMoney(t, 28000, cost.Breakdown.Tuition, "family=%s age=%d", status, age)
		}
	}
}

func TestCalculateFamilyAndAgeAdjustments(t *testing.T) {
	cc := NewCostCalculator(refdata.Default())

	profile := torontoProfile()
	profile.FamilyStatus = domain.FamilyCouple
	profile.Age = 30 // 28-35 bucket, x1.1 on food and misc

	cost, err := cc.Calculate(profile)
	require.NoError(t, err)

	assertMoney(t, 1360, cost.Breakdown.Housing, "800 x 1.7")
	assertMoney(t, 748, cost.Breakdown.Food, "400 x 1.7 x 1.1")
	assertMoney(t, 204, cost.Breakdown.Transport, "120 x 1.7")
	assertMoney(t, 136, cost.Breakdown.Insurance, "80 x 1.7")
	assertMoney(t, 561, cost.Breakdown.Miscellaneous, "300 x 1.7 x 1.1")
	assert.True(t, cost.Adjustments.Family.Equal(decimal.NewFromFloat(1.7)))
	assert.True(t, cost.Adjustments.Age.Equal(decimal.NewFromFloat(1.1)))
}

func TestCalculatePreferenceFallbacks(t *testing.T) {
	cc := NewCostCalculator(refdata.Default())

	profile := torontoProfile()
	profile.HousingType = "penthouse"
	profile.TransportType = "helicopter"

	cost, err := cc.Calculate(profile)
	require.NoError(t, err)

	assertMoney(t, 800, cost.Breakdown.Housing, "Unrecognized housing falls back to shared")
	assertMoney(t, 120, cost.Breakdown.Transport, "Unrecognized transport falls back to public")
}

func TestCalculateLocationNotFound(t *testing.T) {
	cc := NewCostCalculator(refdata.Default())

	profile := torontoProfile()
	profile.City = "winnipeg"

	cost, err := cc.Calculate(profile)
	assert.Nil(t, cost, "No partial result")

	var notFound *refdata.LocationNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "winnipeg", notFound.City)
}

func TestCalculateDeterministic(t *testing.T) {
	cc := NewCostCalculator(refdata.Default())
	profile := torontoProfile()

	first, err := cc.Calculate(profile)
	require.NoError(t, err)
	second, err := cc.Calculate(profile)
	require.NoError(t, err)

	// Identical except for the embedded generation timestamp.
	first.Metadata.CalculatedAt = second.Metadata.CalculatedAt
	assert.Equal(t, first, second)
}
