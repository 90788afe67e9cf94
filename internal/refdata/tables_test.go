package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesValidate(t *testing.T) {
	tables := Default()
	assert.NoError(t, tables.Validate(), "Built-in dataset must satisfy all invariants")
}

func TestResolveKnownLocation(t *testing.T) {
	tables := Default()

	leaf, err := tables.Costs.Resolve("canada", "ontario", "toronto")
	require.NoError(t, err)
	assert.True(t, leaf.Tuition.Avg.Equal(decimal.NewFromInt(28000)))
	assert.True(t, leaf.Housing["shared"].Equal(decimal.NewFromInt(800)))
}

func TestResolveUnknownLocation(t *testing.T) {
	tables := Default()

	tests := []struct {
		name                  string
		country, region, city string
	}{
		{"unknown country", "atlantis", "ontario", "toronto"},
		{"unknown region", "canada", "quebec", "toronto"},
		{"unknown city", "canada", "ontario", "hamilton"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf, err := tables.Costs.Resolve(tt.country, tt.region, tt.city)
			assert.Nil(t, leaf, "No partial result on failed lookup")
			var notFound *LocationNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.city, notFound.City)
		})
	}
}

func TestValidateRejectsMissingFallbacks(t *testing.T) {
	tables := Default()
	leaf, err := tables.Costs.Resolve("canada", "ontario", "toronto")
	require.NoError(t, err)

	delete(leaf.Housing, FallbackHousing)
	assert.ErrorContains(t, tables.Validate(), `fallback key "shared"`)
}

func TestValidateRejectsNonBaseMultipliers(t *testing.T) {
	tables := Default()
	tables.Factors.FamilyStatus[domain.FamilySingle] = decimal.NewFromFloat(1.1)

	assert.ErrorContains(t, tables.Validate(), `"single" must be 1.0`)
}

func TestValidateRejectsMissingCategory(t *testing.T) {
	tables := Default()
	leaf, err := tables.Costs.Resolve("usa", "california", "los-angeles")
	require.NoError(t, err)

	leaf.Insurance.Monthly = decimal.Zero
	assert.ErrorContains(t, tables.Validate(), "insurance category is missing")
}

func TestLocationsSorted(t *testing.T) {
	locations := Default().Costs.Locations()

	assert.Len(t, locations, 5)
	assert.Contains(t, locations, "toronto, ontario, canada")
	assert.IsIncreasing(t, locations)
}

func TestLoadFromYAML(t *testing.T) {
	src := `
costs:
  canada:
    ontario:
      toronto:
        tuition: {min: 15000, max: 45000, avg: 28000}
        housing: {shared: 800, individual: 1500}
        food: {monthly: 400}
        transport: {public: 120, bicycle: 30}
        insurance: {monthly: 80}
        misc: {monthly: 300}
factors:
  age:
    "18-22": 0.9
    "23-27": 1.0
    "28-35": 1.1
    "36+": 1.2
  familyStatus:
    single: 1.0
    couple: 1.7
    family: 2.3
  englishLevel:
    basic: 1.2
    intermediate: 1.1
    advanced: 1.0
`
	path := filepath.Join(t.TempDir(), "costs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	tables, err := Load(path)
	require.NoError(t, err)

	leaf, err := tables.Costs.Resolve("canada", "ontario", "toronto")
	require.NoError(t, err)
	assert.True(t, leaf.Food.Monthly.Equal(decimal.NewFromInt(400)))
	assert.True(t, tables.Factors.FamilyStatus[domain.FamilyCouple].Equal(decimal.NewFromFloat(1.7)))
}

func TestLoadRejectsInvalidDataset(t *testing.T) {
	src := `
costs:
  canada:
    ontario:
      toronto:
        tuition: {min: 15000, max: 45000, avg: 28000}
        housing: {individual: 1500}
        food: {monthly: 400}
        transport: {public: 120}
        insurance: {monthly: 80}
        misc: {monthly: 300}
factors:
  age: {"18-22": 0.9, "23-27": 1.0, "28-35": 1.1, "36+": 1.2}
  familyStatus: {single: 1.0, couple: 1.7, family: 2.3}
  englishLevel: {basic: 1.2, intermediate: 1.1, advanced: 1.0}
`
	path := filepath.Join(t.TempDir(), "costs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "validation failed")
}

func TestLoadOrDefaultWithoutPath(t *testing.T) {
	tables, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.NotNil(t, tables)
}
