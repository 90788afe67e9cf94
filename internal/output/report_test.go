package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edooconnect/studycost/internal/calculation"
	"github.com/edooconnect/studycost/internal/domain"
	"github.com/edooconnect/studycost/internal/refdata"
)

func buildReport(t *testing.T) *domain.PremiumReport {
	t.Helper()
	profile := domain.Profile{
		Country:        "canada",
		Region:         "ontario",
		City:           "toronto",
		ProgramType:    domain.ProgramUndergraduate,
		HousingType:    "shared",
		TransportType:  "public",
		FamilyStatus:   domain.FamilySingle,
		Age:            20,
		English:        domain.EnglishSkills{Speaking: 9, Reading: 9, Listening: 9, Writing: 9},
		MonthlyIncome:  decimal.NewFromInt(1100),
		CurrentSavings: decimal.NewFromInt(10000),
	}

	engine := calculation.NewEngine(refdata.Default())
	analysis, err := engine.Analyze(profile)
	require.NoError(t, err)
	return calculation.BuildPremiumReport(analysis, profile, true, time.Now().UTC())
}

func TestGenerateConsoleReport(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportGeneratorTo(&buf).GenerateReport(buildReport(t), "console")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "STUDY ABROAD COST ANALYSIS")
	assert.Contains(t, out, "MONTHLY TOTAL:    $1700.00")
	assert.Contains(t, out, "FIRST YEAR TOTAL: $48400.00")
	assert.Contains(t, out, "RISK ASSESSMENT:")
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "Affordability Index:")
}

func TestGenerateJSONReport(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportGeneratorTo(&buf).GenerateReport(buildReport(t), "json")
	require.NoError(t, err)

	var decoded domain.PremiumReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "toronto, ontario, canada", decoded.Costs.Location)
}

func TestGenerateCSVReport(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportGeneratorTo(&buf).GenerateReport(buildReport(t), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 25, "Header plus twenty-four projection rows")
	assert.Equal(t, "month,income,expenses,tuitionPayment,netFlow,cumulativeBalance,isDeficit", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,1100.00,"), "First row should carry the tuition month")
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportGeneratorTo(&buf).GenerateReport(buildReport(t), "pdf")
	assert.Error(t, err)
}
