// Package output renders analysis results for the command line.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/edooconnect/studycost/internal/domain"
)

// ReportGenerator renders a premium report in various formats.
type ReportGenerator struct {
	w io.Writer
}

// NewReportGenerator creates a generator writing to stdout.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{w: os.Stdout}
}

// NewReportGeneratorTo creates a generator writing to the given writer.
func NewReportGeneratorTo(w io.Writer) *ReportGenerator {
	return &ReportGenerator{w: w}
}

// GenerateReport renders the report in the specified format.
func (rg *ReportGenerator) GenerateReport(report *domain.PremiumReport, format string) error {
	switch format {
	case "console":
		return rg.GenerateConsoleReport(report)
	case "json":
		return rg.GenerateJSONReport(report)
	case "csv":
		return rg.GenerateCSVReport(report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport renders a detailed console report.
func (rg *ReportGenerator) GenerateConsoleReport(report *domain.PremiumReport) error {
	fmt.Fprintln(rg.w, "=================================================================")
	fmt.Fprintln(rg.w, "STUDY ABROAD COST ANALYSIS")
	fmt.Fprintln(rg.w, "=================================================================")
	fmt.Fprintf(rg.w, "Location: %s\n", report.Costs.Location)
	fmt.Fprintln(rg.w)

	fmt.Fprintln(rg.w, "MONTHLY COST BREAKDOWN")
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	b := report.Costs.Breakdown
	fmt.Fprintf(rg.w, "  Housing:          %s\n", FormatCurrency(b.Housing))
	fmt.Fprintf(rg.w, "  Food:             %s\n", FormatCurrency(b.Food))
	fmt.Fprintf(rg.w, "  Transport:        %s\n", FormatCurrency(b.Transport))
	fmt.Fprintf(rg.w, "  Insurance:        %s\n", FormatCurrency(b.Insurance))
	fmt.Fprintf(rg.w, "  Miscellaneous:    %s\n", FormatCurrency(b.Miscellaneous))
	fmt.Fprintf(rg.w, "  English Support:  %s\n", FormatCurrency(b.EnglishSupport))
	fmt.Fprintf(rg.w, "  MONTHLY TOTAL:    %s\n", FormatCurrency(report.Costs.Totals.Monthly))
	fmt.Fprintln(rg.w)

	fmt.Fprintln(rg.w, "YEARLY TOTALS")
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	fmt.Fprintf(rg.w, "  Tuition:          %s\n", FormatCurrency(report.Costs.Totals.TuitionOnly))
	fmt.Fprintf(rg.w, "  Living Expenses:  %s\n", FormatCurrency(report.Costs.Totals.LivingExpenses))
	fmt.Fprintf(rg.w, "  FIRST YEAR TOTAL: %s\n", FormatCurrency(report.Costs.Totals.Yearly))
	fmt.Fprintln(rg.w)

	fmt.Fprintln(rg.w, "CASH FLOW PROJECTION")
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	s := report.CashFlow.Summary
	fmt.Fprintf(rg.w, "  Months Projected:  %d\n", len(report.CashFlow.Projection))
	fmt.Fprintf(rg.w, "  Total Income:      %s\n", FormatCurrency(s.TotalIncome))
	fmt.Fprintf(rg.w, "  Total Expenses:    %s\n", FormatCurrency(s.TotalExpenses))
	fmt.Fprintf(rg.w, "  Final Balance:     %s\n", FormatCurrency(s.FinalBalance))
	fmt.Fprintf(rg.w, "  Minimum Balance:   %s\n", FormatCurrency(s.MinimumBalance))
	fmt.Fprintf(rg.w, "  Months in Deficit: %d\n", s.MonthsInDeficit)
	fmt.Fprintln(rg.w)

	fmt.Fprintf(rg.w, "RISK ASSESSMENT: %s (score %d/100)\n",
		strings.ToUpper(string(report.RiskAnalysis.OverallRisk)), report.RiskAnalysis.Score)
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	if len(report.RiskAnalysis.Findings) == 0 {
		fmt.Fprintln(rg.w, "  No risks identified.")
	}
	for _, finding := range report.RiskAnalysis.Findings {
		fmt.Fprintf(rg.w, "  [%s] %s\n", strings.ToUpper(string(finding.Severity)), finding.Title)
		fmt.Fprintf(rg.w, "        %s\n", finding.Description)
	}
	fmt.Fprintln(rg.w)

	fmt.Fprintln(rg.w, "RECOMMENDATIONS")
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	for i, rec := range report.Recommendations {
		fmt.Fprintf(rg.w, "  %d. %s\n", i+1, rec.Title)
		fmt.Fprintf(rg.w, "     %s\n", rec.Description)
		if !rec.EstimatedSavings.IsZero() {
			fmt.Fprintf(rg.w, "     Estimated monthly impact: %s\n", FormatCurrency(rec.EstimatedSavings))
		}
	}
	fmt.Fprintln(rg.w)

	fmt.Fprintln(rg.w, "INSIGHTS")
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
	fmt.Fprintf(rg.w, "  Savings Needed:      %s\n", FormatCurrency(report.Insights.SavingsNeeded))
	fmt.Fprintf(rg.w, "  Months To Save:      %d\n", report.Insights.MonthsToSave)
	fmt.Fprintf(rg.w, "  Cost Per Month:      %s\n", FormatCurrency(report.Insights.CostPerMonth))
	fmt.Fprintf(rg.w, "  Affordability Index: %d/100\n", report.Insights.AffordabilityIndex)

	return nil
}

// GenerateJSONReport renders the full report as indented JSON.
func (rg *ReportGenerator) GenerateJSONReport(report *domain.PremiumReport) error {
	enc := json.NewEncoder(rg.w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// GenerateCSVReport renders the monthly projection as CSV.
func (rg *ReportGenerator) GenerateCSVReport(report *domain.PremiumReport) error {
	writer := csv.NewWriter(rg.w)
	defer writer.Flush()

	header := []string{"month", "income", "expenses", "tuitionPayment", "netFlow", "cumulativeBalance", "isDeficit"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, month := range report.CashFlow.Projection {
		row := []string{
			strconv.Itoa(month.Month),
			month.Income.StringFixed(2),
			month.Expenses.StringFixed(2),
			month.TuitionPayment.StringFixed(2),
			month.NetFlow.StringFixed(2),
			month.CumulativeBalance.StringFixed(2),
			strconv.FormatBool(month.IsDeficit),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}

// FormatCurrency formats a decimal as a dollar amount.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
