package domain

import "github.com/shopspring/decimal"

// CashFlowMonth is one entry of the month-by-month ledger.
type CashFlowMonth struct {
	Month             int             `json:"month"`
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	NetFlow           decimal.Decimal `json:"netFlow"`
	CumulativeBalance decimal.Decimal `json:"cumulativeBalance"`
	TuitionPayment    decimal.Decimal `json:"tuitionPayment"`
	IsDeficit         bool            `json:"isDeficit"`
}

// CashFlowSummary aggregates a whole projection.
type CashFlowSummary struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	FinalBalance    decimal.Decimal `json:"finalBalance"`
	MonthsInDeficit int             `json:"monthsInDeficit"`
	MinimumBalance  decimal.Decimal `json:"minimumBalance"`
}

// CashFlowResult is the output of the cash-flow projector.
type CashFlowResult struct {
	Projection []CashFlowMonth `json:"projection"`
	Summary    CashFlowSummary `json:"summary"`
}
