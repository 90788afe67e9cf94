package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostBreakdown holds the adjusted monthly-equivalent cost per category.
// Tuition is annual; every other category is a monthly amount.
type CostBreakdown struct {
	Tuition        decimal.Decimal `json:"tuition"`
	Housing        decimal.Decimal `json:"housing"`
	Food           decimal.Decimal `json:"food"`
	Transport      decimal.Decimal `json:"transport"`
	Insurance      decimal.Decimal `json:"insurance"`
	Miscellaneous  decimal.Decimal `json:"miscellaneous"`
	EnglishSupport decimal.Decimal `json:"englishSupport"`
}

// CostTotals aggregates the breakdown. Monthly excludes tuition; Yearly is
// tuition plus twelve months of living expenses.
type CostTotals struct {
	Monthly        decimal.Decimal `json:"monthly"`
	Yearly         decimal.Decimal `json:"yearly"`
	TuitionOnly    decimal.Decimal `json:"tuitionOnly"`
	LivingExpenses decimal.Decimal `json:"livingExpenses"`
}

// CostAdjustments records the three personal multipliers that were applied.
// The english multiplier is recorded for transparency but only drives the
// flat english-support surcharge, never a category multiplication.
type CostAdjustments struct {
	Age     decimal.Decimal `json:"age"`
	Family  decimal.Decimal `json:"family"`
	English decimal.Decimal `json:"english"`
}

// CostMetadata describes the inputs a cost result was computed from.
type CostMetadata struct {
	Location     string       `json:"location"`
	ProgramType  ProgramType  `json:"programType"`
	FamilyStatus FamilyStatus `json:"familyStatus"`
	CalculatedAt time.Time    `json:"calculatedAt"`
}

// CostResult is the output of the cost calculator. It is created fresh per
// request and never mutated after being returned.
type CostResult struct {
	Breakdown   CostBreakdown   `json:"breakdown"`
	Totals      CostTotals      `json:"totals"`
	Adjustments CostAdjustments `json:"adjustments"`
	Metadata    CostMetadata    `json:"metadata"`
}
