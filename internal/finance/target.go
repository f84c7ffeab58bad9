// Package finance rolls forecast assumptions up into a minimum sales target.
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

type PeriodMode string

const (
	// PerMonth multiplies the desired profit by the number of periods.
	PerMonth PeriodMode = "per-month"
	// Total treats the desired profit as already covering every period.
	Total PeriodMode = "total"
)

func (m PeriodMode) Valid() bool {
	return m == PerMonth || m == Total
}

type Expense struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type TargetInput struct {
	ForecastedExpenses     float64    `json:"forecastedExpenses"`
	Expenses               []Expense  `json:"expenses,omitempty"`
	ContingencyPercent     float64    `json:"contingencyPercent"`
	DesiredProfitPerPeriod float64    `json:"desiredProfitPerPeriod"`
	PeriodCount            int        `json:"periodCount"`
	GrossMarginPercent     float64    `json:"grossMarginPercent"`
	TargetPeriodMode       PeriodMode `json:"targetPeriodMode"`
}

// Breakdown keeps the intermediate amounts of a target computation.
// MinimumSales is +Inf when the gross margin is not positive.
type Breakdown struct {
	ForecastedExpenses float64
	ContingencyAmount  float64
	TotalDesiredProfit float64
	TotalNeeded        float64
	MinimumSales       float64
}

func (b Breakdown) Valid() bool {
	return !math.IsInf(b.MinimumSales, 1)
}

// SumExpenses totals forecast expense lines.
func SumExpenses(expenses []Expense) float64 {
	total := decimal.Zero
	for _, e := range expenses {
		if !finite(e.Amount) {
			return sumFloat(expenses)
		}
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total.InexactFloat64()
}

// MinimumSalesTarget returns the revenue needed to cover expenses, the
// contingency and the desired profit at the given gross margin.
func MinimumSalesTarget(
	forecastedExpenses float64,
	contingencyPercent float64,
	desiredProfitPerPeriod float64,
	periodCount int,
	grossMarginPercent float64,
	mode PeriodMode,
) float64 {
	return compute(forecastedExpenses, contingencyPercent, desiredProfitPerPeriod, periodCount, grossMarginPercent, mode).MinimumSales
}

// Compute runs MinimumSalesTarget over in. Expense lines, when present,
// are added to ForecastedExpenses.
func Compute(in TargetInput) Breakdown {
	lines := SumExpenses(in.Expenses)
	expenses := in.ForecastedExpenses + lines
	if finite(in.ForecastedExpenses, lines) {
		expenses = decimal.NewFromFloat(in.ForecastedExpenses).Add(decimal.NewFromFloat(lines)).InexactFloat64()
	}
	return compute(expenses, in.ContingencyPercent, in.DesiredProfitPerPeriod, in.PeriodCount, in.GrossMarginPercent, in.TargetPeriodMode)
}

func compute(expenses, contingencyPercent, profit float64, periods int, margin float64, mode PeriodMode) Breakdown {
	if !finite(expenses, contingencyPercent, profit) {
		return computeFloat(expenses, contingencyPercent, profit, periods, margin, mode)
	}

	exp := decimal.NewFromFloat(expenses)
	contingency := exp.Mul(decimal.NewFromFloat(contingencyPercent))

	desired := decimal.NewFromFloat(profit)
	if mode == PerMonth {
		desired = desired.Mul(decimal.NewFromInt(int64(periods)))
	}

	needed := exp.Add(contingency).Add(desired)

	b := Breakdown{
		ForecastedExpenses: exp.InexactFloat64(),
		ContingencyAmount:  contingency.InexactFloat64(),
		TotalDesiredProfit: desired.InexactFloat64(),
		TotalNeeded:        needed.InexactFloat64(),
		MinimumSales:       math.Inf(1),
	}
	// NaN margins fail this check too.
	if margin > 0 {
		b.MinimumSales = needed.InexactFloat64() / margin
	}
	return b
}

// computeFloat handles non-finite inputs, which decimal cannot represent.
// The target is +Inf whenever the result is not a finite number.
func computeFloat(expenses, contingencyPercent, profit float64, periods int, margin float64, mode PeriodMode) Breakdown {
	contingency := expenses * contingencyPercent
	desired := profit
	if mode == PerMonth {
		desired *= float64(periods)
	}
	needed := expenses + contingency + desired

	b := Breakdown{
		ForecastedExpenses: expenses,
		ContingencyAmount:  contingency,
		TotalDesiredProfit: desired,
		TotalNeeded:        needed,
		MinimumSales:       math.Inf(1),
	}
	if margin > 0 {
		if v := needed / margin; finite(v) {
			b.MinimumSales = v
		}
	}
	return b
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func sumFloat(expenses []Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
