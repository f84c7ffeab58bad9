package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimumSalesTarget_ZeroMarginIsInfinite(t *testing.T) {
	got := MinimumSalesTarget(100000, 0.1, 5000, 6, 0, PerMonth)

	assert.True(t, math.IsInf(got, 1))
	assert.False(t, math.IsNaN(got))
}

func TestMinimumSalesTarget_NegativeMarginIsInfinite(t *testing.T) {
	assert.True(t, math.IsInf(MinimumSalesTarget(100000, 0.1, 5000, 6, -0.2, Total), 1))
	assert.True(t, math.IsInf(MinimumSalesTarget(0, 0, 0, 0, 0, Total), 1))
}

func TestMinimumSalesTarget_Modes(t *testing.T) {
	tests := []struct {
		name string
		mode PeriodMode
		want float64
	}{
		// (100000 + 10000 + 5000*6) / 0.4
		{name: "per month", mode: PerMonth, want: 350000},
		// (100000 + 10000 + 5000) / 0.4
		{name: "total", mode: Total, want: 287500},
		{name: "unknown mode behaves as total", mode: "weekly", want: 287500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MinimumSalesTarget(100000, 0.1, 5000, 6, 0.4, tt.mode), 1e-6)
		})
	}
}

func TestCompute_Breakdown(t *testing.T) {
	b := Compute(TargetInput{
		ForecastedExpenses: 50000,
		Expenses: []Expense{
			{Name: "rent", Amount: 30000},
			{Name: "utilities", Amount: 20000},
		},
		ContingencyPercent:     0.1,
		DesiredProfitPerPeriod: 5000,
		PeriodCount:            6,
		GrossMarginPercent:     0.4,
		TargetPeriodMode:       PerMonth,
	})

	assert.Equal(t, 100000.0, b.ForecastedExpenses)
	assert.Equal(t, 10000.0, b.ContingencyAmount)
	assert.Equal(t, 30000.0, b.TotalDesiredProfit)
	assert.Equal(t, 140000.0, b.TotalNeeded)
	assert.InDelta(t, 350000, b.MinimumSales, 1e-6)
	assert.True(t, b.Valid())
}

func TestCompute_InvalidMargin(t *testing.T) {
	b := Compute(TargetInput{ForecastedExpenses: 1000, GrossMarginPercent: 0, TargetPeriodMode: Total})

	assert.False(t, b.Valid())
	assert.Equal(t, 1000.0, b.TotalNeeded)
}

func TestSumExpenses(t *testing.T) {
	assert.Zero(t, SumExpenses(nil))
	assert.Equal(t, 0.3, SumExpenses([]Expense{{Amount: 0.1}, {Amount: 0.2}}))
}

func TestPeriodModeValid(t *testing.T) {
	assert.True(t, PerMonth.Valid())
	assert.True(t, Total.Valid())
	assert.False(t, PeriodMode("").Valid())
}

func TestMinimumSalesTarget_NonFiniteInputsDoNotPanic(t *testing.T) {
	tests := []struct {
		name        string
		expenses    float64
		contingency float64
		profit      float64
	}{
		{name: "infinite expenses", expenses: math.Inf(1), contingency: 0.1, profit: 5000},
		{name: "negative infinite expenses", expenses: math.Inf(-1), contingency: 0.1, profit: 5000},
		{name: "NaN contingency", expenses: 100000, contingency: math.NaN(), profit: 5000},
		{name: "NaN profit", expenses: 100000, contingency: 0.1, profit: math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got float64
			assert.NotPanics(t, func() {
				got = MinimumSalesTarget(tt.expenses, tt.contingency, tt.profit, 6, 0.3, PerMonth)
			})
			assert.True(t, math.IsInf(got, 1))
		})
	}
}

func TestCompute_NonFiniteExpenseLine(t *testing.T) {
	var b Breakdown
	assert.NotPanics(t, func() {
		b = Compute(TargetInput{
			Expenses:           []Expense{{Name: "rent", Amount: math.Inf(1)}},
			GrossMarginPercent: 0.4,
			TargetPeriodMode:   Total,
		})
	})
	assert.False(t, b.Valid())
}
