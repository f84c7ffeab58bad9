package dto

import (
	"math"
	"time"

	"atelier/internal/commons"
	"atelier/internal/finance"

	"github.com/shopspring/decimal"
)

const InvalidMarginDisplay = "Invalid Margin %"

type MinimumSalesTargetRequest struct {
	ForecastedExpenses     float64           `json:"forecastedExpenses"`
	Expenses               []finance.Expense `json:"expenses"`
	ContingencyPercent     float64           `json:"contingencyPercent"`
	DesiredProfitPerPeriod float64           `json:"desiredProfitPerPeriod"`
	PeriodCount            int               `json:"periodCount"`
	GrossMarginPercent     float64           `json:"grossMarginPercent"`
	TargetPeriodMode       string            `json:"targetPeriodMode"`
}

func (r MinimumSalesTargetRequest) ToInput() finance.TargetInput {
	return finance.TargetInput{
		ForecastedExpenses:     r.ForecastedExpenses,
		Expenses:               r.Expenses,
		ContingencyPercent:     r.ContingencyPercent,
		DesiredProfitPerPeriod: r.DesiredProfitPerPeriod,
		PeriodCount:            r.PeriodCount,
		GrossMarginPercent:     r.GrossMarginPercent,
		TargetPeriodMode:       finance.PeriodMode(r.TargetPeriodMode),
	}
}

// MinimumSalesTargetResponse carries a null minimumSales when the margin
// makes the target unreachable; JSON has no encoding for infinity.
type MinimumSalesTargetResponse struct {
	TraceID            string    `json:"traceId"`
	Valid              bool      `json:"valid"`
	MinimumSales       *float64  `json:"minimumSales"`
	Display            string    `json:"display"`
	ForecastedExpenses float64   `json:"forecastedExpenses"`
	ContingencyAmount  float64   `json:"contingencyAmount"`
	TotalDesiredProfit float64   `json:"totalDesiredProfit"`
	TotalNeeded        float64   `json:"totalNeeded"`
	Timestamp          time.Time `json:"timestamp"`
}

func NewMinimumSalesTargetResponse(traceID string, b finance.Breakdown) MinimumSalesTargetResponse {
	resp := MinimumSalesTargetResponse{
		TraceID:            traceID,
		Valid:              b.Valid(),
		Display:            InvalidMarginDisplay,
		ForecastedExpenses: b.ForecastedExpenses,
		ContingencyAmount:  b.ContingencyAmount,
		TotalDesiredProfit: b.TotalDesiredProfit,
		TotalNeeded:        b.TotalNeeded,
		Timestamp:          time.Now().UTC(),
	}
	if resp.Valid && !math.IsNaN(b.MinimumSales) {
		v := b.MinimumSales
		resp.MinimumSales = &v
		resp.Display = commons.FormatPeso(decimal.NewFromFloat(v).Round(2))
	}
	return resp
}
