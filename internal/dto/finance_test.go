package dto

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/finance"
)

func TestNewMinimumSalesTargetResponse_Valid(t *testing.T) {
	resp := NewMinimumSalesTargetResponse("trace", finance.Breakdown{TotalNeeded: 140000, MinimumSales: 350000})

	assert.True(t, resp.Valid)
	require.NotNil(t, resp.MinimumSales)
	assert.Equal(t, 350000.0, *resp.MinimumSales)
	assert.Equal(t, "₱350,000.00", resp.Display)
}

func TestNewMinimumSalesTargetResponse_InfiniteEncodesAsNull(t *testing.T) {
	resp := NewMinimumSalesTargetResponse("trace", finance.Breakdown{TotalNeeded: 140000, MinimumSales: math.Inf(1)})

	assert.False(t, resp.Valid)
	assert.Nil(t, resp.MinimumSales)
	assert.Equal(t, InvalidMarginDisplay, resp.Display)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"minimumSales":null`)
	assert.Contains(t, string(body), `"valid":false`)
}

func TestMinimumSalesTargetRequest_ToInput(t *testing.T) {
	in := MinimumSalesTargetRequest{PeriodCount: 6, TargetPeriodMode: "per-month", GrossMarginPercent: 0.4}.ToInput()

	assert.Equal(t, finance.PerMonth, in.TargetPeriodMode)
	assert.Equal(t, 6, in.PeriodCount)
	assert.Equal(t, 0.4, in.GrossMarginPercent)
}
