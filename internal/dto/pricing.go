package dto

import (
	"time"

	"atelier/internal/pricing"
)

type QuoteResponse struct {
	TraceID     string         `json:"traceId"`
	Quote       *pricing.Quote `json:"quote"`
	GeneratedAt time.Time      `json:"generatedAt"`
}
