package dto

import (
	"time"

	"atelier/internal/report/digitizing"
	"atelier/internal/report/sales"
)

type DigitizingFilterDTO struct {
	Priority string `json:"priority"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

type DigitizingReportResponse struct {
	TraceID     string              `json:"traceId"`
	Filter      DigitizingFilterDTO `json:"filter"`
	Report      *digitizing.Report  `json:"report"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

type SalesReportResponse struct {
	TraceID     string        `json:"traceId"`
	Filter      sales.Filter  `json:"filter"`
	Report      *sales.Report `json:"report"`
	GeneratedAt time.Time     `json:"generatedAt"`
}
