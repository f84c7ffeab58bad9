package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"atelier/internal/domain"
	"atelier/internal/dto"
	apperrors "atelier/internal/errors"
	"atelier/internal/finance"
	"atelier/internal/pricing"
	"atelier/internal/report/digitizing"
	"atelier/internal/report/sales"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

type ReportUseCase interface {
	DigitizingReport(ctx context.Context, f digitizing.Filter) (*digitizing.Report, error)
	SalesReport(ctx context.Context, f sales.Filter) (*sales.Report, error)
	Quote(ctx context.Context, productType string, quantity int, embroidery pricing.Embroidery) (*pricing.Quote, error)
	MinimumSalesTarget(ctx context.Context, in finance.TargetInput) (*finance.Breakdown, error)
}

type ReportController struct {
	useCase ReportUseCase
	logger  *zap.Logger
	loc     *time.Location
	now     func() time.Time
}

func NewReportController(useCase ReportUseCase, logger *zap.Logger, loc *time.Location) *ReportController {
	return &ReportController{
		useCase: useCase,
		logger:  logger,
		loc:     loc,
		now:     time.Now,
	}
}

// DigitizingReport serves GET /reports/digitizing. Month and year default
// to the current month.
func (c *ReportController) DigitizingReport(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	filter, err := c.parseDigitizingFilter(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("invalid digitizing filter", zap.Any("details", ve.Details))
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	report, err := c.useCase.DigitizingReport(r.Context(), filter)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.DigitizingReportResponse{
		TraceID: traceID,
		Filter: dto.DigitizingFilterDTO{
			Priority: filter.Priority,
			Month:    int(filter.Month),
			Year:     filter.Year,
		},
		Report:      report,
		GeneratedAt: time.Now().UTC(),
	})
}

func (c *ReportController) parseDigitizingFilter(r *http.Request) (digitizing.Filter, error) {
	q := r.URL.Query()
	today := c.now().In(c.loc)

	filter := digitizing.Filter{
		Priority: digitizing.PriorityAll,
		Month:    today.Month(),
		Year:     today.Year(),
	}

	var details []apperrors.ValidationDetail

	if p := q.Get("priority"); p != "" {
		switch p {
		case digitizing.PriorityAll, domain.PriorityRush, domain.PriorityRegular:
			filter.Priority = p
		default:
			details = append(details, apperrors.ValidationDetail{
				Field:   "priority",
				Message: "priority must be one of All, Rush, Regular",
			})
		}
	}

	if m := q.Get("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		} else {
			filter.Month = time.Month(month)
		}
	}

	if y := q.Get("year"); y != "" {
		if !yearPattern.MatchString(y) {
			details = append(details, apperrors.ValidationDetail{
				Field:   "year",
				Message: "year must be a 4-digit number",
			})
		} else {
			filter.Year, _ = strconv.Atoi(y)
		}
	}

	if len(details) > 0 {
		return digitizing.Filter{}, apperrors.NewValidationError("validation failed", details...)
	}
	return filter, nil
}

// SalesReport serves GET /reports/sales. Filters are never rejected:
// unusable values fall back to a wider window.
func (c *ReportController) SalesReport(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	q := r.URL.Query()
	filter := sales.Filter{
		Year:  q.Get("year"),
		Month: q.Get("month"),
		Week:  q.Get("week"),
		From:  q.Get("from"),
		To:    q.Get("to"),
	}
	if filter.Year == "" {
		filter.Year = sales.FilterAll
	}
	if filter.Month == "" {
		filter.Month = sales.FilterAll
	}

	report, err := c.useCase.SalesReport(r.Context(), filter)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.SalesReportResponse{
		TraceID:     traceID,
		Filter:      filter,
		Report:      report,
		GeneratedAt: time.Now().UTC(),
	})
}

// Quote serves GET /pricing/quote.
func (c *ReportController) Quote(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	q := r.URL.Query()
	productType := strings.TrimSpace(q.Get("productType"))
	embroidery := pricing.Embroidery(q.Get("embroidery"))

	var details []apperrors.ValidationDetail
	if productType == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "productType",
			Message: "productType is required",
		})
	}

	quantity, err := strconv.Atoi(q.Get("quantity"))
	if err != nil || quantity < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}

	if !embroidery.Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "embroidery",
			Message: "embroidery must be one of logo, logoAndText",
		})
	}

	if len(details) > 0 {
		logger.Warn("invalid quote request", zap.Any("details", details))
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	quote, err := c.useCase.Quote(r.Context(), productType, quantity, embroidery)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.QuoteResponse{
		TraceID:     traceID,
		Quote:       quote,
		GeneratedAt: time.Now().UTC(),
	})
}

// MinimumSalesTarget serves POST /finance/minimum-sales-target.
func (c *ReportController) MinimumSalesTarget(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.MinimumSalesTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.TargetPeriodMode == "" {
		req.TargetPeriodMode = string(finance.Total)
	}

	if validationErr := validateTargetRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	b, err := c.useCase.MinimumSalesTarget(r.Context(), req.ToInput())
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewMinimumSalesTargetResponse(traceID, *b))
}

func validateTargetRequest(req dto.MinimumSalesTargetRequest) error {
	var details []apperrors.ValidationDetail

	if req.ForecastedExpenses < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "forecastedExpenses",
			Message: "forecastedExpenses must be non-negative",
		})
	}

	for idx, e := range req.Expenses {
		if e.Amount < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "expenses[" + strconv.Itoa(idx) + "].amount",
				Message: "amount must be non-negative",
			})
		}
	}

	if req.ContingencyPercent < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "contingencyPercent",
			Message: "contingencyPercent must be non-negative",
		})
	}

	if req.PeriodCount < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "periodCount",
			Message: "periodCount must be non-negative",
		})
	}

	if !finance.PeriodMode(req.TargetPeriodMode).Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "targetPeriodMode",
			Message: "targetPeriodMode must be one of per-month, total",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func (c *ReportController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *ReportController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	c.writeJSON(w, statusCode, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Message:   message,
		Code:      code,
		Timestamp: time.Now().UTC(),
	})
}

func (c *ReportController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *ReportController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
