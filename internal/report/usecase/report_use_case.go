package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
	"atelier/internal/finance"
	"atelier/internal/pricing"
	"atelier/internal/report/digitizing"
	"atelier/internal/report/sales"
)

const (
	ReportDigitizing = "digitizing"
	ReportSales      = "sales"
	ReportQuote      = "quote"
	ReportTarget     = "minimum_sales_target"
)

type LeadRepository interface {
	FindAll(ctx context.Context) ([]domain.Lead, int, error)
}

type PricingConfigRepository interface {
	FindCurrent(ctx context.Context) (*pricing.Config, error)
}

type Metrics interface {
	ObserveReport(report string, start time.Time)
	AddSkippedLeads(n int)
}

type ReportUseCase struct {
	leadRepo    LeadRepository
	pricingRepo PricingConfigRepository
	metrics     Metrics
	logger      *zap.Logger
	loc         *time.Location
	now         func() time.Time
	pricingPath string
}

func NewReportUseCase(
	leadRepo LeadRepository,
	pricingRepo PricingConfigRepository,
	metrics Metrics,
	logger *zap.Logger,
	loc *time.Location,
	pricingPath string,
) *ReportUseCase {
	return &ReportUseCase{
		leadRepo:    leadRepo,
		pricingRepo: pricingRepo,
		metrics:     metrics,
		logger:      logger,
		loc:         loc,
		now:         time.Now,
		pricingPath: pricingPath,
	}
}

func (uc *ReportUseCase) DigitizingReport(ctx context.Context, f digitizing.Filter) (*digitizing.Report, error) {
	start := time.Now()

	leads, err := uc.fetchLeads(ctx)
	if err != nil {
		return nil, err
	}

	report := digitizing.NewAggregator(uc.loc, uc.now).Build(leads, f)

	uc.metrics.ObserveReport(ReportDigitizing, start)
	uc.logger.Info("digitizing report built",
		zap.Int("leadCount", len(leads)),
		zap.String("priority", f.Priority),
		zap.Int("year", f.Year),
		zap.Int("month", int(f.Month)),
	)
	return &report, nil
}

func (uc *ReportUseCase) SalesReport(ctx context.Context, f sales.Filter) (*sales.Report, error) {
	start := time.Now()

	leads, err := uc.fetchLeads(ctx)
	if err != nil {
		return nil, err
	}

	report := sales.NewAggregator(uc.loc).Build(leads, f)

	uc.metrics.ObserveReport(ReportSales, start)
	uc.logger.Info("sales report built",
		zap.Int("leadCount", len(leads)),
		zap.String("window", string(report.Window.Kind)),
	)
	return &report, nil
}

func (uc *ReportUseCase) Quote(ctx context.Context, productType string, quantity int, embroidery pricing.Embroidery) (*pricing.Quote, error) {
	start := time.Now()

	cfg, err := uc.pricingConfig(ctx)
	if err != nil {
		return nil, err
	}

	quote := pricing.NewResolver(cfg).Quote(productType, quantity, embroidery)
	if quote.Group == "" {
		uc.logger.Debug("quote for unknown product type", zap.String("productType", productType))
	}

	uc.metrics.ObserveReport(ReportQuote, start)
	return &quote, nil
}

func (uc *ReportUseCase) MinimumSalesTarget(ctx context.Context, in finance.TargetInput) (*finance.Breakdown, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := finance.Compute(in)
	if !b.Valid() {
		uc.logger.Debug("minimum sales target has no valid margin", zap.Float64("grossMarginPercent", in.GrossMarginPercent))
	}

	uc.metrics.ObserveReport(ReportTarget, start)
	return &b, nil
}

func (uc *ReportUseCase) fetchLeads(ctx context.Context) ([]domain.Lead, error) {
	leads, skipped, err := uc.leadRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("fetching leads", err)
	}

	if skipped > 0 {
		uc.logger.Warn("skipped malformed lead documents", zap.Int("skipped", skipped))
		uc.metrics.AddSkippedLeads(skipped)
	}
	return leads, nil
}

// pricingConfig prefers the configured YAML file, then the stored document,
// then the built-in table.
func (uc *ReportUseCase) pricingConfig(ctx context.Context) (*pricing.Config, error) {
	if uc.pricingPath != "" {
		cfg, err := pricing.LoadFile(uc.pricingPath)
		if err != nil {
			return nil, apperrors.NewInternalError("loading pricing file", err)
		}
		return cfg, nil
	}

	cfg, err := uc.pricingRepo.FindCurrent(ctx)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			uc.logger.Debug("no stored pricing config, using defaults")
			return pricing.DefaultConfig(), nil
		}
		return nil, apperrors.NewInternalError("fetching pricing config", err)
	}
	return cfg, nil
}
