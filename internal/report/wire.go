package report

import (
	"database/sql"

	"atelier/internal/config"
	"atelier/internal/infrastructure/metrics"
	"atelier/internal/report/controller"
	"atelier/internal/report/repository"
	"atelier/internal/report/usecase"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, cfg *config.Config, reg *metrics.Registry, logger *zap.Logger) *controller.ReportController {
	leadRepo := repository.NewMySQLLeadRepository(db)
	pricingRepo := repository.NewMySQLPricingConfigRepository(db)

	uc := usecase.NewReportUseCase(
		leadRepo,
		pricingRepo,
		reg,
		logger,
		cfg.Report.Location,
		cfg.Pricing.ConfigPath,
	)

	return controller.NewReportController(uc, logger, cfg.Report.Location)
}
