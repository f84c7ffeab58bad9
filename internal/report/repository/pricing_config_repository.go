package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"atelier/internal/errors"
	"atelier/internal/pricing"
)

type MySQLPricingConfigRepository struct {
	db *sql.DB
}

func NewMySQLPricingConfigRepository(db *sql.DB) *MySQLPricingConfigRepository {
	return &MySQLPricingConfigRepository{db: db}
}

// FindCurrent returns the most recently stored pricing document.
func (r *MySQLPricingConfigRepository) FindCurrent(ctx context.Context) (*pricing.Config, error) {
	query := `
		SELECT document
		FROM PricingConfigs
		ORDER BY createdAt DESC, id DESC
		LIMIT 1
	`

	var doc []byte
	err := r.db.QueryRowContext(ctx, query).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("pricing config not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying pricing config: %w", err)
	}

	var cfg pricing.Config
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return nil, fmt.Errorf("decoding pricing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating pricing config: %w", err)
	}

	return &cfg, nil
}
