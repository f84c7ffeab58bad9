package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/errors"
	"atelier/internal/pricing"
	"atelier/internal/testutil"
)

// Unit Tests

func TestNewMySQLPricingConfigRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLPricingConfigRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func insertPricingConfig(t *testing.T, db *sql.DB, cfg *pricing.Config) {
	t.Helper()

	doc, err := json.Marshal(cfg)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO PricingConfigs (document) VALUES (?)`, doc)
	require.NoError(t, err)
}

// Integration Tests

func TestPricingConfigRepository_FindCurrent_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLPricingConfigRepository(db)

	cfg, err := repo.FindCurrent(context.Background())
	assert.Error(t, err)
	assert.Nil(t, cfg)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestPricingConfigRepository_FindCurrent_LatestDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLPricingConfigRepository(db)

	insertPricingConfig(t, db, pricing.DefaultConfig())

	updated := pricing.DefaultConfig()
	updated.ProductGroups["Vest"] = pricing.GroupB
	insertPricingConfig(t, db, updated)

	cfg, err := repo.FindCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pricing.GroupB, cfg.ProductGroups["Vest"])
	assert.Equal(t, pricing.DefaultConfig().Tiers, cfg.Tiers)
}

func TestPricingConfigRepository_FindCurrent_InvalidDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLPricingConfigRepository(db)

	_, err := db.Exec(`INSERT INTO PricingConfigs (document) VALUES (?)`,
		`{"productGroups": {"Cap": "GroupC"}, "tiers": {"GroupC": {"logo": [{"min": 2, "price": 10}]}}}`)
	require.NoError(t, err)

	cfg, err := repo.FindCurrent(context.Background())
	assert.Error(t, err)
	assert.Nil(t, cfg)

	_, notFound := errors.IsNotFoundError(err)
	assert.False(t, notFound)
}
