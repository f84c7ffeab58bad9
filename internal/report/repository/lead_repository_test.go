package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain"
	"atelier/internal/testutil"
)

// Unit Tests

func TestNewMySQLLeadRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLLeadRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestDecodeLead(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		doc    string
		wantOK bool
		wantID string
	}{
		{name: "keeps document id", id: "row", doc: `{"id":"doc","customerName":"Acme"}`, wantOK: true, wantID: "doc"},
		{name: "falls back to row id", id: "row", doc: `{"customerName":"Acme"}`, wantOK: true, wantID: "row"},
		{name: "array is not a lead", id: "row", doc: `[1,2]`, wantOK: false},
		{name: "wrong field type", id: "row", doc: `{"orders":"many"}`, wantOK: false},
		{name: "truncated", id: "row", doc: `{"id":`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, ok := decodeLead(tt.id, []byte(tt.doc))

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, lead.ID)
			}
		})
	}
}

// Integration Tests

func TestLeadRepository_FindAll_DecodesDocuments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLLeadRepository(db)

	testutil.InsertLeadDocument(t, db, "lead-1", `{
		"id": "lead-1",
		"customerName": "Acme",
		"priorityType": "Rush",
		"salesRepresentative": "Ana",
		"submissionDateTime": "2024-03-04T10:00:00+08:00",
		"grandTotal": 12500.5,
		"orders": [{"productType": "Jacket", "quantity": 5}],
		"layouts": [{"finalLogoDst": ["a.dst"], "finalLogoDstUploadTimes": ["2024-03-05T09:00:00+08:00"], "finalLogoDstUploadedBy": ["Zed"]}]
	}`)
	testutil.InsertLeadDocument(t, db, "lead-2", `{"customerName": "Bravo"}`)

	leads, skipped, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, leads, 2)

	byID := map[string]domain.Lead{}
	for _, l := range leads {
		byID[l.ID] = l
	}

	first := byID["lead-1"]
	assert.Equal(t, "Acme", first.CustomerName)
	assert.Equal(t, 12500.5, first.Amount())
	assert.Equal(t, 5, first.SoldQuantity())
	require.Len(t, first.Layouts, 1)
	assert.Len(t, first.Layouts[0].Uploads(), 1)

	second := byID["lead-2"]
	assert.Equal(t, "Bravo", second.CustomerName)
	assert.Zero(t, second.Amount())
	assert.Equal(t, domain.PriorityRegular, second.Priority())
}

func TestLeadRepository_FindAll_SkipsMalformedDocuments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLLeadRepository(db)

	testutil.InsertLeadDocument(t, db, "good", `{"customerName": "Acme"}`)
	testutil.InsertLeadDocument(t, db, "bad-orders", `{"orders": "not-a-list"}`)
	testutil.InsertLeadDocument(t, db, "bad-shape", `["not", "a", "lead"]`)

	leads, skipped, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, leads, 1)
	assert.Equal(t, "good", leads[0].ID)
}

func TestLeadRepository_FindAll_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLLeadRepository(db)

	leads, skipped, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.NotNil(t, leads)
	assert.Empty(t, leads)
}

func TestLeadRepository_FindAll_CanceledContext(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLLeadRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := repo.FindAll(ctx)
	assert.Error(t, err)
}
