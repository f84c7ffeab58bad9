package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"atelier/internal/domain"
)

type MySQLLeadRepository struct {
	db *sql.DB
}

func NewMySQLLeadRepository(db *sql.DB) *MySQLLeadRepository {
	return &MySQLLeadRepository{db: db}
}

// FindAll decodes every stored lead document. Documents that are not valid
// lead JSON are left out and reported through the skipped count.
func (r *MySQLLeadRepository) FindAll(ctx context.Context) ([]domain.Lead, int, error) {
	query := `
		SELECT id, document
		FROM LeadDocuments
		ORDER BY createdAt, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("querying leads: %w", err)
	}
	defer rows.Close()

	leads := []domain.Lead{}
	skipped := 0
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, 0, fmt.Errorf("scanning lead: %w", err)
		}

		lead, ok := decodeLead(id, doc)
		if !ok {
			skipped++
			continue
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating leads: %w", err)
	}

	return leads, skipped, nil
}

func decodeLead(id string, doc []byte) (domain.Lead, bool) {
	var lead domain.Lead
	if err := json.Unmarshal(doc, &lead); err != nil {
		return domain.Lead{}, false
	}
	if lead.ID == "" {
		lead.ID = id
	}
	return lead, true
}
