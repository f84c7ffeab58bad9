package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration database. It expects a MySQL server on
// localhost:3306 with a database named 'atelier_test', overridable through
// TEST_DB_DSN. Tests are skipped when it is unreachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = "root:@tcp(localhost:3306)/atelier_test?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes db.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"LeadDocuments", "PricingConfigs"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the document tables used by the repositories.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createLeadDocumentsTable := `
	CREATE TABLE IF NOT EXISTS LeadDocuments (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		document JSON NOT NULL,
		createdAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updatedAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3)
	)`

	createPricingConfigsTable := `
	CREATE TABLE IF NOT EXISTS PricingConfigs (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		document JSON NOT NULL,
		createdAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"LeadDocuments", createLeadDocumentsTable},
		{"PricingConfigs", createPricingConfigsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

// InsertLeadDocument stores a raw lead document. The document is stored as
// given so tests can exercise malformed payloads.
func InsertLeadDocument(t *testing.T, db *sql.DB, id string, document string) {
	t.Helper()

	if _, err := db.Exec(`INSERT INTO LeadDocuments (id, document) VALUES (?, ?)`, id, document); err != nil {
		t.Fatalf("failed to insert lead document %s: %v", id, err)
	}
}
