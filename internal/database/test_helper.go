package database

import (
	"fmt"
	"testing"

	"tag-ledger/internal/config"
	"tag-ledger/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with the fixed tables migrated.
// The pool is pinned to one connection because every new SQLite memory connection is a fresh database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestTag inserts a tag for userID.
func CreateTestTag(t *testing.T, db *DB, userID, name string) *models.Tag {
	t.Helper()

	tag := &models.Tag{UserID: userID, Name: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create test tag: %v", err)
	}
	return tag
}

// CreateTestBank registers a bank and, when withTable is set, creates its transaction table.
func CreateTestBank(t *testing.T, db *DB, name, tableName string, withTable bool) *models.Bank {
	t.Helper()

	bank := &models.Bank{Name: name, TxTableName: tableName}
	if err := db.Create(bank).Error; err != nil {
		t.Fatalf("failed to create test bank: %v", err)
	}

	if withTable {
		if err := db.Table(tableName).AutoMigrate(&models.TransactionRecord{}); err != nil {
			t.Fatalf("failed to create bank table %s: %v", tableName, err)
		}
	}
	return bank
}

// InsertTestTransactions writes records into an existing bank table.
func InsertTestTransactions(t *testing.T, db *DB, tableName string, records ...*models.TransactionRecord) {
	t.Helper()

	for _, record := range records {
		if err := db.Table(tableName).Create(record).Error; err != nil {
			t.Fatalf("failed to insert test transaction into %s: %v", tableName, err)
		}
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"import_jobs",
		"recompute_jobs",
		"tags_summaries",
		"banks",
		"tags",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
