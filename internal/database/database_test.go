package database

import (
	"testing"

	"tag-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_CreatesFixedTables(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	for _, table := range []string{"tags", "banks", "tags_summaries", "recompute_jobs", "import_jobs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.NoError(t, db.HealthCheck())
}

func TestCreateTestBank_CreatesTransactionTable(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	bank := CreateTestBank(t, db, "HDFC Bank", "bank-txn-hdfc-bank", true)
	CreateTestBank(t, db, "Ghost", "bank-txn-ghost", false)

	assert.NotEmpty(t, bank.ID)
	assert.True(t, db.Migrator().HasTable("bank-txn-hdfc-bank"))
	assert.False(t, db.Migrator().HasTable("bank-txn-ghost"))

	InsertTestTransactions(t, db, "bank-txn-hdfc-bank", &models.TransactionRecord{
		UserID: "u1",
		Data:   models.JSONBMap{"Amount": "10.00", "Type": "CR"},
	})

	var count int64
	require.NoError(t, db.Table("bank-txn-hdfc-bank").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateTestTag_UniqueNamePerUser(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	CreateTestTag(t, db, "u1", "Rent")
	CreateTestTag(t, db, "u2", "rent")

	err := db.Create(&models.Tag{UserID: "u1", Name: "RENT"}).Error
	assert.Error(t, err)
}
