package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T, retries int) {
	t.Helper()
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 20 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func writeSeed(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()

	assert.NoError(t, NewMigrationRunner(db).WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 3)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	assert.NoError(t, NewMigrationRunner(db).WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = NewMigrationRunner(db).WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{db: db, migrationsPath: "/nonexistent/migrations", seedsPath: seedsPath}

	assert.NoError(t, runner.RunMigrations())
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{db: db, migrationsPath: "/nonexistent/migrations", seedsPath: seedsPath}

	_, _, err = runner.GetMigrationStatus()
	assert.ErrorContains(t, err, "migrations directory not found")
}

func TestLoadSeeds_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "false")

	assert.NoError(t, NewMigrationRunner(db).LoadSeeds())
}

func TestLoadSeeds_DirectoryNotFoundOrEmpty(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "true")

	missing := &MigrationRunner{db: db, migrationsPath: migrationsPath, seedsPath: "/nonexistent/seeds"}
	assert.NoError(t, missing.LoadSeeds())

	empty := &MigrationRunner{db: db, migrationsPath: migrationsPath, seedsPath: t.TempDir()}
	assert.NoError(t, empty.LoadSeeds())
}

func TestLoadSeeds_ExecutesFilesAndContinuesOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "true")

	dir := t.TempDir()
	writeSeed(t, dir, "001_banks.sql", "INSERT INTO banks (id, name, txn_table) VALUES ('b1', 'HDFC', 'bank-txn-hdfc');")
	writeSeed(t, dir, "002_tags.sql", "INSERT INTO tags (id, user_id, name, name_key) VALUES ('t1', 'u1', 'Rent', 'rent');")

	mock.ExpectExec("INSERT INTO banks").WillReturnError(errors.New("relation does not exist"))
	mock.ExpectExec("INSERT INTO tags").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := &MigrationRunner{db: db, migrationsPath: migrationsPath, seedsPath: dir}

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "true")

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "001_invalid.sql"), 0755))

	runner := &MigrationRunner{db: db, migrationsPath: migrationsPath, seedsPath: dir}

	assert.ErrorContains(t, runner.LoadSeeds(), "failed to read seed file")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("AUTO_MIGRATE", "false")

	assert.NoError(t, RunMigrationsIfEnabled(db))
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("AUTO_MIGRATE", "true")
	fastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	assert.ErrorContains(t, RunMigrationsIfEnabled(db), "database readiness check failed")
}
