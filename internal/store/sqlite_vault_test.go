package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	selectMarkerSQL  = "SELECT marker FROM vault_meta WHERE id = ?"
	insertMarkerSQL  = "INSERT INTO vault_meta (id,marker) VALUES (?,?)"
	selectRecordsSQL = "SELECT label, password FROM vault_records ORDER BY rowid"
	insertRecordSQL  = "INSERT INTO vault_records (id,label,password) VALUES (?,?,?)"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestSQLiteVault(t *testing.T, db *sql.DB, masterKey string) *sqliteVault {
	t.Helper()
	return newSQLiteVaultFromDB(db, newTestCipher(t, masterKey), logger.Nop())
}

func TestSQLiteVault_ValidateKey(t *testing.T) {
	db, mock := newTestDB(t)
	vault := newTestSQLiteVault(t, db, "this12is896a9key")

	mock.ExpectQuery(regexp.QuoteMeta(selectMarkerSQL)).
		WithArgs(metaRowID).
		WillReturnRows(sqlmock.NewRows([]string{"marker"}).AddRow(vault.encode(validationMarker)))

	valid, err := vault.ValidateKey(context.Background())
	require.NoError(t, err)
	assert.True(t, valid)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteVault_ValidateKey_WrongKey(t *testing.T) {
	db, mock := newTestDB(t)

	// The stored marker was written under a different master key.
	other := newTestSQLiteVault(t, db, "another16charKey")
	storedMarker := other.encode(validationMarker)

	vault := newTestSQLiteVault(t, db, "this12is896a9key")
	mock.ExpectQuery(regexp.QuoteMeta(selectMarkerSQL)).
		WithArgs(metaRowID).
		WillReturnRows(sqlmock.NewRows([]string{"marker"}).AddRow(storedMarker))

	valid, err := vault.ValidateKey(context.Background())
	require.NoError(t, err)
	assert.False(t, valid)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteVault_ValidateKey_NoMarkerRow(t *testing.T) {
	db, mock := newTestDB(t)
	vault := newTestSQLiteVault(t, db, "this12is896a9key")

	mock.ExpectQuery(regexp.QuoteMeta(selectMarkerSQL)).
		WithArgs(metaRowID).
		WillReturnError(sql.ErrNoRows)

	_, err := vault.ValidateKey(context.Background())
	assert.ErrorIs(t, err, ErrCorruptRecord)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteVault_EnsureMarker_InsertsWhenMissing(t *testing.T) {
	db, mock := newTestDB(t)
	vault := newTestSQLiteVault(t, db, "this12is896a9key")

	mock.ExpectQuery(regexp.QuoteMeta(selectMarkerSQL)).
		WithArgs(metaRowID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta(insertMarkerSQL)).
		WithArgs(metaRowID, vault.encode(validationMarker)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, vault.ensureMarker(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteVault_StoreRecord(t *testing.T) {
	db, mock := newTestDB(t)
	vault := newTestSQLiteVault(t, db, "this12is896a9key")

	// Duplicate scan over an empty table, then the insert.
	mock.ExpectQuery(regexp.QuoteMeta(selectRecordsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"label", "password"}))
	mock.ExpectExec(regexp.QuoteMeta(insertRecordSQL)).
		WithArgs(sqlmock.AnyArg(), vault.encode("email"), vault.encode("SamplePassword123!")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := vault.StoreRecord(context.Background(), "email", "SamplePassword123!")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteVault_StoreRecord_DuplicateLabel(t *testing.T) {
	db, mock := newTestDB(t)
	vault := newTestSQLiteVault(t, db, "this12is896a9key")

	mock.ExpectQuery(regexp.QuoteMeta(selectRecordsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"label", "password"}).
			AddRow(vault.encode("Email"), vault.encode("old")))

	err := vault.StoreRecord(context.Background(), "email", "new")
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteVault_RetrieveAll(t *testing.T) {
	db, mock := newTestDB(t)
	vault := newTestSQLiteVault(t, db, "this12is896a9key")

	mock.ExpectQuery(regexp.QuoteMeta(selectMarkerSQL)).
		WithArgs(metaRowID).
		WillReturnRows(sqlmock.NewRows([]string{"marker"}).AddRow(vault.encode(validationMarker)))
	mock.ExpectQuery(regexp.QuoteMeta(selectRecordsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"label", "password"}).
			AddRow(vault.encode("email"), vault.encode("SamplePassword123!")).
			AddRow(vault.encode("bank"), vault.encode("s3cret")))

	records, err := vault.RetrieveAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "email", records[0].Label)
	assert.Equal(t, "SamplePassword123!", records[0].Password)
	assert.Equal(t, "bank", records[1].Label)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteVault_RetrieveAll_WrongKeyReturnsEmpty(t *testing.T) {
	db, mock := newTestDB(t)

	other := newTestSQLiteVault(t, db, "another16charKey")
	storedMarker := other.encode(validationMarker)

	vault := newTestSQLiteVault(t, db, "this12is896a9key")
	mock.ExpectQuery(regexp.QuoteMeta(selectMarkerSQL)).
		WithArgs(metaRowID).
		WillReturnRows(sqlmock.NewRows([]string{"marker"}).AddRow(storedMarker))

	records, err := vault.RetrieveAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteVault_RetrieveByLabel(t *testing.T) {
	db, mock := newTestDB(t)
	vault := newTestSQLiteVault(t, db, "this12is896a9key")

	rows := sqlmock.NewRows([]string{"label", "password"}).
		AddRow(vault.encode("Email"), vault.encode("SamplePassword123!"))
	mock.ExpectQuery(regexp.QuoteMeta(selectRecordsSQL)).WillReturnRows(rows)

	record, err := vault.RetrieveByLabel(context.Background(), "eMaIl")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Email", record.Label)

	mock.ExpectQuery(regexp.QuoteMeta(selectRecordsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"label", "password"}))

	absent, err := vault.RetrieveByLabel(context.Background(), "bank")
	require.NoError(t, err)
	assert.Nil(t, absent)

	require.NoError(t, mock.ExpectationsWereMet())
}
