package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mfcarvalho/bookkeep/infra/repository/account"
	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return db, mock
}

func accountRows(id uuid.UUID, balance string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "number", "name", "initial_balance", "current_balance", "created_at", "updated_at",
	}).AddRow(id, "ACC-001", "Operating", "100.00", balance, now, now)
}

func TestGetForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(id, 1).
		WillReturnRows(accountRows(id, "100.00"))

	read, err := repo.GetForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, read.ID)
	assert.True(t, read.CurrentBalance.Equal(decimal.NewFromInt(100)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAdjustBalance_RelativeUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "accounts" SET "current_balance"=current_balance \+ \$1(.|\n)*WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AdjustBalance(context.Background(), id, decimal.RequireFromString("-25.50"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustBalance_MissingAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)

	mock.ExpectExec(`UPDATE "accounts"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AdjustBalance(context.Background(), uuid.New(), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestCreate_DuplicateNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)

	mock.ExpectExec(`INSERT INTO "accounts"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), dto.AccountCreate{
		Number:         "ACC-001",
		Name:           "Operating",
		InitialBalance: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrAccountNumberTaken)
}

func TestDelete_MissingAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := account.New(db)

	mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
