package transfer_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
	"github.com/mfcarvalho/bookkeep/pkg/service/transfer"
	"github.com/mfcarvalho/bookkeep/pkg/testutils"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newService(t *testing.T) (*transfer.Service, *testutils.FakeUoW) {
	t.Helper()
	uow := testutils.NewFakeUoW()
	return transfer.New(uow, testutils.NewTestLogger()), uow
}

func TestCreate_MovesBalancesAtomically(t *testing.T) {
	svc, uow := newService(t)
	source := uow.SeedAccount("ACC-001", "Operating", dec("500.00"))
	dest := uow.SeedAccount("ACC-002", "Savings", dec("100.00"))

	read, err := svc.Create(context.Background(), dto.TransferCreate{
		FromAccountID: source.ID,
		ToAccountID:   dest.ID,
		Amount:        dec("150.00"),
		Description:   "monthly sweep",
	})
	require.NoError(t, err)
	assert.Equal(t, source.ID, read.FromAccountID)
	assert.Equal(t, dest.ID, read.ToAccountID)

	gotSource, _ := uow.Account(source.ID)
	gotDest, _ := uow.Account(dest.ID)
	assert.True(t, gotSource.CurrentBalance.Equal(dec("350.00")), "source = %s", gotSource.CurrentBalance)
	assert.True(t, gotDest.CurrentBalance.Equal(dec("250.00")), "dest = %s", gotDest.CurrentBalance)
}

func TestCreate_InsufficientFunds(t *testing.T) {
	svc, uow := newService(t)
	source := uow.SeedAccount("ACC-001", "Operating", dec("100.00"))
	dest := uow.SeedAccount("ACC-002", "Savings", dec("0"))

	_, err := svc.Create(context.Background(), dto.TransferCreate{
		FromAccountID: source.ID,
		ToAccountID:   dest.ID,
		Amount:        dec("100.01"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	gotSource, _ := uow.Account(source.ID)
	gotDest, _ := uow.Account(dest.ID)
	assert.True(t, gotSource.CurrentBalance.Equal(dec("100.00")))
	assert.True(t, gotDest.CurrentBalance.IsZero())
}

func TestCreate_ExactBalanceSucceeds(t *testing.T) {
	svc, uow := newService(t)
	source := uow.SeedAccount("ACC-001", "Operating", dec("100.00"))
	dest := uow.SeedAccount("ACC-002", "Savings", dec("0"))

	_, err := svc.Create(context.Background(), dto.TransferCreate{
		FromAccountID: source.ID,
		ToAccountID:   dest.ID,
		Amount:        dec("100.00"),
	})
	require.NoError(t, err)

	gotSource, _ := uow.Account(source.ID)
	assert.True(t, gotSource.CurrentBalance.IsZero())
}

func TestCreate_ValidationErrors(t *testing.T) {
	svc, uow := newService(t)
	acc := uow.SeedAccount("ACC-001", "Operating", dec("100.00"))

	t.Run("same account", func(t *testing.T) {
		_, err := svc.Create(context.Background(), dto.TransferCreate{
			FromAccountID: acc.ID,
			ToAccountID:   acc.ID,
			Amount:        dec("10"),
		})
		assert.ErrorIs(t, err, domain.ErrSameAccount)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := svc.Create(context.Background(), dto.TransferCreate{
			FromAccountID: acc.ID,
			ToAccountID:   uuid.New(),
			Amount:        dec("0"),
		})
		assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := svc.Create(context.Background(), dto.TransferCreate{
			FromAccountID: uuid.New(),
			ToAccountID:   acc.ID,
			Amount:        dec("10"),
		})
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestCreate_RecordFailureRollsBackBalances(t *testing.T) {
	svc, uow := newService(t)
	source := uow.SeedAccount("ACC-001", "Operating", dec("500.00"))
	dest := uow.SeedAccount("ACC-002", "Savings", dec("100.00"))

	boom := errors.New("insert failed")
	uow.Failures.TransferCreate = boom

	_, err := svc.Create(context.Background(), dto.TransferCreate{
		FromAccountID: source.ID,
		ToAccountID:   dest.ID,
		Amount:        dec("150.00"),
	})
	require.ErrorIs(t, err, boom)

	// The debit and credit must not survive the failed insert.
	gotSource, _ := uow.Account(source.ID)
	gotDest, _ := uow.Account(dest.ID)
	assert.True(t, gotSource.CurrentBalance.Equal(dec("500.00")))
	assert.True(t, gotDest.CurrentBalance.Equal(dec("100.00")))
}

func TestCreate_ConcurrentDoubleSpend(t *testing.T) {
	svc, uow := newService(t)
	source := uow.SeedAccount("ACC-001", "Operating", dec("100.00"))
	destA := uow.SeedAccount("ACC-002", "Savings", dec("0"))
	destB := uow.SeedAccount("ACC-003", "Reserve", dec("0"))

	// Two full-balance transfers racing: exactly one may win.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	targets := []uuid.UUID{destA.ID, destB.ID}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), dto.TransferCreate{
				FromAccountID: source.ID,
				ToAccountID:   targets[i],
				Amount:        dec("100.00"),
			})
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			failures++
			assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		}
	}
	assert.Equal(t, 1, failures)

	gotSource, _ := uow.Account(source.ID)
	assert.True(t, gotSource.CurrentBalance.IsZero(), "source = %s", gotSource.CurrentBalance)

	gotA, _ := uow.Account(destA.ID)
	gotB, _ := uow.Account(destB.ID)
	assert.True(t, gotA.CurrentBalance.Add(gotB.CurrentBalance).Equal(dec("100.00")))
}

func TestDelete_ReversesTransfer(t *testing.T) {
	svc, uow := newService(t)
	source := uow.SeedAccount("ACC-001", "Operating", dec("500.00"))
	dest := uow.SeedAccount("ACC-002", "Savings", dec("0"))

	read, err := svc.Create(context.Background(), dto.TransferCreate{
		FromAccountID: source.ID,
		ToAccountID:   dest.ID,
		Amount:        dec("200.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), read.ID))

	gotSource, _ := uow.Account(source.ID)
	gotDest, _ := uow.Account(dest.ID)
	assert.True(t, gotSource.CurrentBalance.Equal(dec("500.00")))
	assert.True(t, gotDest.CurrentBalance.IsZero())

	_, err = svc.Get(context.Background(), read.ID)
	assert.ErrorIs(t, err, domain.ErrTransferNotFound)
}

func TestDelete_InvalidReversalKeepsEverything(t *testing.T) {
	svc, uow := newService(t)
	source := uow.SeedAccount("ACC-001", "Operating", dec("500.00"))
	dest := uow.SeedAccount("ACC-002", "Savings", dec("0"))

	read, err := svc.Create(context.Background(), dto.TransferCreate{
		FromAccountID: source.ID,
		ToAccountID:   dest.ID,
		Amount:        dec("200.00"),
	})
	require.NoError(t, err)

	// Drain the destination so the reversal would overdraw it.
	_, err = svc.Create(context.Background(), dto.TransferCreate{
		FromAccountID: dest.ID,
		ToAccountID:   source.ID,
		Amount:        dec("150.00"),
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), read.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidReversal)

	// The transfer record and both balances are untouched.
	got, err := svc.Get(context.Background(), read.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(dec("200.00")))

	gotSource, _ := uow.Account(source.ID)
	gotDest, _ := uow.Account(dest.ID)
	assert.True(t, gotSource.CurrentBalance.Equal(dec("450.00")))
	assert.True(t, gotDest.CurrentBalance.Equal(dec("50.00")))
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newService(t)
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrTransferNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	svc, uow := newService(t)
	source := uow.SeedAccount("ACC-001", "Operating", dec("500.00"))
	dest := uow.SeedAccount("ACC-002", "Savings", dec("0"))

	first, err := svc.Create(context.Background(), dto.TransferCreate{
		FromAccountID: source.ID, ToAccountID: dest.ID, Amount: dec("10"),
	})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), dto.TransferCreate{
		FromAccountID: source.ID, ToAccountID: dest.ID, Amount: dec("20"),
	})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
