package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
	"github.com/mfcarvalho/bookkeep/pkg/service/payment"
	"github.com/mfcarvalho/bookkeep/pkg/testutils"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newService(t *testing.T) (*payment.Service, *testutils.FakeUoW) {
	t.Helper()
	uow := testutils.NewFakeUoW()
	return payment.New(uow, testutils.NewTestLogger()), uow
}

func paymentDate() time.Time {
	return time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
}

func TestCreate_GrossWithTaxDebitsNet(t *testing.T) {
	svc, uow := newService(t)
	account := uow.SeedAccount("ACC-001", "Operating", dec("1000.00"))
	creditor := uow.SeedCreditor("Electric Utility")

	read, err := svc.Create(context.Background(), dto.PaymentCreate{
		AccountID:   account.ID,
		CreditorID:  creditor.ID,
		GrossAmount: decPtr("100.00"),
		TaxRate:     decPtr("10"),
		PaymentDate: paymentDate(),
	})
	require.NoError(t, err)

	assert.True(t, read.Amount.Equal(dec("90.00")), "amount = %s", read.Amount)
	require.NotNil(t, read.TaxAmount)
	require.NotNil(t, read.NetAmount)
	assert.True(t, read.TaxAmount.Equal(dec("10.00")))
	assert.True(t, read.NetAmount.Equal(dec("90.00")))
	assert.Equal(t, string(domain.PaymentPending), read.Status)

	got, _ := uow.Account(account.ID)
	assert.True(t, got.CurrentBalance.Equal(dec("910.00")), "balance = %s", got.CurrentBalance)
}

func TestCreate_SimpleAmount(t *testing.T) {
	svc, uow := newService(t)
	account := uow.SeedAccount("ACC-001", "Operating", dec("1000.00"))
	creditor := uow.SeedCreditor("Landlord")

	read, err := svc.Create(context.Background(), dto.PaymentCreate{
		AccountID:   account.ID,
		CreditorID:  creditor.ID,
		Amount:      decPtr("250.00"),
		PaymentDate: paymentDate(),
		Status:      string(domain.PaymentCompleted),
	})
	require.NoError(t, err)
	assert.True(t, read.Amount.Equal(dec("250.00")))
	assert.Nil(t, read.GrossAmount)
	assert.Equal(t, string(domain.PaymentCompleted), read.Status)

	got, _ := uow.Account(account.ID)
	assert.True(t, got.CurrentBalance.Equal(dec("750.00")))
}

func TestCreate_DebitIsUnconditional(t *testing.T) {
	svc, uow := newService(t)
	account := uow.SeedAccount("ACC-001", "Operating", dec("50.00"))
	creditor := uow.SeedCreditor("Landlord")

	// Payments carry no funds guard; the balance may go negative.
	_, err := svc.Create(context.Background(), dto.PaymentCreate{
		AccountID:   account.ID,
		CreditorID:  creditor.ID,
		Amount:      decPtr("80.00"),
		PaymentDate: paymentDate(),
	})
	require.NoError(t, err)

	got, _ := uow.Account(account.ID)
	assert.True(t, got.CurrentBalance.Equal(dec("-30.00")), "balance = %s", got.CurrentBalance)
}

func TestCreate_Errors(t *testing.T) {
	svc, uow := newService(t)
	account := uow.SeedAccount("ACC-001", "Operating", dec("1000.00"))
	creditor := uow.SeedCreditor("Landlord")

	tests := []struct {
		name    string
		create  dto.PaymentCreate
		wantErr error
	}{
		{
			"unknown creditor",
			dto.PaymentCreate{AccountID: account.ID, CreditorID: uuid.New(), Amount: decPtr("10"), PaymentDate: paymentDate()},
			domain.ErrCreditorNotFound,
		},
		{
			"unknown account",
			dto.PaymentCreate{AccountID: uuid.New(), CreditorID: creditor.ID, Amount: decPtr("10"), PaymentDate: paymentDate()},
			domain.ErrAccountNotFound,
		},
		{
			"invalid tax rate",
			dto.PaymentCreate{AccountID: account.ID, CreditorID: creditor.ID, GrossAmount: decPtr("10"), TaxRate: decPtr("101"), PaymentDate: paymentDate()},
			domain.ErrInvalidTaxRate,
		},
		{
			"negative amount",
			dto.PaymentCreate{AccountID: account.ID, CreditorID: creditor.ID, Amount: decPtr("-10"), PaymentDate: paymentDate()},
			domain.ErrAmountMustBeNonNegative,
		},
		{
			"missing amount",
			dto.PaymentCreate{AccountID: account.ID, CreditorID: creditor.ID, PaymentDate: paymentDate()},
			domain.ErrMissingPaymentAmount,
		},
		{
			"invalid status",
			dto.PaymentCreate{AccountID: account.ID, CreditorID: creditor.ID, Amount: decPtr("10"), PaymentDate: paymentDate(), Status: "cancelled"},
			domain.ErrInvalidPaymentStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.create)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// None of the failed attempts touched the balance.
	got, _ := uow.Account(account.ID)
	assert.True(t, got.CurrentBalance.Equal(dec("1000.00")))
}

func TestCreate_RecordFailureRollsBackDebit(t *testing.T) {
	svc, uow := newService(t)
	account := uow.SeedAccount("ACC-001", "Operating", dec("1000.00"))
	creditor := uow.SeedCreditor("Landlord")

	boom := errors.New("insert failed")
	uow.Failures.PaymentCreate = boom

	_, err := svc.Create(context.Background(), dto.PaymentCreate{
		AccountID:   account.ID,
		CreditorID:  creditor.ID,
		Amount:      decPtr("250.00"),
		PaymentDate: paymentDate(),
	})
	require.ErrorIs(t, err, boom)

	got, _ := uow.Account(account.ID)
	assert.True(t, got.CurrentBalance.Equal(dec("1000.00")))
}

func TestDelete_DoesNotRestoreBalance(t *testing.T) {
	svc, uow := newService(t)
	account := uow.SeedAccount("ACC-001", "Operating", dec("1000.00"))
	creditor := uow.SeedCreditor("Landlord")

	read, err := svc.Create(context.Background(), dto.PaymentCreate{
		AccountID:   account.ID,
		CreditorID:  creditor.ID,
		Amount:      decPtr("250.00"),
		PaymentDate: paymentDate(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), read.ID))

	_, err = svc.Get(context.Background(), read.ID)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

	// Deleting a payment never credits the account back.
	got, _ := uow.Account(account.ID)
	assert.True(t, got.CurrentBalance.Equal(dec("750.00")), "balance = %s", got.CurrentBalance)
}

func TestGet_IncludesAccountAndCreditor(t *testing.T) {
	svc, uow := newService(t)
	account := uow.SeedAccount("ACC-001", "Operating", dec("1000.00"))
	creditor := uow.SeedCreditor("Landlord")

	created, err := svc.Create(context.Background(), dto.PaymentCreate{
		AccountID:   account.ID,
		CreditorID:  creditor.ID,
		Amount:      decPtr("100.00"),
		PaymentDate: paymentDate(),
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Account)
	require.NotNil(t, got.Creditor)
	assert.Equal(t, "ACC-001", got.Account.Number)
	assert.Equal(t, "Landlord", got.Creditor.Name)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Creditor)
	assert.Equal(t, creditor.ID, list[0].Creditor.ID)
}

func TestGet_DanglingReferencesStayNil(t *testing.T) {
	svc, uow := newService(t)
	account := uow.SeedAccount("ACC-001", "Operating", dec("1000.00"))
	creditor := uow.SeedCreditor("Landlord")

	created, err := svc.Create(context.Background(), dto.PaymentCreate{
		AccountID:   account.ID,
		CreditorID:  creditor.ID,
		Amount:      decPtr("100.00"),
		PaymentDate: paymentDate(),
	})
	require.NoError(t, err)

	accounts, err := uow.AccountRepository()
	require.NoError(t, err)
	require.NoError(t, accounts.Delete(context.Background(), account.ID))

	// The payment survives the account deletion; only the embedded
	// record is gone.
	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Account)
	require.NotNil(t, got.Creditor)
	assert.Equal(t, account.ID, got.AccountID)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newService(t)
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}
