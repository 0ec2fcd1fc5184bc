// Package repository defines the persistence contracts used by the
// services. Implementations live in infra/repository; tests use the
// in-memory fakes from pkg/testutils.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
)

// AccountRepository is the account store: durable storage and the only
// mutation path for account balances.
type AccountRepository interface {
	Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// GetForUpdate reads the account under an exclusive row lock held
	// until the enclosing unit of work commits or rolls back. It must
	// only be called on a repository bound to a unit of work.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	List(ctx context.Context) ([]*dto.AccountRead, error)
	PartialUpdate(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error

	// AdjustBalance applies current_balance += delta. Callers must hold
	// the row lock from GetForUpdate in the same unit of work.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// TransferRepository stores committed transfer records.
type TransferRepository interface {
	Create(ctx context.Context, create dto.TransferCreate) (*dto.TransferRead, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TransferRead, error)
	List(ctx context.Context) ([]*dto.TransferRead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository stores payment records.
type PaymentRepository interface {
	Create(ctx context.Context, create dto.PaymentCreate, amounts domain.PaymentAmounts) (*dto.PaymentRead, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PaymentRead, error)
	List(ctx context.Context) ([]*dto.PaymentRead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreditorRepository stores creditor reference data.
type CreditorRepository interface {
	Create(ctx context.Context, create dto.CreditorCreate) (*dto.CreditorRead, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CreditorRead, error)
	List(ctx context.Context) ([]*dto.CreditorRead, error)
	Update(ctx context.Context, id uuid.UUID, update dto.CreditorUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
