package repository

import (
	"context"
	"reflect"
)

// UnitOfWork is the transaction boundary for balance mutations. All
// repositories obtained inside Do share one database transaction, so a
// debit, a credit and the transfer record either all persist or none
// do. Repositories obtained outside Do run on the bare connection.
//
// GetRepository lives on UnitOfWork so that service code cannot
// accidentally mix sessions; the typed accessors are convenience
// wrappers over it.
type UnitOfWork interface {
	// Do executes fn within a transaction. If fn returns an error the
	// transaction is rolled back and the error is returned unchanged.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface
	// type bound to the current session.
	GetRepository(repoType reflect.Type) (any, error)

	AccountRepository() (AccountRepository, error)
	TransferRepository() (TransferRepository, error)
	PaymentRepository() (PaymentRepository, error)
	CreditorRepository() (CreditorRepository, error)
}
