package repository

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"github.com/mfcarvalho/bookkeep/infra/repository/account"
	"github.com/mfcarvalho/bookkeep/infra/repository/creditor"
	"github.com/mfcarvalho/bookkeep/infra/repository/payment"
	"github.com/mfcarvalho/bookkeep/infra/repository/transfer"
	"github.com/mfcarvalho/bookkeep/pkg/repository"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Every repository handed out inside Do is bound to the
// same gorm transaction, so a debit, a credit and the record insert
// commit or roll back together. Row locks taken via GetForUpdate live
// exactly as long as that transaction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.AccountRepository)(nil)).Elem():  func(db *gorm.DB) any { return account.New(db) },
			reflect.TypeOf((*repository.TransferRepository)(nil)).Elem(): func(db *gorm.DB) any { return transfer.New(db) },
			reflect.TypeOf((*repository.PaymentRepository)(nil)).Elem():  func(db *gorm.DB) any { return payment.New(db) },
			reflect.TypeOf((*repository.CreditorRepository)(nil)).Elem(): func(db *gorm.DB) any { return creditor.New(db) },
		},
	}
}

// Do runs fn inside one database transaction. An error from fn rolls
// everything back and is returned unchanged so callers can match
// domain sentinels with errors.Is.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository provides generic access to repositories bound to the
// current session: the transaction inside Do, the bare connection
// otherwise.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// AccountRepository returns the account repository for the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.AccountRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.AccountRepository), nil
}

// TransferRepository returns the transfer repository for the current session.
func (u *UoW) TransferRepository() (repository.TransferRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.TransferRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.TransferRepository), nil
}

// PaymentRepository returns the payment repository for the current session.
func (u *UoW) PaymentRepository() (repository.PaymentRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.PaymentRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.PaymentRepository), nil
}

// CreditorRepository returns the creditor repository for the current session.
func (u *UoW) CreditorRepository() (repository.CreditorRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.CreditorRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.CreditorRepository), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
