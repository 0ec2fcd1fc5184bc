// Package account provides business logic for account management:
// creation, partial updates, deletion and deposits.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
	"github.com/mfcarvalho/bookkeep/pkg/repository"
)

// Service provides account operations over a UnitOfWork.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create opens a new account. The current balance is seeded from the
// initial balance; a duplicate number yields ErrAccountNumberTaken.
func (s *Service) Create(ctx context.Context, create dto.AccountCreate) (read *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		read, err = accounts.Create(ctx, create)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account created", "account_id", read.ID, "number", read.Number)
	return read, nil
}

// Get retrieves an account by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return accounts.Get(ctx, id)
}

// List returns all accounts, newest first.
func (s *Service) List(ctx context.Context) ([]*dto.AccountRead, error) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return accounts.List(ctx)
}

// Update applies a partial update and returns the refreshed account.
// Supplying InitialBalance resets CurrentBalance to the same value,
// discarding accumulated transaction history; callers opt into that.
func (s *Service) Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) (read *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if err := accounts.PartialUpdate(ctx, id, update); err != nil {
			return err
		}
		read, err = accounts.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return read, nil
}

// Delete removes an account. Deletion is terminal: historical
// transfers and payments keep their references and no balances are
// repaired.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return accounts.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("account deleted", "account_id", id)
	return nil
}

// Deposit credits the account balance. Like every balance mutation it
// goes through the locked primitive inside one unit of work.
func (s *Service) Deposit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (read *dto.AccountRead, err error) {
	if !amount.IsPositive() {
		return nil, domain.ErrAmountMustBePositive
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := accounts.GetForUpdate(ctx, id); err != nil {
			return err
		}
		if err := accounts.AdjustBalance(ctx, id, amount); err != nil {
			return err
		}
		read, err = accounts.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("deposit applied", "account_id", id, "amount", amount)
	return read, nil
}
