// Package transfer implements the transfer engine: atomic movement of
// funds between two distinct accounts and atomic reversal on deletion.
package transfer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
	"github.com/mfcarvalho/bookkeep/pkg/repository"
)

// Service provides transfer operations. Every balance-affecting path
// runs inside one unit of work with both account rows locked in
// canonical order.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create moves funds between two accounts. The source balance is
// re-checked under the row lock, so either the full debit/credit pair
// and the transfer record commit together or nothing changes.
func (s *Service) Create(ctx context.Context, create dto.TransferCreate) (read *dto.TransferRead, err error) {
	if err = domain.ValidateTransfer(create.FromAccountID, create.ToAccountID, create.Amount); err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}

		source, _, err := lockPair(ctx, accounts, create.FromAccountID, create.ToAccountID)
		if err != nil {
			return err
		}

		// Existence was only a precondition; the balance may have moved
		// since. The lock makes this check authoritative.
		if source.CurrentBalance.LessThan(create.Amount) {
			return domain.ErrInsufficientFunds
		}

		if err := accounts.AdjustBalance(ctx, create.FromAccountID, create.Amount.Neg()); err != nil {
			return err
		}
		if err := accounts.AdjustBalance(ctx, create.ToAccountID, create.Amount); err != nil {
			return err
		}

		read, err = transfers.Create(ctx, create)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transfer created",
		"transfer_id", read.ID,
		"from_account_id", read.FromAccountID,
		"to_account_id", read.ToAccountID,
		"amount", read.Amount,
	)
	return read, nil
}

// Get retrieves a transfer by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.TransferRead, error) {
	transfers, err := s.uow.TransferRepository()
	if err != nil {
		return nil, err
	}
	return transfers.Get(ctx, id)
}

// List returns all transfers, newest first.
func (s *Service) List(ctx context.Context) ([]*dto.TransferRead, error) {
	transfers, err := s.uow.TransferRepository()
	if err != nil {
		return nil, err
	}
	return transfers.List(ctx)
}

// Delete reverses a transfer and removes its record in one unit of
// work: the source is credited back and the destination debited. If
// the destination balance would go negative the whole unit aborts with
// ErrInvalidReversal and the transfer is kept.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		t, err := transfers.Get(ctx, id)
		if err != nil {
			return err
		}

		_, dest, err := lockPair(ctx, accounts, t.FromAccountID, t.ToAccountID)
		if err != nil {
			return err
		}

		if dest.CurrentBalance.Sub(t.Amount).IsNegative() {
			return domain.ErrInvalidReversal
		}

		if err := accounts.AdjustBalance(ctx, t.FromAccountID, t.Amount); err != nil {
			return err
		}
		if err := accounts.AdjustBalance(ctx, t.ToAccountID, t.Amount.Neg()); err != nil {
			return err
		}

		return transfers.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("transfer reversed", "transfer_id", id)
	return nil
}

// lockPair locks both account rows in canonical order and returns them
// as (source, destination). The order of acquisition depends only on
// the ids, never on the transfer direction.
func lockPair(
	ctx context.Context,
	accounts repository.AccountRepository,
	fromID, toID uuid.UUID,
) (source, dest *dto.AccountRead, err error) {
	firstID, secondID := domain.LockOrder(fromID, toID)

	first, err := accounts.GetForUpdate(ctx, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := accounts.GetForUpdate(ctx, secondID)
	if err != nil {
		return nil, nil, err
	}

	if firstID == fromID {
		return first, second, nil
	}
	return second, first, nil
}
