// Package payment implements the payment engine: tax-adjusted amount
// computation and a single atomic debit of the paying account.
package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
	"github.com/mfcarvalho/bookkeep/pkg/repository"
)

// Service provides payment operations over a UnitOfWork.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create resolves the effective amount (net of tax when gross figures
// are supplied, the raw amount otherwise), then locks the paying
// account, debits it exactly once and persists the record, all in one
// unit of work. The debit is unconditional: payments carry no
// insufficient-funds guard.
func (s *Service) Create(ctx context.Context, create dto.PaymentCreate) (read *dto.PaymentRead, err error) {
	amounts, err := domain.ResolvePaymentAmounts(create.Amount, create.GrossAmount, create.TaxRate)
	if err != nil {
		return nil, err
	}
	if create.Status != "" && !domain.PaymentStatus(create.Status).Valid() {
		return nil, domain.ErrInvalidPaymentStatus
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		creditors, err := uow.CreditorRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		payments, err := uow.PaymentRepository()
		if err != nil {
			return err
		}

		if _, err := creditors.Get(ctx, create.CreditorID); err != nil {
			return err
		}
		if _, err := accounts.GetForUpdate(ctx, create.AccountID); err != nil {
			return err
		}
		if err := accounts.AdjustBalance(ctx, create.AccountID, amounts.Amount.Neg()); err != nil {
			return err
		}

		read, err = payments.Create(ctx, create, amounts)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment created",
		"payment_id", read.ID,
		"account_id", read.AccountID,
		"creditor_id", read.CreditorID,
		"amount", read.Amount,
		"status", read.Status,
	)
	return read, nil
}

// Get retrieves a payment by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.PaymentRead, error) {
	payments, err := s.uow.PaymentRepository()
	if err != nil {
		return nil, err
	}
	return payments.Get(ctx, id)
}

// List returns all payments, newest first.
func (s *Service) List(ctx context.Context) ([]*dto.PaymentRead, error) {
	payments, err := s.uow.PaymentRepository()
	if err != nil {
		return nil, err
	}
	return payments.List(ctx)
}

// Delete removes the payment record only. The account balance is NOT
// restored; payment deletion is asymmetric with transfer reversal.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		payments, err := uow.PaymentRepository()
		if err != nil {
			return err
		}
		return payments.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("payment deleted", "payment_id", id)
	return nil
}
