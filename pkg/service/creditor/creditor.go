// Package creditor provides business logic for creditor reference data.
package creditor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mfcarvalho/bookkeep/pkg/dto"
	"github.com/mfcarvalho/bookkeep/pkg/repository"
)

// Service provides creditor CRUD over a UnitOfWork.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create registers a new creditor.
func (s *Service) Create(ctx context.Context, create dto.CreditorCreate) (read *dto.CreditorRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		creditors, err := uow.CreditorRepository()
		if err != nil {
			return err
		}
		read, err = creditors.Create(ctx, create)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("creditor created", "creditor_id", read.ID, "name", read.Name)
	return read, nil
}

// Get retrieves a creditor by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.CreditorRead, error) {
	creditors, err := s.uow.CreditorRepository()
	if err != nil {
		return nil, err
	}
	return creditors.Get(ctx, id)
}

// List returns all creditors, newest first.
func (s *Service) List(ctx context.Context) ([]*dto.CreditorRead, error) {
	creditors, err := s.uow.CreditorRepository()
	if err != nil {
		return nil, err
	}
	return creditors.List(ctx)
}

// Update applies a partial update and returns the refreshed creditor.
func (s *Service) Update(ctx context.Context, id uuid.UUID, update dto.CreditorUpdate) (read *dto.CreditorRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		creditors, err := uow.CreditorRepository()
		if err != nil {
			return err
		}
		if err := creditors.Update(ctx, id, update); err != nil {
			return err
		}
		read, err = creditors.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return read, nil
}

// Delete removes a creditor. Payments referencing it keep their
// creditor id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		creditors, err := uow.CreditorRepository()
		if err != nil {
			return err
		}
		return creditors.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("creditor deleted", "creditor_id", id)
	return nil
}
