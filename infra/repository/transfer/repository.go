// Package transfer provides the gorm implementation of the transfer
// record store. Balance mutation is not done here; the transfer service
// drives it through the account repository inside one unit of work.
package transfer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mfcarvalho/bookkeep/infra/repository/model"
	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
	repo "github.com/mfcarvalho/bookkeep/pkg/repository"
)

type repository struct {
	db *gorm.DB
}

// New creates a transfer repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.TransferRepository {
	return &repository{db: db}
}

// Create implements repository.TransferRepository.
func (r *repository) Create(ctx context.Context, create dto.TransferCreate) (*dto.TransferRead, error) {
	t := model.AccountTransfer{
		ID:            uuid.New(),
		FromAccountID: create.FromAccountID,
		ToAccountID:   create.ToAccountID,
		Amount:        create.Amount,
		Description:   create.Description,
	}
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&t), nil
}

// Get implements repository.TransferRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.TransferRead, error) {
	var t model.AccountTransfer
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransferNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&t), nil
}

// List implements repository.TransferRepository, newest first.
func (r *repository) List(ctx context.Context) ([]*dto.TransferRead, error) {
	var transfers []model.AccountTransfer
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&transfers).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransferRead, 0, len(transfers))
	for i := range transfers {
		result = append(result, mapModelToDTO(&transfers[i]))
	}
	return result, nil
}

// Delete implements repository.TransferRepository.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AccountTransfer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransferNotFound
	}
	return nil
}

func mapModelToDTO(t *model.AccountTransfer) *dto.TransferRead {
	return &dto.TransferRead{
		ID:            t.ID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
}
