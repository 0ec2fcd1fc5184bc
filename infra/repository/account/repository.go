// Package account provides the gorm implementation of the account store.
package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mfcarvalho/bookkeep/infra/repository/model"
	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
	repo "github.com/mfcarvalho/bookkeep/pkg/repository"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB, which
// may be a bare connection or a unit-of-work transaction.
func New(db *gorm.DB) repo.AccountRepository {
	return &repository{db: db}
}

// Create implements repository.AccountRepository. The current balance
// is seeded from the initial balance.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	acct := model.Account{
		ID:             uuid.New(),
		Number:         create.Number,
		Name:           create.Name,
		InitialBalance: create.InitialBalance,
		CurrentBalance: create.InitialBalance,
	}
	if err := r.db.WithContext(ctx).Create(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAccountNumberTaken
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// Get implements repository.AccountRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct model.Account
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// GetForUpdate implements repository.AccountRepository. It issues
// SELECT ... FOR UPDATE; the row lock is released when the enclosing
// transaction commits or rolls back.
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct model.Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&acct, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// List implements repository.AccountRepository, newest first.
func (r *repository) List(ctx context.Context) ([]*dto.AccountRead, error) {
	var accts []model.Account
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&accts).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

// PartialUpdate implements repository.AccountRepository. Setting the
// initial balance also resets the current balance to the same value.
func (r *repository) PartialUpdate(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrAccountNumberTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// AdjustBalance implements repository.AccountRepository. The update is
// relative so it composes with the row lock taken by GetForUpdate.
func (r *repository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", id).
		UpdateColumn("current_balance", gorm.Expr("current_balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Delete implements repository.AccountRepository. No referential
// cleanup: historical transfers and payments keep their account ids.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Account{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// mapUpdateDTOToModel maps AccountUpdate to a map for GORM Updates.
func mapUpdateDTOToModel(update dto.AccountUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Number != nil {
		updates["number"] = *update.Number
	}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.InitialBalance != nil {
		updates["initial_balance"] = *update.InitialBalance
		updates["current_balance"] = *update.InitialBalance
	}
	if update.CurrentBalance != nil {
		updates["current_balance"] = *update.CurrentBalance
	}
	return updates
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(acct *model.Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:             acct.ID,
		Number:         acct.Number,
		Name:           acct.Name,
		InitialBalance: acct.InitialBalance,
		CurrentBalance: acct.CurrentBalance,
		CreatedAt:      acct.CreatedAt,
		UpdatedAt:      acct.UpdatedAt,
	}
}
