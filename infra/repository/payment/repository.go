// Package payment provides the gorm implementation of the payment
// record store.
package payment

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

// New creates a payment repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.PaymentRepository {
	return &repository{db: db}
}

// Create implements repository.PaymentRepository. The amounts carry
// the already-resolved debit amount and the derived tax figures.
func (r *repository) Create(ctx context.Context, create dto.PaymentCreate, amounts domain.PaymentAmounts) (*dto.PaymentRead, error) {
	status := create.Status
	if status == "" {
		status = string(domain.PaymentPending)
	}
	p := model.Payment{
		ID:          uuid.New(),
		AccountID:   create.AccountID,
		CreditorID:  create.CreditorID,
		Amount:      amounts.Amount,
		GrossAmount: amounts.GrossAmount,
		TaxRate:     amounts.TaxRate,
		TaxAmount:   amounts.TaxAmount,
		NetAmount:   amounts.NetAmount,
		PaymentDate: create.PaymentDate,
		Status:      status,
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&p), nil
}

// Get implements repository.PaymentRepository. The referenced account
// and creditor records are included when they still exist.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.PaymentRead, error) {
	var p model.Payment
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Creditor").
		First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&p), nil
}

// List implements repository.PaymentRepository, newest first.
func (r *repository) List(ctx context.Context) ([]*dto.PaymentRead, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Creditor").
		Order("created_at desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PaymentRead, 0, len(payments))
	for i := range payments {
		result = append(result, mapModelToDTO(&payments[i]))
	}
	return result, nil
}

// Delete implements repository.PaymentRepository. Only the record is
// removed; the owning account balance stays as it is.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Payment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func mapModelToDTO(p *model.Payment) *dto.PaymentRead {
	read := &dto.PaymentRead{
		ID:          p.ID,
		AccountID:   p.AccountID,
		CreditorID:  p.CreditorID,
		Amount:      p.Amount,
		GrossAmount: p.GrossAmount,
		TaxRate:     p.TaxRate,
		TaxAmount:   p.TaxAmount,
		NetAmount:   p.NetAmount,
		PaymentDate: p.PaymentDate,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
	if p.Account != nil {
		read.Account = &dto.AccountRead{
			ID:             p.Account.ID,
			Number:         p.Account.Number,
			Name:           p.Account.Name,
			InitialBalance: p.Account.InitialBalance,
			CurrentBalance: p.Account.CurrentBalance,
			CreatedAt:      p.Account.CreatedAt,
			UpdatedAt:      p.Account.UpdatedAt,
		}
	}
	if p.Creditor != nil {
		read.Creditor = &dto.CreditorRead{
			ID:        p.Creditor.ID,
			Name:      p.Creditor.Name,
			CreatedAt: p.Creditor.CreatedAt,
			UpdatedAt: p.Creditor.UpdatedAt,
		}
		if p.Creditor.Document != nil {
			read.Creditor.Document = *p.Creditor.Document
		}
	}
	return read
}
