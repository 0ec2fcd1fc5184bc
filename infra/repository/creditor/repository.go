// Package creditor provides the gorm implementation of the creditor store.
package creditor

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

// New creates a creditor repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.CreditorRepository {
	return &repository{db: db}
}

// Create implements repository.CreditorRepository. An empty document
// is stored as NULL so uniqueness only applies among supplied values.
func (r *repository) Create(ctx context.Context, create dto.CreditorCreate) (*dto.CreditorRead, error) {
	c := model.Creditor{
		ID:       uuid.New(),
		Name:     create.Name,
		Document: documentOrNil(create.Document),
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCreditorDocumentTaken
		}
		return nil, err
	}
	return mapModelToDTO(&c), nil
}

// Get implements repository.CreditorRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.CreditorRead, error) {
	var c model.Creditor
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCreditorNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&c), nil
}

// List implements repository.CreditorRepository, newest first.
func (r *repository) List(ctx context.Context) ([]*dto.CreditorRead, error) {
	var creditors []model.Creditor
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&creditors).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.CreditorRead, 0, len(creditors))
	for i := range creditors {
		result = append(result, mapModelToDTO(&creditors[i]))
	}
	return result, nil
}

// Update implements repository.CreditorRepository.
func (r *repository) Update(ctx context.Context, id uuid.UUID, update dto.CreditorUpdate) error {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Document != nil {
		updates["document"] = documentOrNil(*update.Document)
	}
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&model.Creditor{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrCreditorDocumentTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCreditorNotFound
	}
	return nil
}

// Delete implements repository.CreditorRepository.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Creditor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCreditorNotFound
	}
	return nil
}

func documentOrNil(document string) *string {
	if document == "" {
		return nil
	}
	return &document
}

func mapModelToDTO(c *model.Creditor) *dto.CreditorRead {
	read := &dto.CreditorRead{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Document != nil {
		read.Document = *c.Document
	}
	return read
}
