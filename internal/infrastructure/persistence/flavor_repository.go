package persistence

import (
	"context"
	"errors"

	"github.com/jellybean/emporium/internal/domain/catalog"
	"github.com/jellybean/emporium/internal/domain/shared"
	"github.com/jellybean/emporium/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFlavorRepository implements FlavorRepository using GORM
type GormFlavorRepository struct {
	db *gorm.DB
}

// NewGormFlavorRepository creates a new GormFlavorRepository
func NewGormFlavorRepository(db *gorm.DB) *GormFlavorRepository {
	return &GormFlavorRepository{db: db}
}

// FindByID finds a flavor by its ID
func (r *GormFlavorRepository) FindByID(ctx context.Context, id uint64) (*catalog.Flavor, error) {
	var model models.FlavorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every flavor ordered by ID
func (r *GormFlavorRepository) FindAll(ctx context.Context) ([]catalog.Flavor, error) {
	var flavorModels []models.FlavorModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&flavorModels).Error; err != nil {
		return nil, err
	}

	flavors := make([]catalog.Flavor, len(flavorModels))
	for i, model := range flavorModels {
		flavors[i] = *model.ToDomain()
	}
	return flavors, nil
}

// Create inserts a new flavor and writes the generated ID back to the entity
func (r *GormFlavorRepository) Create(ctx context.Context, flavor *catalog.Flavor) error {
	var model models.FlavorModel
	model.FromDomain(flavor)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}

	flavor.ID = model.ID
	return nil
}

// Update persists changes to an existing flavor
func (r *GormFlavorRepository) Update(ctx context.Context, flavor *catalog.Flavor) error {
	var model models.FlavorModel
	model.FromDomain(flavor)

	result := r.db.WithContext(ctx).
		Model(&models.FlavorModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"flavor":    model.Flavor,
			"image_key": model.ImageKey,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete permanently deletes a flavor
func (r *GormFlavorRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&models.FlavorModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
