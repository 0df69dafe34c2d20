package items

import (
	"context"

	"github.com/catalogbase/catalog-api/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes item persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an items repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new item and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateItemDTO) (*models.Item, error) {
	item := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID loads an item by primary key. A missing row surfaces as
// gorm.ErrRecordNotFound.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every item ordered by primary key.
func (r *Repository) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies a full replacement of the item's mutable fields. Select
// forces writes for zero and nil values so omitted optionals clear out.
func (r *Repository) Update(ctx context.Context, item *models.Item, dto UpdateItemDTO) error {
	updates := map[string]any{
		"name":        dto.Name,
		"price":       dto.Price,
		"description": dto.Description,
		"stock":       dto.Stock,
		"category":    dto.Category,
	}
	return r.db.WithContext(ctx).Model(item).Select("name", "price", "description", "stock", "category").Updates(updates).Error
}

// Delete removes the item row.
func (r *Repository) Delete(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Delete(item).Error
}
