package items

import (
	"github.com/catalogbase/catalog-api/pkg/db/models"
)

// ItemDTO is the transport shape for a catalog item.
type ItemDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	Stock       int     `json:"stock"`
	Category    *string `json:"category"`
}

// CreateItemDTO carries the fields accepted when creating an item.
type CreateItemDTO struct {
	Name        string
	Price       float64
	Description *string
	Stock       int
	Category    *string
}

// UpdateItemDTO carries a full replacement for an existing item. Every field
// is applied; omitted optional fields clear the stored value.
type UpdateItemDTO struct {
	Name        string
	Price       float64
	Description *string
	Stock       int
	Category    *string
}

func FromModel(m *models.Item) *ItemDTO {
	if m == nil {
		return nil
	}

	return &ItemDTO{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		Stock:       m.Stock,
		Category:    m.Category,
	}
}

func FromModels(ms []models.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}

func (c CreateItemDTO) ToModel() *models.Item {
	return &models.Item{
		Name:        c.Name,
		Price:       c.Price,
		Description: c.Description,
		Stock:       c.Stock,
		Category:    c.Category,
	}
}
