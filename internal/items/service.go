package items

import (
	"context"
	"errors"

	"github.com/catalogbase/catalog-api/pkg/db"
	pkgerrors "github.com/catalogbase/catalog-api/pkg/errors"
	"github.com/catalogbase/catalog-api/pkg/logger"
	"gorm.io/gorm"
)

// Service implements the item catalog operations.
type Service struct {
	db   *db.Client
	logg *logger.Logger
}

// NewService wires the items service with its storage client.
func NewService(client *db.Client, logg *logger.Logger) *Service {
	return &Service{db: client, logg: logg}
}

// Create persists a new item and returns the stored record with its id.
func (s *Service) Create(ctx context.Context, dto CreateItemDTO) (*ItemDTO, error) {
	repo := NewRepository(s.db.DB())
	item, err := repo.Create(ctx, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create item")
	}
	s.logg.Info(s.logg.WithField(ctx, "item_id", item.ID), "item created")
	return FromModel(item), nil
}

// Get returns the item with the given id.
func (s *Service) Get(ctx context.Context, id uint) (*ItemDTO, error) {
	repo := NewRepository(s.db.DB())
	item, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load item")
	}
	return FromModel(item), nil
}

// List returns every item. An empty catalog yields an empty slice, not nil.
func (s *Service) List(ctx context.Context) ([]ItemDTO, error) {
	repo := NewRepository(s.db.DB())
	items, err := repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list items")
	}
	return FromModels(items), nil
}

// Update replaces every stored field of the item with the supplied values
// and returns the updated record. The load and write share a transaction so
// a concurrent delete cannot slip between them.
func (s *Service) Update(ctx context.Context, id uint, dto UpdateItemDTO) (*ItemDTO, error) {
	var updated *ItemDTO
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		item, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load item")
		}
		if err := repo.Update(ctx, item, dto); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update item")
		}
		fresh, err := repo.FindByID(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to reload item")
		}
		updated = FromModel(fresh)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logg.Info(s.logg.WithField(ctx, "item_id", id), "item updated")
	return updated, nil
}

// Delete removes the item and returns its last stored values.
func (s *Service) Delete(ctx context.Context, id uint) (*ItemDTO, error) {
	var deleted *ItemDTO
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		item, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load item")
		}
		if err := repo.Delete(ctx, item); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to delete item")
		}
		deleted = FromModel(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logg.Info(s.logg.WithField(ctx, "item_id", id), "item deleted")
	return deleted, nil
}
