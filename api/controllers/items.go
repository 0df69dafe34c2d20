package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/catalogbase/catalog-api/api/responses"
	"github.com/catalogbase/catalog-api/api/validators"
	"github.com/catalogbase/catalog-api/internal/items"
	pkgerrors "github.com/catalogbase/catalog-api/pkg/errors"
	"github.com/catalogbase/catalog-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// ItemService is the surface the items controller depends on.
type ItemService interface {
	Create(ctx context.Context, dto items.CreateItemDTO) (*items.ItemDTO, error)
	Get(ctx context.Context, id uint) (*items.ItemDTO, error)
	List(ctx context.Context) ([]items.ItemDTO, error)
	Update(ctx context.Context, id uint, dto items.UpdateItemDTO) (*items.ItemDTO, error)
	Delete(ctx context.Context, id uint) (*items.ItemDTO, error)
}

// ItemsController handles the item CRUD endpoints.
type ItemsController struct {
	svc  ItemService
	logg *logger.Logger
}

func NewItemsController(svc ItemService, logg *logger.Logger) *ItemsController {
	return &ItemsController{svc: svc, logg: logg}
}

type itemRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description *string `json:"description"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    *string `json:"category"`
}

func itemIDParam(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid item id").
			WithDetails(map[string]string{"id": "id must be an integer"})
	}
	return uint(id), nil
}

// Create handles POST /items/.
func (c *ItemsController) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	item, err := c.svc.Create(r.Context(), items.CreateItemDTO{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Stock:       req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	responses.WriteCreated(w, item)
}

// Get handles GET /items/{id}.
func (c *ItemsController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	item, err := c.svc.Get(r.Context(), id)
	if err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	responses.WriteSuccess(w, item)
}

// List handles GET /items/.
func (c *ItemsController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.svc.List(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	responses.WriteSuccess(w, list)
}

// Update handles PUT /items/{id}.
func (c *ItemsController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	var req itemRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	item, err := c.svc.Update(r.Context(), id, items.UpdateItemDTO{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Stock:       req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	responses.WriteSuccess(w, item)
}

// Delete handles DELETE /items/{id}.
func (c *ItemsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	if _, err := c.svc.Delete(r.Context(), id); err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	responses.WriteNoContent(w)
}
