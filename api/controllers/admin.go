package controllers

import (
	"context"
	"net/http"

	"github.com/catalogbase/catalog-api/api/responses"
	pkgerrors "github.com/catalogbase/catalog-api/pkg/errors"
	"github.com/catalogbase/catalog-api/pkg/logger"
)

// SchemaManager is the storage surface the admin controller depends on.
type SchemaManager interface {
	ResetSchema(ctx context.Context) error
}

// AdminController exposes operational endpoints.
type AdminController struct {
	schema SchemaManager
	logg   *logger.Logger
}

func NewAdminController(schema SchemaManager, logg *logger.Logger) *AdminController {
	return &AdminController{schema: schema, logg: logg}
}

// ResetDatabase handles POST /reset-database/. It drops and recreates every
// table, so ids restart from 1.
func (c *AdminController) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := c.schema.ResetSchema(r.Context()); err != nil {
		responses.WriteError(r.Context(), w, c.logg, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to reset database"))
		return
	}

	c.logg.Warn(r.Context(), "database reset")
	responses.WriteSuccess(w, map[string]string{
		"detail": "Database has been reset",
	})
}
