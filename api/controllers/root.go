package controllers

import (
	"net/http"

	"github.com/catalogbase/catalog-api/api/responses"
	"github.com/catalogbase/catalog-api/pkg/config"
)

// RootController serves the landing message and the favicon shim.
type RootController struct {
	app config.AppConfig
}

func NewRootController(app config.AppConfig) *RootController {
	return &RootController{app: app}
}

// Welcome handles GET /.
func (c *RootController) Welcome(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{
		"message": "Welcome to the " + c.app.Title,
	})
}

// Favicon answers browser favicon probes with an empty 204 so they stay out
// of the error logs.
func (c *RootController) Favicon(w http.ResponseWriter, r *http.Request) {
	responses.WriteNoContent(w)
}
