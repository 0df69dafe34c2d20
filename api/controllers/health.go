package controllers

import (
	"context"
	"net/http"

	"github.com/catalogbase/catalog-api/api/responses"
	pkgerrors "github.com/catalogbase/catalog-api/pkg/errors"
	"github.com/catalogbase/catalog-api/pkg/logger"
)

// Pinger is anything that can confirm a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves liveness and readiness probes. The redis pinger is
// optional and skipped when nil.
type HealthController struct {
	db    Pinger
	redis Pinger
	logg  *logger.Logger
}

func NewHealthController(db, redis Pinger, logg *logger.Logger) *HealthController {
	return &HealthController{db: db, redis: redis, logg: logg}
}

// Live handles GET /health/live.
func (c *HealthController) Live(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}

// Ready handles GET /health/ready.
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if c.db != nil {
		if err := c.db.Ping(ctx); err != nil {
			responses.WriteError(ctx, w, c.logg, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}
	}
	if c.redis != nil {
		if err := c.redis.Ping(ctx); err != nil {
			responses.WriteError(ctx, w, c.logg, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
			return
		}
	}

	responses.WriteSuccess(w, map[string]string{"status": "ready"})
}
