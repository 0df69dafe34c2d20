package db

import (
	"context"
	"fmt"

	"github.com/catalogbase/catalog-api/pkg/config"
	"github.com/catalogbase/catalog-api/pkg/db/models"
	"gorm.io/gorm"
)

// schemaModels lists every table the service owns, in dependency order.
var schemaModels = []any{&models.Item{}, &models.User{}}

// InitSchema idempotently ensures all tables exist.
func (c *Client) InitSchema(ctx context.Context) error {
	if err := c.conn.WithContext(ctx).AutoMigrate(schemaModels...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// WipeData deletes every row from every table without touching the schema.
// On sqlite, foreign key enforcement is suspended around the loop so delete
// order does not matter.
func (c *Client) WipeData(ctx context.Context) error {
	if c.driver == config.DriverSQLite {
		if err := c.Exec(ctx, "PRAGMA foreign_keys = OFF").Error; err != nil {
			return fmt.Errorf("disabling foreign keys: %w", err)
		}
		defer c.Exec(ctx, "PRAGMA foreign_keys = ON")
	}

	tx := c.conn.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for i := len(schemaModels) - 1; i >= 0; i-- {
		if err := tx.Delete(schemaModels[i]).Error; err != nil {
			return fmt.Errorf("wiping table %T: %w", schemaModels[i], err)
		}
	}
	return nil
}

// ResetSchema drops and recreates every table. Destructive by design.
func (c *Client) ResetSchema(ctx context.Context) error {
	migrator := c.conn.WithContext(ctx).Migrator()
	for i := len(schemaModels) - 1; i >= 0; i-- {
		if err := migrator.DropTable(schemaModels[i]); err != nil {
			return fmt.Errorf("dropping table %T: %w", schemaModels[i], err)
		}
	}
	return c.InitSchema(ctx)
}
