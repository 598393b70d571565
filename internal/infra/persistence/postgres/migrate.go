package postgres

import (
	"context"
	"log/slog"

	"tiffin/config"
	"tiffin/internal/errors"
	"tiffin/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Indexes that GORM tags cannot express.
var migrationIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_holiday_student_vendor_date
		ON holidays (student_id, COALESCE(vendor_id, '00000000-0000-0000-0000-000000000000'::uuid), date)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_customer_vendor_student
		ON customers (vendor_id, student_id) WHERE student_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_device_user_device
		ON user_devices (user_id, device_id) WHERE deleted_at IS NULL`,
}

// Migrate creates or updates the schema. It is a no-op unless database.autoMigrate is set.
func Migrate(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Database == nil || !cfg.Database.AutoMigrate {
		return nil
	}

	return migrate(ctx, db, logger)
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}

	for _, stmt := range migrationIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "failed to create index")
		}
	}

	logger.InfoContext(ctx, "Database schema migrated", slog.Int("tables", len(model.All())))

	return nil
}
