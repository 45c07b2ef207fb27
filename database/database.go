package database

import (
	"context"
	"fmt"

	"auracash/config"
	"auracash/logger"
	"auracash/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Open connects to the configured database, applies the schema and seeds defaults.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := newDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(cfg.Server.Mode),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Database.Driver, classify(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedDefaultCategories(context.Background(), db); err != nil {
		return nil, err
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("database ready")
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.Goal{},
		&models.Material{},
		&models.SharedAccount{},
		&models.SharedAccountMember{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// SeedDefaultCategories inserts the default categories when the table is empty.
func SeedDefaultCategories(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", classify(err))
	}
	if count > 0 {
		return nil
	}

	defaults := models.GetDefaultCategories()
	cats := make([]models.Category, 0, len(defaults))
	for _, d := range defaults {
		cats = append(cats, models.Category{Name: d.Name, Type: d.Type})
	}
	if err := db.WithContext(ctx).Create(&cats).Error; err != nil {
		return fmt.Errorf("seed categories: %w", classify(err))
	}
	log.Info().Int("count", len(cats)).Msg("seeded default categories")
	return nil
}
