package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/govprop/backend/internal/domain/issueslip"
	"github.com/govprop/backend/internal/domain/loss"
	"github.com/govprop/backend/internal/domain/maintenance"
	"github.com/govprop/backend/internal/domain/requisition"
	"github.com/govprop/backend/internal/domain/returns"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/govprop/backend/internal/domain/waste"
	"github.com/govprop/backend/internal/infrastructure/config"
	"github.com/govprop/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database owns the gorm handle of the stock ledger store
type Database struct {
	DB *gorm.DB
}

// Open connects to PostgreSQL, sizes the pool and verifies the connection
func Open(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	return open(postgres.Open(cfg.DSN()), cfg, gormLogger)
}

func open(dialector gorm.Dialector, cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Database{DB: db}, nil
}

// SQL exposes the pool for health checks and migrations
func (d *Database) SQL() (*sql.DB, error) {
	return d.DB.DB()
}

// Close closes the pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// AllModels lists every table owned by this service, in dependency order.
// Tests migrate these on sqlite; production uses the SQL files under migrations/.
func AllModels() []any {
	return []any{
		&models.OfficeModel{},
		&models.UserModel{},
		&models.AssetModel{},
		&models.CounterModel{},
		&models.SettingModel{},
		&stock.Entry{},
		&issueslip.IssueSlip{},
		&issueslip.IssueSlipStock{},
		&returns.Return{},
		&returns.ReturnItem{},
		&loss.Loss{},
		&loss.LossItem{},
		&waste.Waste{},
		&waste.WasteItem{},
		&maintenance.Maintenance{},
		&requisition.Requisition{},
		&requisition.RequisitionItem{},
	}
}
