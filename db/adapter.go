package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kasuganosora/packmule/config"
	dbmysql "github.com/kasuganosora/packmule/db/mysql"
	dbsqlite "github.com/kasuganosora/packmule/db/sqlite"
	"gorm.io/gorm"
)

// Open returns a *gorm.DB for the configured database mode.
// Mode "none" returns a nil DB and no error.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Mode {
	case config.ModeNone, "":
		return nil, nil
	case config.ModeSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("db: create sqlite directory: %w", err)
			}
		}
		return dbsqlite.Open(cfg.SQLitePath)
	case config.ModeMySQL:
		return dbmysql.Open(cfg.MySQLDSN, cfg.MySQLMaxOpen, cfg.MySQLMaxIdle, cfg.MySQLMaxLife)
	default:
		return nil, fmt.Errorf("db: unknown mode %q", cfg.Mode)
	}
}

// Close releases the connection pool behind db. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
