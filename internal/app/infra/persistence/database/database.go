package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"oip/account/internal/app/config"
	"oip/account/internal/app/infra/persistence/entity"
	"oip/account/internal/app/pkg/logger"
)

// Open 按配置打开数据库连接
func Open(cfg config.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	dialector, err := newDialector(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// 唯一索引冲突等错误统一翻译为 gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         NewGormLogger(log, cfg.LogLevel, 200*time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite 单写连接，避免内存库在多连接间不可见
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func newDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// InitDB 确保账号表存在
func InitDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Account{}); err != nil {
		return fmt.Errorf("auto migrate accounts failed: %w", err)
	}
	return nil
}

// Recreate 删除并重建账号表
func Recreate(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&entity.Account{}); err != nil {
		return fmt.Errorf("drop accounts failed: %w", err)
	}
	return InitDB(db)
}

// Close 关闭数据库连接
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
