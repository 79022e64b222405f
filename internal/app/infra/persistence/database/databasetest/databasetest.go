// Package databasetest 提供测试用的内存 SQLite 数据库
package databasetest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"oip/account/internal/app/config"
	"oip/account/internal/app/infra/persistence/database"
	"oip/account/internal/app/pkg/logger"
)

// NewSQLite 创建独立的内存库并建表，测试结束时自动关闭
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel: "silent",
	}
	db, err := database.Open(cfg, logger.NewNopLogger())
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := database.InitDB(db); err != nil {
		t.Fatalf("init db failed: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
