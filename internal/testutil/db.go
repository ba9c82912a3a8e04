package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ashwinyue/next-support/internal/model"
)

// NewTestDB 创建独立的内存 SQLite 数据库并完成迁移
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	// 内存库在最后一个连接关闭时销毁，固定单连接
	return openTestDB(t, dsn, 1)
}

// NewFileTestDB 创建临时目录下的文件 SQLite 数据库并完成迁移
// 开启 WAL 与忙等待，允许多个连接并发写入
func NewFileTestDB(t *testing.T, maxOpenConns int) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	return openTestDB(t, dsn, maxOpenConns)
}

func openTestDB(t *testing.T, dsn string, maxOpenConns int) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.AllModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
