package postgres

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openMigrateTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestMigrateAppliesInOrderAndIsIdempotent(t *testing.T) {
	db := openMigrateTestDB(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	var applied []schemaMigration
	if err := db.Order("version asc").Find(&applied).Error; err != nil {
		t.Fatalf("read schema_migrations: %v", err)
	}
	if len(applied) != len(migrations) {
		t.Fatalf("applied = %d migrations, want %d", len(applied), len(migrations))
	}
	for i, m := range migrations {
		if applied[i].Version != m.version || applied[i].Name != m.name {
			t.Errorf("applied[%d] = %d %q, want %d %q", i, applied[i].Version, applied[i].Name, m.version, m.name)
		}
	}

	// Rerun must be a no-op, not a duplicate insert.
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate rerun: %v", err)
	}
	var count int64
	if err := db.Model(&schemaMigration{}).Count(&count).Error; err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != int64(len(migrations)) {
		t.Errorf("rows after rerun = %d, want %d", count, len(migrations))
	}

	if !db.Migrator().HasTable("tasks") || !db.Migrator().HasTable("task_tags") {
		t.Error("expected task tables to exist after migration")
	}
}
