package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"deskhub/domain/models"
	"deskhub/pkg/logger"
)

type schemaMigration struct {
	Version   int `gorm:"primaryKey"`
	Name      string
	AppliedAt time.Time
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

type migration struct {
	version int
	name    string
	run     func(db *gorm.DB) error
}

// Ordered and append-only. Never renumber or edit an applied entry; add a new
// one instead.
var migrations = []migration{
	{1, "create_users", func(db *gorm.DB) error {
		return db.AutoMigrate(&models.User{})
	}},
	{2, "create_contacts_notes", func(db *gorm.DB) error {
		return db.AutoMigrate(&models.Contact{}, &models.Note{})
	}},
	{3, "create_tasks", func(db *gorm.DB) error {
		return db.AutoMigrate(
			&models.Task{},
			&models.TaskNote{},
			&models.TaskLink{},
			&models.Subtask{},
			&models.Tag{},
		)
	}},
	{4, "create_events_bookmarks", func(db *gorm.DB) error {
		return db.AutoMigrate(&models.Event{}, &models.Bookmark{})
	}},
	{5, "create_mail_accounts", func(db *gorm.DB) error {
		return db.AutoMigrate(&models.GmailAccount{}, &models.OutlookAccount{})
	}},
}

// Migrate applies pending migrations in version order, recording each in
// schema_migrations so reruns are no-ops.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("failed to prepare schema_migrations: %w", err)
	}

	var applied []schemaMigration
	if err := db.Find(&applied).Error; err != nil {
		return fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, m := range applied {
		done[m.Version] = true
	}

	for _, m := range migrations {
		if done[m.version] {
			continue
		}
		if err := m.run(db); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		record := schemaMigration{Version: m.version, Name: m.name, AppliedAt: time.Now()}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
		logger.Info("applied migration", "version", m.version, "name", m.name)
	}

	return nil
}
