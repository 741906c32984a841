package storage

import (
	"fmt"

	"teamcamp/internal/features/activity"
	"teamcamp/internal/features/files"
	projects_models "teamcamp/internal/features/projects/models"
	"teamcamp/internal/features/tasks"
	users_models "teamcamp/internal/features/users/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// Connect opens the Postgres handle. The handle is created once at process
// start and passed into repositories; there is no package-level singleton.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users_models.User{},
		&projects_models.Project{},
		&projects_models.ProjectMembership{},
		&projects_models.GuestMember{},
		&tasks.Task{},
		&files.FileRecord{},
		&activity.ActivityLog{},
	)
}

// Close releases the underlying connection pool at shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
