package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, entry *ActivityLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ActivityRepository) GetByProject(
	ctx context.Context,
	projectID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*ActivityLog, error) {
	entries := make([]*ActivityLog, 0)

	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if beforeDate != nil {
		query = query.Where("created_at < ?", *beforeDate)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, err
}
