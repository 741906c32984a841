package files

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, record *FileRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Create(record).Error
}

// GetByID returns nil without error when the record does not exist.
func (r *FileRepository) GetByID(ctx context.Context, fileID uuid.UUID) (*FileRecord, error) {
	var record FileRecord

	err := r.db.WithContext(ctx).Where("id = ?", fileID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &record, nil
}

func (r *FileRepository) GetByProject(ctx context.Context, projectID uuid.UUID) ([]*FileRecord, error) {
	records := make([]*FileRecord, 0)

	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&records).Error

	return records, err
}

func (r *FileRepository) Delete(ctx context.Context, fileID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", fileID).
		Delete(&FileRecord{}).Error
}
