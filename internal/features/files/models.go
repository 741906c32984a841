package files

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord is metadata only. The bytes live in the object store under
// FilePath; uploads go there directly and only the record passes through here.
type FileRecord struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id;primaryKey"`
	ProjectID  uuid.UUID `json:"projectId"  gorm:"column:project_id;index"`
	FileName   string    `json:"fileName"   gorm:"column:file_name"`
	FilePath   string    `json:"filePath"   gorm:"column:file_path"`
	FileSize   int64     `json:"fileSize"   gorm:"column:file_size"`
	FileType   string    `json:"fileType"   gorm:"column:file_type"`
	UploadedBy uuid.UUID `json:"uploadedBy" gorm:"column:uploaded_by"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
}

func (FileRecord) TableName() string {
	return "files"
}
