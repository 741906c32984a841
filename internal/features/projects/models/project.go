package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}

	return false
}

type Project struct {
	ID          uuid.UUID     `json:"id"          gorm:"column:id;primaryKey"`
	Name        string        `json:"name"        gorm:"column:name"`
	Description string        `json:"description" gorm:"column:description"`
	Status      ProjectStatus `json:"status"      gorm:"column:status"`
	StartDate   *time.Time    `json:"startDate"   gorm:"column:start_date"`
	EndDate     *time.Time    `json:"endDate"     gorm:"column:end_date"`

	// CreatedBy is immutable after creation. The creator implicitly holds the
	// owner role and never needs a membership row.
	CreatedBy uuid.UUID `json:"createdBy" gorm:"column:created_by"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
