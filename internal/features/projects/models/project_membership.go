package projects_models

import (
	"time"

	"teamcamp/internal/authz"

	"github.com/google/uuid"
)

// ProjectMembership links an authenticated user to a project with a role.
// The (project, user) pair is unique. Rows are created only by an owner or
// admin, never self-granted.
type ProjectMembership struct {
	ID        uuid.UUID  `json:"id"        gorm:"column:id;primaryKey"`
	ProjectID uuid.UUID  `json:"projectId" gorm:"column:project_id;index:idx_membership_project_user,unique"`
	UserID    uuid.UUID  `json:"userId"    gorm:"column:user_id;index:idx_membership_project_user,unique"`
	Role      authz.Role `json:"role"      gorm:"column:role"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at"`
}

func (ProjectMembership) TableName() string {
	return "project_memberships"
}
