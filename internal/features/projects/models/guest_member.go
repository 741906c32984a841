package projects_models

import (
	"strings"
	"time"

	"teamcamp/internal/authz"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuestMember is a participant without an authentication identity. Guests are
// addressable for display only and can never act as a principal on an
// authenticated call.
type GuestMember struct {
	ID        uuid.UUID  `json:"id"        gorm:"column:id;primaryKey"`
	ProjectID uuid.UUID  `json:"projectId" gorm:"column:project_id;index"`
	Name      string     `json:"name"      gorm:"column:name"`
	Email     string     `json:"email"     gorm:"column:email"`
	Role      authz.Role `json:"role"      gorm:"column:role"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at"`
}

func (GuestMember) TableName() string {
	return "guest_members"
}

// Emails are case-normalized so guest matching is deterministic.
func (g *GuestMember) BeforeSave(tx *gorm.DB) error {
	g.Email = strings.ToLower(strings.TrimSpace(g.Email))
	return nil
}
