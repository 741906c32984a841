package users_models

import (
	"time"

	"github.com/google/uuid"
)

// User is the local profile row mirroring the external identity provider's
// subject. It exists so member lists can show display names and emails
// without calling back into the identity service.
type User struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey"`
	Email     string    `json:"email"     gorm:"column:email"`
	FullName  string    `json:"fullName"  gorm:"column:full_name"`
	AvatarURL string    `json:"avatarUrl" gorm:"column:avatar_url"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
