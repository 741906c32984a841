package projects_repositories

import (
	"context"
	"errors"
	"time"

	"teamcamp/internal/authz"
	projects_models "teamcamp/internal/features/projects/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestMemberRepository struct {
	db *gorm.DB
}

func NewGuestMemberRepository(db *gorm.DB) *GuestMemberRepository {
	return &GuestMemberRepository{db: db}
}

func (r *GuestMemberRepository) CreateGuest(ctx context.Context, guest *projects_models.GuestMember) error {
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	if guest.CreatedAt.IsZero() {
		guest.CreatedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Create(guest).Error
}

// GetGuestByID returns nil without error when no row exists.
func (r *GuestMemberRepository) GetGuestByID(
	ctx context.Context,
	guestID uuid.UUID,
) (*projects_models.GuestMember, error) {
	var guest projects_models.GuestMember

	err := r.db.WithContext(ctx).Where("id = ?", guestID).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &guest, nil
}

func (r *GuestMemberRepository) GetProjectGuests(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*projects_models.GuestMember, error) {
	var guests []*projects_models.GuestMember

	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&guests).Error

	return guests, err
}

func (r *GuestMemberRepository) UpdateGuestRole(ctx context.Context, guestID uuid.UUID, role authz.Role) error {
	return r.db.WithContext(ctx).
		Model(&projects_models.GuestMember{}).
		Where("id = ?", guestID).
		Update("role", role).Error
}

func (r *GuestMemberRepository) RemoveGuest(ctx context.Context, guestID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", guestID).
		Delete(&projects_models.GuestMember{}).Error
}
