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

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) CreateMembership(
	ctx context.Context,
	membership *projects_models.ProjectMembership,
) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}
	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Create(membership).Error
}

// GetMembershipByID returns nil without error when no row exists.
func (r *MembershipRepository) GetMembershipByID(
	ctx context.Context,
	membershipID uuid.UUID,
) (*projects_models.ProjectMembership, error) {
	var membership projects_models.ProjectMembership

	err := r.db.WithContext(ctx).Where("id = ?", membershipID).First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetMembershipByUserAndProject(
	ctx context.Context,
	projectID, userID uuid.UUID,
) (*projects_models.ProjectMembership, error) {
	var membership projects_models.ProjectMembership

	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

// MemberWithProfile carries the membership joined to the user profile.
type MemberWithProfile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Role      authz.Role
	Email     string
	FullName  string
	CreatedAt time.Time
}

func (r *MembershipRepository) GetProjectMembersWithProfiles(
	ctx context.Context,
	projectID uuid.UUID,
) ([]MemberWithProfile, error) {
	var members []MemberWithProfile

	err := r.db.WithContext(ctx).
		Table("project_memberships pm").
		Select("pm.id, pm.user_id, pm.role, pm.created_at, u.email, u.full_name").
		Joins("LEFT JOIN users u ON pm.user_id = u.id").
		Where("pm.project_id = ?", projectID).
		Order("pm.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) UpdateMembershipRole(
	ctx context.Context,
	membershipID uuid.UUID,
	role authz.Role,
) error {
	return r.db.WithContext(ctx).
		Model(&projects_models.ProjectMembership{}).
		Where("id = ?", membershipID).
		Update("role", role).Error
}

func (r *MembershipRepository) RemoveMembership(ctx context.Context, membershipID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", membershipID).
		Delete(&projects_models.ProjectMembership{}).Error
}

// GetMemberProjects returns the projects the user is a member of along with
// their membership role per project.
func (r *MembershipRepository) GetMemberProjects(
	ctx context.Context,
	userID uuid.UUID,
) ([]*projects_models.Project, map[uuid.UUID]authz.Role, error) {
	var memberships []projects_models.ProjectMembership

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, nil, err
	}

	roles := make(map[uuid.UUID]authz.Role, len(memberships))
	projectIDs := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		roles[m.ProjectID] = m.Role
		projectIDs = append(projectIDs, m.ProjectID)
	}

	if len(projectIDs) == 0 {
		return nil, roles, nil
	}

	var projects []*projects_models.Project
	err = r.db.WithContext(ctx).
		Where("id IN ?", projectIDs).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, nil, err
	}

	return projects, roles, nil
}
