package projects_repositories

import (
	"context"
	"errors"
	"strings"

	"teamcamp/internal/authz"
	projects_models "teamcamp/internal/features/projects/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthorizationStore implements authz.Store with point reads against the
// project, membership and guest tables.
type AuthorizationStore struct {
	db *gorm.DB
}

func NewAuthorizationStore(db *gorm.DB) *AuthorizationStore {
	return &AuthorizationStore{db: db}
}

func (s *AuthorizationStore) ProjectCreator(ctx context.Context, projectID uuid.UUID) (uuid.UUID, error) {
	var project projects_models.Project

	err := s.db.WithContext(ctx).
		Select("created_by").
		Where("id = ?", projectID).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, authz.ErrNotFound
		}

		return uuid.Nil, err
	}

	return project.CreatedBy, nil
}

func (s *AuthorizationStore) MembershipRole(
	ctx context.Context,
	projectID, userID uuid.UUID,
) (authz.Role, error) {
	var membership projects_models.ProjectMembership

	err := s.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.RoleNone, nil
		}

		return authz.RoleNone, err
	}

	return membership.Role, nil
}

func (s *AuthorizationStore) GuestRoleByEmail(
	ctx context.Context,
	projectID uuid.UUID,
	email string,
) (authz.Role, error) {
	var guest projects_models.GuestMember

	err := s.db.WithContext(ctx).
		Where("project_id = ? AND email = ?", projectID, strings.ToLower(email)).
		First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.RoleNone, nil
		}

		return authz.RoleNone, err
	}

	return guest.Role, nil
}
