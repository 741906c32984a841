package projects_repositories

import (
	"context"
	"errors"
	"time"

	projects_models "teamcamp/internal/features/projects/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	project.UpdatedAt = project.CreatedAt

	return r.db.WithContext(ctx).Create(project).Error
}

// GetProjectByID returns nil without error when the project does not exist.
func (r *ProjectRepository) GetProjectByID(
	ctx context.Context,
	projectID uuid.UUID,
) (*projects_models.Project, error) {
	var project projects_models.Project

	err := r.db.WithContext(ctx).Where("id = ?", projectID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, project *projects_models.Project) error {
	project.UpdatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Save(project).Error
}

// DeleteProject removes the project and its dependent rows. Each table is
// deleted on its own; there is no transaction spanning them, the store stays
// the consistency boundary.
func (r *ProjectRepository) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	db := r.db.WithContext(ctx)

	for _, del := range []func() error{
		func() error {
			return db.Where("project_id = ?", projectID).Delete(&projects_models.ProjectMembership{}).Error
		},
		func() error {
			return db.Where("project_id = ?", projectID).Delete(&projects_models.GuestMember{}).Error
		},
		func() error {
			return db.Exec("DELETE FROM tasks WHERE project_id = ?", projectID).Error
		},
		func() error {
			return db.Exec("DELETE FROM files WHERE project_id = ?", projectID).Error
		},
	} {
		if err := del(); err != nil {
			return err
		}
	}

	return db.Delete(&projects_models.Project{}, projectID).Error
}

func (r *ProjectRepository) GetProjectsCreatedBy(
	ctx context.Context,
	userID uuid.UUID,
) ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error

	return projects, err
}
