package projects_services

import (
	"context"
	"fmt"

	"teamcamp/internal/authz"
	"teamcamp/internal/features/activity"
	projects_dto "teamcamp/internal/features/projects/dto"
	projects_models "teamcamp/internal/features/projects/models"
	projects_repositories "teamcamp/internal/features/projects/repositories"

	"github.com/google/uuid"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	resolver             *authz.Resolver
	activityService      *activity.ActivityService
}

func NewProjectService(
	projectRepository *projects_repositories.ProjectRepository,
	membershipRepository *projects_repositories.MembershipRepository,
	resolver *authz.Resolver,
	activityService *activity.ActivityService,
) *ProjectService {
	return &ProjectService{
		projectRepository:    projectRepository,
		membershipRepository: membershipRepository,
		resolver:             resolver,
		activityService:      activityService,
	}
}

func (s *ProjectService) CreateProject(
	ctx context.Context,
	userID uuid.UUID,
	request *projects_dto.CreateProjectRequestDTO,
) (*projects_dto.ProjectResponseDTO, error) {
	status := request.Status
	if status == "" {
		status = projects_models.ProjectStatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid project status: %s", status)
	}

	project := &projects_models.Project{
		Name:        request.Name,
		Description: request.Description,
		Status:      status,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		CreatedBy:   userID,
	}

	if err := s.projectRepository.CreateProject(ctx, project); err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Created project %q", project.Name), &userID, &project.ID)

	return s.toResponse(project, authz.RoleOwner, true), nil
}

// GetProjects merges the projects the user created with the ones they hold a
// membership in. Created projects win on overlap so the creator is always
// reported as owner.
func (s *ProjectService) GetProjects(
	ctx context.Context,
	userID uuid.UUID,
) (*projects_dto.ListProjectsResponseDTO, error) {
	created, err := s.projectRepository.GetProjectsCreatedBy(ctx, userID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	membered, roles, err := s.membershipRepository.GetMemberProjects(ctx, userID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	seen := make(map[uuid.UUID]bool, len(created))
	result := make([]projects_dto.ProjectResponseDTO, 0, len(created)+len(membered))

	for _, project := range created {
		seen[project.ID] = true
		result = append(result, *s.toResponse(project, authz.RoleOwner, true))
	}

	for _, project := range membered {
		if seen[project.ID] {
			continue
		}

		result = append(result, *s.toResponse(project, roles[project.ID], project.CreatedBy == userID))
	}

	return &projects_dto.ListProjectsResponseDTO{Projects: result}, nil
}

func (s *ProjectService) GetProject(
	ctx context.Context,
	projectID, userID uuid.UUID,
) (*projects_dto.ProjectResponseDTO, error) {
	if err := s.resolver.Authorize(ctx, projectID, userID, authz.ActionViewProject); err != nil {
		return nil, err
	}

	project, err := s.projectRepository.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}
	if project == nil {
		return nil, authz.ErrNotFound
	}

	role, err := s.resolver.ResolveRole(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(project, role, project.CreatedBy == userID), nil
}

// UpdateProject applies only the fields present in the request. CreatedBy is
// never touched.
func (s *ProjectService) UpdateProject(
	ctx context.Context,
	projectID, userID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
) (*projects_dto.ProjectResponseDTO, error) {
	if err := s.resolver.Authorize(ctx, projectID, userID, authz.ActionEditProject); err != nil {
		return nil, err
	}

	project, err := s.projectRepository.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}
	if project == nil {
		return nil, authz.ErrNotFound
	}

	if request.Name != nil {
		project.Name = *request.Name
	}
	if request.Description != nil {
		project.Description = *request.Description
	}
	if request.Status != nil {
		if !request.Status.IsValid() {
			return nil, fmt.Errorf("invalid project status: %s", *request.Status)
		}
		project.Status = *request.Status
	}
	if request.StartDate != nil {
		project.StartDate = request.StartDate
	}
	if request.EndDate != nil {
		project.EndDate = request.EndDate
	}

	if err := s.projectRepository.UpdateProject(ctx, project); err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Updated project %q", project.Name), &userID, &project.ID)

	role, err := s.resolver.ResolveRole(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(project, role, project.CreatedBy == userID), nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error {
	if err := s.resolver.Authorize(ctx, projectID, userID, authz.ActionDeleteProject); err != nil {
		return err
	}

	project, err := s.projectRepository.GetProjectByID(ctx, projectID)
	if err != nil {
		return &authz.InfrastructureError{Err: err}
	}
	if project == nil {
		return authz.ErrNotFound
	}

	if err := s.projectRepository.DeleteProject(ctx, projectID); err != nil {
		return &authz.InfrastructureError{Err: err}
	}

	// The project row is gone, so the entry is kept without a project link.
	s.activityService.Record(ctx, fmt.Sprintf("Deleted project %q", project.Name), &userID, nil)

	return nil
}

func (s *ProjectService) toResponse(
	project *projects_models.Project,
	role authz.Role,
	isCreator bool,
) *projects_dto.ProjectResponseDTO {
	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
		Role:        role,
		IsCreator:   isCreator,
	}
}
