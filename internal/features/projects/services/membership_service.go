package projects_services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"teamcamp/internal/authz"
	"teamcamp/internal/features/activity"
	projects_dto "teamcamp/internal/features/projects/dto"
	projects_models "teamcamp/internal/features/projects/models"
	projects_repositories "teamcamp/internal/features/projects/repositories"
	users_repositories "teamcamp/internal/features/users/repositories"

	"github.com/google/uuid"
)

type MembershipService struct {
	membershipRepository *projects_repositories.MembershipRepository
	guestRepository      *projects_repositories.GuestMemberRepository
	userRepository       *users_repositories.UserRepository
	resolver             *authz.Resolver
	activityService      *activity.ActivityService
}

func NewMembershipService(
	membershipRepository *projects_repositories.MembershipRepository,
	guestRepository *projects_repositories.GuestMemberRepository,
	userRepository *users_repositories.UserRepository,
	resolver *authz.Resolver,
	activityService *activity.ActivityService,
) *MembershipService {
	return &MembershipService{
		membershipRepository: membershipRepository,
		guestRepository:      guestRepository,
		userRepository:       userRepository,
		resolver:             resolver,
		activityService:      activityService,
	}
}

// GetMembers returns authenticated members first, then guests, each group in
// insertion order. Guests get a synthetic "guest_<id>" user id so the merged
// list stays uniquely addressable.
func (s *MembershipService) GetMembers(
	ctx context.Context,
	projectID, userID uuid.UUID,
) (*projects_dto.GetMembersResponseDTO, error) {
	if err := s.resolver.Authorize(ctx, projectID, userID, authz.ActionViewMembers); err != nil {
		return nil, err
	}

	members, err := s.membershipRepository.GetProjectMembersWithProfiles(ctx, projectID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	guests, err := s.guestRepository.GetProjectGuests(ctx, projectID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	result := make([]projects_dto.MemberResponseDTO, 0, len(members)+len(guests))

	for _, member := range members {
		result = append(result, projects_dto.MemberResponseDTO{
			ID:     member.ID,
			UserID: member.UserID.String(),
			Role:   member.Role,
			Kind:   projects_dto.PrincipalKindAuth,
			User: projects_dto.MemberUserDTO{
				Email: member.Email,
				Name:  member.FullName,
			},
		})
	}

	for _, guest := range guests {
		result = append(result, projects_dto.MemberResponseDTO{
			ID:     guest.ID,
			UserID: "guest_" + guest.ID.String(),
			Role:   guest.Role,
			Kind:   projects_dto.PrincipalKindGuest,
			User: projects_dto.MemberUserDTO{
				Email: guest.Email,
				Name:  guest.Name,
			},
		})
	}

	return &projects_dto.GetMembersResponseDTO{Members: result}, nil
}

// AddMember adds an authenticated member when userId is set, otherwise a
// guest identified by name and email.
func (s *MembershipService) AddMember(
	ctx context.Context,
	projectID, actorID uuid.UUID,
	request *projects_dto.AddMemberRequestDTO,
) (*projects_dto.MemberResponseDTO, error) {
	if err := s.resolver.Authorize(ctx, projectID, actorID, authz.ActionAddMember); err != nil {
		return nil, err
	}

	role := request.Role
	if role == "" {
		role = authz.RoleMember
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	if request.UserID != nil {
		return s.addAuthMember(ctx, projectID, actorID, *request.UserID, role)
	}

	return s.addGuestMember(ctx, projectID, actorID, request.Name, request.Email, role)
}

func (s *MembershipService) addAuthMember(
	ctx context.Context,
	projectID, actorID, userID uuid.UUID,
	role authz.Role,
) (*projects_dto.MemberResponseDTO, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}
	if user == nil {
		return nil, fmt.Errorf("user: %w", authz.ErrNotFound)
	}

	existing, err := s.membershipRepository.GetMembershipByUserAndProject(ctx, projectID, userID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}
	if existing != nil {
		return nil, errors.New("user is already a member of this project")
	}

	membership := &projects_models.ProjectMembership{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	}

	if err := s.membershipRepository.CreateMembership(ctx, membership); err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Added %s as %s", user.Email, role), &actorID, &projectID)

	return &projects_dto.MemberResponseDTO{
		ID:     membership.ID,
		UserID: userID.String(),
		Role:   role,
		Kind:   projects_dto.PrincipalKindAuth,
		User: projects_dto.MemberUserDTO{
			Email: user.Email,
			Name:  user.FullName,
		},
	}, nil
}

func (s *MembershipService) addGuestMember(
	ctx context.Context,
	projectID, actorID uuid.UUID,
	name, email string,
	role authz.Role,
) (*projects_dto.MemberResponseDTO, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" {
		return nil, errors.New("guest members require both name and email")
	}

	guest := &projects_models.GuestMember{
		ProjectID: projectID,
		Name:      name,
		Email:     email,
		Role:      role,
	}

	if err := s.guestRepository.CreateGuest(ctx, guest); err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Added guest %s as %s", email, role), &actorID, &projectID)

	return &projects_dto.MemberResponseDTO{
		ID:     guest.ID,
		UserID: "guest_" + guest.ID.String(),
		Role:   role,
		Kind:   projects_dto.PrincipalKindGuest,
		User: projects_dto.MemberUserDTO{
			Email: email,
			Name:  name,
		},
	}, nil
}

// UpdateMemberRole changes the role of a membership or guest row. The member
// id is looked up as a membership first, then as a guest.
func (s *MembershipService) UpdateMemberRole(
	ctx context.Context,
	projectID, actorID, memberID uuid.UUID,
	role authz.Role,
) error {
	if err := s.resolver.Authorize(ctx, projectID, actorID, authz.ActionEditMemberRole); err != nil {
		return err
	}

	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}

	membership, err := s.membershipRepository.GetMembershipByID(ctx, memberID)
	if err != nil {
		return &authz.InfrastructureError{Err: err}
	}
	if membership != nil && membership.ProjectID == projectID {
		if err := s.membershipRepository.UpdateMembershipRole(ctx, memberID, role); err != nil {
			return &authz.InfrastructureError{Err: err}
		}

		s.activityService.Record(ctx, fmt.Sprintf("Changed a member role to %s", role), &actorID, &projectID)

		return nil
	}

	guest, err := s.guestRepository.GetGuestByID(ctx, memberID)
	if err != nil {
		return &authz.InfrastructureError{Err: err}
	}
	if guest == nil || guest.ProjectID != projectID {
		return fmt.Errorf("member: %w", authz.ErrNotFound)
	}

	if err := s.guestRepository.UpdateGuestRole(ctx, memberID, role); err != nil {
		return &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Changed guest %s role to %s", guest.Email, role), &actorID, &projectID)

	return nil
}

func (s *MembershipService) RemoveMember(
	ctx context.Context,
	projectID, actorID, memberID uuid.UUID,
) error {
	if err := s.resolver.Authorize(ctx, projectID, actorID, authz.ActionRemoveMember); err != nil {
		return err
	}

	membership, err := s.membershipRepository.GetMembershipByID(ctx, memberID)
	if err != nil {
		return &authz.InfrastructureError{Err: err}
	}
	if membership != nil && membership.ProjectID == projectID {
		if err := s.membershipRepository.RemoveMembership(ctx, memberID); err != nil {
			return &authz.InfrastructureError{Err: err}
		}

		s.activityService.Record(ctx, "Removed a member", &actorID, &projectID)

		return nil
	}

	guest, err := s.guestRepository.GetGuestByID(ctx, memberID)
	if err != nil {
		return &authz.InfrastructureError{Err: err}
	}
	if guest == nil || guest.ProjectID != projectID {
		return fmt.Errorf("member: %w", authz.ErrNotFound)
	}

	if err := s.guestRepository.RemoveGuest(ctx, memberID); err != nil {
		return &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Removed guest %s", guest.Email), &actorID, &projectID)

	return nil
}
