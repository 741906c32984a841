package projects_dto

import (
	"time"

	"teamcamp/internal/authz"
	projects_models "teamcamp/internal/features/projects/models"

	"github.com/google/uuid"
)

// Project DTOs

type CreateProjectRequestDTO struct {
	Name        string                        `json:"name"        binding:"required,min=1,max=255"`
	Description string                        `json:"description"`
	Status      projects_models.ProjectStatus `json:"status"`
	StartDate   *time.Time                    `json:"startDate"`
	EndDate     *time.Time                    `json:"endDate"`
}

type UpdateProjectRequestDTO struct {
	Name        *string                        `json:"name"`
	Description *string                        `json:"description"`
	Status      *projects_models.ProjectStatus `json:"status"`
	StartDate   *time.Time                     `json:"startDate"`
	EndDate     *time.Time                     `json:"endDate"`
}

type ProjectResponseDTO struct {
	ID          uuid.UUID                     `json:"id"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Status      projects_models.ProjectStatus `json:"status"`
	StartDate   *time.Time                    `json:"startDate"`
	EndDate     *time.Time                    `json:"endDate"`
	CreatedBy   uuid.UUID                     `json:"createdBy"`
	CreatedAt   time.Time                     `json:"createdAt"`

	// Caller's relationship to the project
	Role      authz.Role `json:"role"`
	IsCreator bool       `json:"isCreator"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

// Member DTOs

type PrincipalKind string

const (
	PrincipalKindAuth  PrincipalKind = "auth"
	PrincipalKindGuest PrincipalKind = "guest"
)

// AddMemberRequestDTO adds either an authenticated member (userId set) or a
// guest (name + email set).
type AddMemberRequestDTO struct {
	UserID *uuid.UUID `json:"userId"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   authz.Role `json:"role"`
}

type UpdateMemberRoleRequestDTO struct {
	Role authz.Role `json:"role" binding:"required"`
}

type MemberUserDTO struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type MemberResponseDTO struct {
	ID uuid.UUID `json:"id"`
	// UserID is the real user id for authenticated members and a synthetic
	// "guest_<id>" for guests, so the merged list always has unique ids.
	UserID string        `json:"userId"`
	Role   authz.Role    `json:"role"`
	Kind   PrincipalKind `json:"type"`
	User   MemberUserDTO `json:"user"`
}

type GetMembersResponseDTO struct {
	Members []MemberResponseDTO `json:"members"`
}
