package authz

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Store is the read seam the resolver needs from the relational store. All
// three are point reads; implementations must return ErrNotFound (or the
// package-level zero values documented below) for missing rows and any other
// failure verbatim so the resolver can classify it as infrastructure.
type Store interface {
	// ProjectCreator returns the creator of the project, or ErrNotFound when
	// the project does not exist.
	ProjectCreator(ctx context.Context, projectID uuid.UUID) (uuid.UUID, error)

	// MembershipRole returns the role from the unique (project, user)
	// membership row, or RoleNone when there is no such row.
	MembershipRole(ctx context.Context, projectID, userID uuid.UUID) (Role, error)

	// GuestRoleByEmail returns the role of a guest member with the given
	// email, or RoleNone when there is none.
	GuestRoleByEmail(ctx context.Context, projectID uuid.UUID, email string) (Role, error)
}

// Resolver decides, for an authenticated principal and a target project, the
// principal's effective role and whether a requested action is permitted.
// It is stateless: every decision re-reads current state from the store, so a
// revocation takes effect on the next request. The window between a check and
// the following write is accepted and not closed with transactions.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveRole returns the principal's effective role on the project. The
// creator is owner unconditionally and never needs a membership row; anyone
// else gets their membership role, or RoleNone. A missing project is
// ErrNotFound, distinct from having no access.
func (r *Resolver) ResolveRole(ctx context.Context, projectID, userID uuid.UUID) (Role, error) {
	role, _, err := r.resolve(ctx, projectID, userID)
	return role, err
}

// Authorize checks a single action. nil means allowed; ErrDenied and
// ErrNotFound are expected outcomes; anything else is infrastructure.
func (r *Resolver) Authorize(ctx context.Context, projectID, userID uuid.UUID, action Action) error {
	role, isCreator, err := r.resolve(ctx, projectID, userID)
	if err != nil {
		return err
	}

	// Only the creator may delete a project. A membership row carrying the
	// owner role does not qualify.
	if action == ActionDeleteProject {
		if !isCreator {
			return ErrDenied
		}
		return nil
	}

	if role == RoleNone && action == ActionViewTasks {
		// Historical guest fallback: guests are matched by comparing the
		// acting subject id against the guest email column. A subject id is
		// never an email address, so this grant is effectively unreachable;
		// the comparison is kept as documented behavior.
		guestRole, err := r.store.GuestRoleByEmail(ctx, projectID, userID.String())
		if err != nil {
			return &InfrastructureError{Err: err}
		}
		role = guestRole
	}

	if !role.AtLeast(minimumRole[action]) {
		return ErrDenied
	}

	return nil
}

// AuthorizeFileDelete applies the three independent grants for deleting a
// file: owning the project, having uploaded the file, or holding an elevated
// role. Any one suffices.
func (r *Resolver) AuthorizeFileDelete(ctx context.Context, projectID, userID, uploaderID uuid.UUID) error {
	role, isCreator, err := r.resolve(ctx, projectID, userID)
	if err != nil {
		return err
	}

	if isCreator || userID == uploaderID || role.AtLeast(RoleAdmin) {
		return nil
	}

	return ErrDenied
}

func (r *Resolver) resolve(ctx context.Context, projectID, userID uuid.UUID) (Role, bool, error) {
	creatorID, err := r.store.ProjectCreator(ctx, projectID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RoleNone, false, ErrNotFound
		}
		return RoleNone, false, &InfrastructureError{Err: err}
	}

	if creatorID == userID {
		return RoleOwner, true, nil
	}

	role, err := r.store.MembershipRole(ctx, projectID, userID)
	if err != nil {
		return RoleNone, false, &InfrastructureError{Err: err}
	}

	return role, false, nil
}
