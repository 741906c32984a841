package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	creators    map[uuid.UUID]uuid.UUID        // projectID -> creator
	memberships map[uuid.UUID]map[uuid.UUID]Role // projectID -> userID -> role
	guestEmails map[uuid.UUID]map[string]Role  // projectID -> email -> role
	failWith    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		creators:    map[uuid.UUID]uuid.UUID{},
		memberships: map[uuid.UUID]map[uuid.UUID]Role{},
		guestEmails: map[uuid.UUID]map[string]Role{},
	}
}

func (s *fakeStore) addProject(creator uuid.UUID) uuid.UUID {
	projectID := uuid.New()
	s.creators[projectID] = creator
	return projectID
}

func (s *fakeStore) addMember(projectID, userID uuid.UUID, role Role) {
	if s.memberships[projectID] == nil {
		s.memberships[projectID] = map[uuid.UUID]Role{}
	}
	s.memberships[projectID][userID] = role
}

func (s *fakeStore) addGuest(projectID uuid.UUID, email string, role Role) {
	if s.guestEmails[projectID] == nil {
		s.guestEmails[projectID] = map[string]Role{}
	}
	s.guestEmails[projectID][email] = role
}

func (s *fakeStore) ProjectCreator(_ context.Context, projectID uuid.UUID) (uuid.UUID, error) {
	if s.failWith != nil {
		return uuid.Nil, s.failWith
	}
	creator, ok := s.creators[projectID]
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	return creator, nil
}

func (s *fakeStore) MembershipRole(_ context.Context, projectID, userID uuid.UUID) (Role, error) {
	if s.failWith != nil {
		return RoleNone, s.failWith
	}
	return s.memberships[projectID][userID], nil
}

func (s *fakeStore) GuestRoleByEmail(_ context.Context, projectID uuid.UUID, email string) (Role, error) {
	if s.failWith != nil {
		return RoleNone, s.failWith
	}
	return s.guestEmails[projectID][email], nil
}

func Test_ResolveRole_WhenUserIsCreator_ReturnsOwnerWithoutMembershipRow(t *testing.T) {
	store := newFakeStore()
	creator := uuid.New()
	projectID := store.addProject(creator)
	resolver := NewResolver(store)

	role, err := resolver.ResolveRole(context.Background(), projectID, creator)

	require.NoError(t, err)
	assert.Equal(t, RoleOwner, role)
}

func Test_ResolveRole_WhenCreatorAlsoHasMembershipRow_MembershipIsIgnored(t *testing.T) {
	store := newFakeStore()
	creator := uuid.New()
	projectID := store.addProject(creator)
	// a stray membership row must never downgrade the creator
	store.addMember(projectID, creator, RoleMember)
	resolver := NewResolver(store)

	role, err := resolver.ResolveRole(context.Background(), projectID, creator)

	require.NoError(t, err)
	assert.Equal(t, RoleOwner, role)
}

func Test_ResolveRole_WhenUserHasMembership_ReturnsMembershipRole(t *testing.T) {
	store := newFakeStore()
	projectID := store.addProject(uuid.New())
	resolver := NewResolver(store)

	for _, expected := range []Role{RoleOwner, RoleAdmin, RoleMember} {
		userID := uuid.New()
		store.addMember(projectID, userID, expected)

		role, err := resolver.ResolveRole(context.Background(), projectID, userID)

		require.NoError(t, err)
		assert.Equal(t, expected, role)
	}
}

func Test_ResolveRole_WhenUserHasNoMembership_ReturnsNone(t *testing.T) {
	store := newFakeStore()
	projectID := store.addProject(uuid.New())
	resolver := NewResolver(store)

	role, err := resolver.ResolveRole(context.Background(), projectID, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, RoleNone, role)
}

func Test_ResolveRole_WhenProjectDoesNotExist_ReturnsNotFound(t *testing.T) {
	resolver := NewResolver(newFakeStore())

	_, err := resolver.ResolveRole(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Authorize_WhenUserHasNoAccess_DeniesEveryAction(t *testing.T) {
	store := newFakeStore()
	projectID := store.addProject(uuid.New())
	stranger := uuid.New()
	resolver := NewResolver(store)

	for action := range minimumRole {
		err := resolver.Authorize(context.Background(), projectID, stranger, action)
		assert.ErrorIs(t, err, ErrDenied, "action %s", action)
	}
}

func Test_Authorize_DeleteProject_OnlyCreatorAllowed(t *testing.T) {
	store := newFakeStore()
	creator := uuid.New()
	projectID := store.addProject(creator)
	admin := uuid.New()
	store.addMember(projectID, admin, RoleAdmin)
	membershipOwner := uuid.New()
	store.addMember(projectID, membershipOwner, RoleOwner)
	resolver := NewResolver(store)

	assert.NoError(t, resolver.Authorize(context.Background(), projectID, creator, ActionDeleteProject))
	assert.ErrorIs(t,
		resolver.Authorize(context.Background(), projectID, admin, ActionDeleteProject), ErrDenied)
	// even an owner-role membership is not the creator
	assert.ErrorIs(t,
		resolver.Authorize(context.Background(), projectID, membershipOwner, ActionDeleteProject), ErrDenied)
}

func Test_Authorize_EditProject_RequiresAdminRole(t *testing.T) {
	store := newFakeStore()
	projectID := store.addProject(uuid.New())
	admin := uuid.New()
	member := uuid.New()
	store.addMember(projectID, admin, RoleAdmin)
	store.addMember(projectID, member, RoleMember)
	resolver := NewResolver(store)

	assert.NoError(t, resolver.Authorize(context.Background(), projectID, admin, ActionEditProject))
	assert.ErrorIs(t,
		resolver.Authorize(context.Background(), projectID, member, ActionEditProject), ErrDenied)
}

func Test_Authorize_DeleteTask_AnyMemberAllowed(t *testing.T) {
	store := newFakeStore()
	projectID := store.addProject(uuid.New())
	member := uuid.New()
	store.addMember(projectID, member, RoleMember)
	resolver := NewResolver(store)

	assert.NoError(t, resolver.Authorize(context.Background(), projectID, member, ActionDeleteTask))
}

func Test_Authorize_MemberManagement_RequiresAdminRole(t *testing.T) {
	store := newFakeStore()
	projectID := store.addProject(uuid.New())
	member := uuid.New()
	store.addMember(projectID, member, RoleMember)
	resolver := NewResolver(store)

	for _, action := range []Action{ActionAddMember, ActionRemoveMember, ActionEditMemberRole} {
		err := resolver.Authorize(context.Background(), projectID, member, action)
		assert.ErrorIs(t, err, ErrDenied, "action %s", action)
	}
}

func Test_AuthorizeFileDelete_EachGrantIndependentlySuffices(t *testing.T) {
	store := newFakeStore()
	creator := uuid.New()
	projectID := store.addProject(creator)
	uploader := uuid.New()
	admin := uuid.New()
	plainMember := uuid.New()
	store.addMember(projectID, uploader, RoleMember)
	store.addMember(projectID, admin, RoleAdmin)
	store.addMember(projectID, plainMember, RoleMember)
	resolver := NewResolver(store)
	ctx := context.Background()

	// project creator
	assert.NoError(t, resolver.AuthorizeFileDelete(ctx, projectID, creator, uploader))
	// uploader
	assert.NoError(t, resolver.AuthorizeFileDelete(ctx, projectID, uploader, uploader))
	// elevated role
	assert.NoError(t, resolver.AuthorizeFileDelete(ctx, projectID, admin, uploader))
	// plain member who uploaded nothing
	assert.ErrorIs(t, resolver.AuthorizeFileDelete(ctx, projectID, plainMember, uploader), ErrDenied)
}

func Test_Authorize_GuestEmailFallback_NeverMatchesSubjectID(t *testing.T) {
	store := newFakeStore()
	projectID := store.addProject(uuid.New())
	store.addGuest(projectID, "jane@x.com", RoleMember)
	resolver := NewResolver(store)

	// a guest is addressable for display only; an authenticated subject id
	// never equals a guest email, so the fallback grants nothing
	err := resolver.Authorize(context.Background(), projectID, uuid.New(), ActionViewTasks)
	assert.ErrorIs(t, err, ErrDenied)
}

func Test_Authorize_WhenStoreFails_ReturnsInfrastructureError(t *testing.T) {
	store := newFakeStore()
	store.failWith = errors.New("connection refused")
	resolver := NewResolver(store)

	err := resolver.Authorize(context.Background(), uuid.New(), uuid.New(), ActionViewProject)

	assert.True(t, IsInfrastructure(err))
	assert.NotErrorIs(t, err, ErrDenied)
	assert.NotErrorIs(t, err, ErrNotFound)
}
