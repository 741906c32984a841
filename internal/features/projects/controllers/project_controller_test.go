package projects_controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"teamcamp/internal/authz"
	projects_dto "teamcamp/internal/features/projects/dto"
	test_utils "teamcamp/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTestProject(
	t *testing.T,
	router *gin.Engine,
	user *test_utils.TestUser,
	name string,
) *projects_dto.ProjectResponseDTO {
	t.Helper()

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+user.Token,
		projects_dto.CreateProjectRequestDTO{Name: name},
		http.StatusCreated,
		&response,
	)

	return &response
}

func addProjectMember(
	t *testing.T,
	router *gin.Engine,
	projectID uuid.UUID,
	actor, member *test_utils.TestUser,
	role authz.Role,
) *projects_dto.MemberResponseDTO {
	t.Helper()

	// the member must have authenticated once so their profile row exists
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/auth/me", "Bearer "+member.Token, http.StatusOK, nil)

	var response projects_dto.MemberResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members", projectID),
		"Bearer "+actor.Token,
		projects_dto.AddMemberRequestDTO{UserID: &member.ID, Role: role},
		http.StatusCreated,
		&response,
	)

	return &response
}

func Test_CreateProject_CallerBecomesOwnerAndCreator(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	user := test_utils.CreateTestUser(t)

	project := createTestProject(t, router, user, "Launch Plan")

	assert.NotEqual(t, uuid.Nil, project.ID)
	assert.Equal(t, "Launch Plan", project.Name)
	assert.Equal(t, authz.RoleOwner, project.Role)
	assert.True(t, project.IsCreator)
	assert.Equal(t, user.ID, project.CreatedBy)
}

func Test_CreateProject_WithoutName_ReturnsBadRequest(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	user := test_utils.CreateTestUser(t)

	recorder := test_utils.MakeAPIRequest(
		router, http.MethodPost, "/api/v1/projects", "Bearer "+user.Token,
		projects_dto.CreateProjectRequestDTO{})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func Test_GetProjects_MergesCreatedAndMemberedWithoutDuplicates(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	owner := test_utils.CreateTestUser(t)
	member := test_utils.CreateTestUser(t)

	created := createTestProject(t, router, owner, "Owned Project")
	shared := createTestProject(t, router, member, "Shared Project")
	addProjectMember(t, router, shared.ID, member, owner, authz.RoleAdmin)

	var response projects_dto.ListProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/projects", "Bearer "+owner.Token, http.StatusOK, &response)

	assert.Len(t, response.Projects, 2)

	byID := make(map[uuid.UUID]projects_dto.ProjectResponseDTO)
	for _, p := range response.Projects {
		byID[p.ID] = p
	}

	assert.Equal(t, authz.RoleOwner, byID[created.ID].Role)
	assert.True(t, byID[created.ID].IsCreator)
	assert.Equal(t, authz.RoleAdmin, byID[shared.ID].Role)
	assert.False(t, byID[shared.ID].IsCreator)
}

func Test_GetProject_AsNonMember_ReturnsForbidden(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	owner := test_utils.CreateTestUser(t)
	stranger := test_utils.CreateTestUser(t)

	project := createTestProject(t, router, owner, "Private Project")

	recorder := test_utils.MakeAPIRequest(
		router, http.MethodGet,
		fmt.Sprintf("/api/v1/projects/%s", project.ID),
		"Bearer "+stranger.Token, nil)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func Test_GetProject_WhenMissing_ReturnsNotFound(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	user := test_utils.CreateTestUser(t)

	recorder := test_utils.MakeAPIRequest(
		router, http.MethodGet,
		fmt.Sprintf("/api/v1/projects/%s", uuid.New()),
		"Bearer "+user.Token, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func Test_UpdateProject_AsMember_ReturnsForbidden(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	owner := test_utils.CreateTestUser(t)
	member := test_utils.CreateTestUser(t)

	project := createTestProject(t, router, owner, "Roadmap")
	addProjectMember(t, router, project.ID, owner, member, authz.RoleMember)

	newName := "Renamed"
	recorder := test_utils.MakeAPIRequest(
		router, http.MethodPut,
		fmt.Sprintf("/api/v1/projects/%s", project.ID),
		"Bearer "+member.Token,
		projects_dto.UpdateProjectRequestDTO{Name: &newName})

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func Test_UpdateProject_AsAdmin_AppliesOnlyProvidedFields(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	owner := test_utils.CreateTestUser(t)
	admin := test_utils.CreateTestUser(t)

	project := createTestProject(t, router, owner, "Roadmap")
	addProjectMember(t, router, project.ID, owner, admin, authz.RoleAdmin)

	newDescription := "Q4 planning"
	var response projects_dto.ProjectResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s", project.ID),
		"Bearer "+admin.Token,
		projects_dto.UpdateProjectRequestDTO{Description: &newDescription},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "Roadmap", response.Name)
	assert.Equal(t, "Q4 planning", response.Description)
	assert.Equal(t, authz.RoleAdmin, response.Role)
}

func Test_DeleteProject_AsAdminMember_ReturnsForbidden(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	owner := test_utils.CreateTestUser(t)
	admin := test_utils.CreateTestUser(t)

	project := createTestProject(t, router, owner, "Doomed")
	addProjectMember(t, router, project.ID, owner, admin, authz.RoleAdmin)

	test_utils.MakeDeleteRequest(
		t, router,
		fmt.Sprintf("/api/v1/projects/%s", project.ID),
		"Bearer "+admin.Token, http.StatusForbidden)
}

func Test_DeleteProject_AsCreator_RemovesProject(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	owner := test_utils.CreateTestUser(t)

	project := createTestProject(t, router, owner, "Doomed")

	test_utils.MakeDeleteRequest(
		t, router,
		fmt.Sprintf("/api/v1/projects/%s", project.ID),
		"Bearer "+owner.Token, http.StatusOK)

	recorder := test_utils.MakeAPIRequest(
		router, http.MethodGet,
		fmt.Sprintf("/api/v1/projects/%s", project.ID),
		"Bearer "+owner.Token, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func Test_Projects_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)

	recorder := test_utils.MakeAPIRequest(router, http.MethodGet, "/api/v1/projects", "", nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
