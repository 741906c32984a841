package tasks_test

import (
	"fmt"
	"net/http"
	"testing"

	"teamcamp/internal/authz"
	projects_dto "teamcamp/internal/features/projects/dto"
	"teamcamp/internal/features/tasks"
	test_utils "teamcamp/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProject(t *testing.T, router *gin.Engine, user *test_utils.TestUser, name string) uuid.UUID {
	t.Helper()

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/projects", "Bearer "+user.Token,
		projects_dto.CreateProjectRequestDTO{Name: name},
		http.StatusCreated, &response)

	return response.ID
}

func addMember(
	t *testing.T,
	router *gin.Engine,
	projectID uuid.UUID,
	actor, member *test_utils.TestUser,
	role authz.Role,
) {
	t.Helper()

	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/auth/me", "Bearer "+member.Token, http.StatusOK, nil)

	test_utils.MakePostRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/projects/%s/members", projectID),
		"Bearer "+actor.Token,
		projects_dto.AddMemberRequestDTO{UserID: &member.ID, Role: role},
		http.StatusCreated, nil)
}

func createTask(
	t *testing.T,
	router *gin.Engine,
	projectID uuid.UUID,
	user *test_utils.TestUser,
	request tasks.CreateTaskRequest,
) *tasks.Task {
	t.Helper()

	var task tasks.Task
	test_utils.MakePostRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", projectID),
		"Bearer "+user.Token,
		request,
		http.StatusCreated, &task)

	return &task
}

func Test_TaskLifecycle_MemberCreatesOutsiderDeniedMemberDeletes(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	creator := test_utils.CreateTestUser(t)
	member := test_utils.CreateTestUser(t)
	outsider := test_utils.CreateTestUser(t)

	projectID := createProject(t, router, creator, "Release")
	addMember(t, router, projectID, creator, member, authz.RoleMember)

	task := createTask(t, router, projectID, member, tasks.CreateTaskRequest{Title: "Write changelog"})
	assert.Equal(t, tasks.TaskStatusTodo, task.Status)
	assert.Equal(t, tasks.TaskPriorityMedium, task.Priority)
	assert.Equal(t, member.ID, task.CreatedBy)

	recorder := test_utils.MakeAPIRequest(
		router, http.MethodGet,
		fmt.Sprintf("/api/v1/projects/%s/tasks", projectID),
		"Bearer "+outsider.Token, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = test_utils.MakeAPIRequest(
		router, http.MethodPost,
		fmt.Sprintf("/api/v1/projects/%s/tasks", projectID),
		"Bearer "+outsider.Token,
		tasks.CreateTaskRequest{Title: "Sneaky task"})
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	test_utils.MakeDeleteRequest(
		t, router,
		fmt.Sprintf("/api/v1/tasks/%s", task.ID),
		"Bearer "+member.Token, http.StatusOK)

	var remaining tasks.ListTasksResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", projectID),
		"Bearer "+creator.Token, http.StatusOK, &remaining)

	assert.Empty(t, remaining.Tasks)
}

func Test_UpdateTask_AppliesOnlyProvidedFields(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	creator := test_utils.CreateTestUser(t)

	projectID := createProject(t, router, creator, "Release")
	task := createTask(t, router, projectID, creator, tasks.CreateTaskRequest{
		Title:       "Ship it",
		Description: "Final release build",
		Priority:    tasks.TaskPriorityHigh,
	})

	newStatus := tasks.TaskStatusInProgress
	var updated tasks.Task
	test_utils.MakePutRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/tasks/%s", task.ID),
		"Bearer "+creator.Token,
		tasks.UpdateTaskRequest{Status: &newStatus},
		http.StatusOK, &updated)

	assert.Equal(t, "Ship it", updated.Title)
	assert.Equal(t, "Final release build", updated.Description)
	assert.Equal(t, tasks.TaskStatusInProgress, updated.Status)
	assert.Equal(t, tasks.TaskPriorityHigh, updated.Priority)
}

func Test_UpdateTask_WithInvalidStatus_ReturnsBadRequest(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	creator := test_utils.CreateTestUser(t)

	projectID := createProject(t, router, creator, "Release")
	task := createTask(t, router, projectID, creator, tasks.CreateTaskRequest{Title: "Ship it"})

	badStatus := tasks.TaskStatus("blocked")
	recorder := test_utils.MakeAPIRequest(
		router, http.MethodPut,
		fmt.Sprintf("/api/v1/tasks/%s", task.ID),
		"Bearer "+creator.Token,
		tasks.UpdateTaskRequest{Status: &badStatus})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func Test_DeleteTask_WhenMissing_ReturnsNotFound(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	user := test_utils.CreateTestUser(t)

	test_utils.MakeDeleteRequest(
		t, router,
		fmt.Sprintf("/api/v1/tasks/%s", uuid.New()),
		"Bearer "+user.Token, http.StatusNotFound)
}

func Test_GetMyTasks_ReturnsAssignedTasksWithProjectNames(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	creator := test_utils.CreateTestUser(t)
	assignee := test_utils.CreateTestUser(t)

	projectID := createProject(t, router, creator, "Release")
	addMember(t, router, projectID, creator, assignee, authz.RoleMember)

	createTask(t, router, projectID, creator, tasks.CreateTaskRequest{
		Title:      "Assigned work",
		AssignedTo: &assignee.ID,
	})
	createTask(t, router, projectID, creator, tasks.CreateTaskRequest{Title: "Unassigned work"})

	var response tasks.MyTasksResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/my-tasks", "Bearer "+assignee.Token, http.StatusOK, &response)

	require.Len(t, response.Tasks, 1)
	assert.Equal(t, "Assigned work", response.Tasks[0].Title)
	assert.Equal(t, "Release", response.Tasks[0].ProjectName)
}
