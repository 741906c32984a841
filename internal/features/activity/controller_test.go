package activity_test

import (
	"fmt"
	"net/http"
	"testing"

	"teamcamp/internal/features/activity"
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

func Test_GetProjectActivity_RecordsMutationsNewestFirst(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	user := test_utils.CreateTestUser(t)

	projectID := createProject(t, router, user, "Tracked")

	test_utils.MakePostRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", projectID),
		"Bearer "+user.Token,
		tasks.CreateTaskRequest{Title: "First task"},
		http.StatusCreated, nil)

	var response activity.GetActivityResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/projects/%s/activity", projectID),
		"Bearer "+user.Token, http.StatusOK, &response)

	require.Len(t, response.Entries, 2)
	assert.Equal(t, `Created task "First task"`, response.Entries[0].Message)
	assert.Equal(t, `Created project "Tracked"`, response.Entries[1].Message)
	assert.Equal(t, 100, response.Limit)

	for _, entry := range response.Entries {
		require.NotNil(t, entry.UserID)
		assert.Equal(t, user.ID, *entry.UserID)
	}
}

func Test_GetProjectActivity_RespectsLimitAndOffset(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	user := test_utils.CreateTestUser(t)

	projectID := createProject(t, router, user, "Tracked")

	for i := 0; i < 3; i++ {
		test_utils.MakePostRequestAndUnmarshal(
			t, router,
			fmt.Sprintf("/api/v1/projects/%s/tasks", projectID),
			"Bearer "+user.Token,
			tasks.CreateTaskRequest{Title: fmt.Sprintf("Task %d", i)},
			http.StatusCreated, nil)
	}

	var response activity.GetActivityResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/projects/%s/activity?limit=2&offset=1", projectID),
		"Bearer "+user.Token, http.StatusOK, &response)

	assert.Len(t, response.Entries, 2)
	assert.Equal(t, 2, response.Limit)
	assert.Equal(t, 1, response.Offset)
}

func Test_GetProjectActivity_AsNonMember_ReturnsForbidden(t *testing.T) {
	router, _ := test_utils.SetupTestApp(t)
	owner := test_utils.CreateTestUser(t)
	outsider := test_utils.CreateTestUser(t)

	projectID := createProject(t, router, owner, "Tracked")

	recorder := test_utils.MakeAPIRequest(
		router, http.MethodGet,
		fmt.Sprintf("/api/v1/projects/%s/activity", projectID),
		"Bearer "+outsider.Token, nil)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
