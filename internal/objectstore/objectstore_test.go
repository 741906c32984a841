package objectstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Remove_SendsAuthorizedDeleteForEscapedPath(t *testing.T) {
	var gotPath, gotAuth, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "service-key", "project-files")

	err := client.Remove(context.Background(), "docs/quarterly report.pdf")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/storage/v1/object/project-files/docs/quarterly%20report.pdf", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
}

func Test_Remove_WhenStorageRejects_ReturnsErrorWithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"object not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "service-key", "project-files")

	err := client.Remove(context.Background(), "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "object not found")
}
