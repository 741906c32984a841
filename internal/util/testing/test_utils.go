package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// MakeAPIRequest performs a request against the router and returns the raw
// recorder. body is JSON-encoded when non-nil.
func MakeAPIRequest(
	router *gin.Engine,
	method, url, authHeader string,
	body any,
) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, url, reader)
	request.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		request.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	expectedStatus int,
	response any,
) {
	t.Helper()

	recorder := MakeAPIRequest(router, http.MethodGet, url, authHeader, nil)
	require.Equal(t, expectedStatus, recorder.Code, "body: %s", recorder.Body.String())

	if response != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), response))
	}
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	body any,
	expectedStatus int,
	response any,
) {
	t.Helper()

	recorder := MakeAPIRequest(router, http.MethodPost, url, authHeader, body)
	require.Equal(t, expectedStatus, recorder.Code, "body: %s", recorder.Body.String())

	if response != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), response))
	}
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	body any,
	expectedStatus int,
	response any,
) {
	t.Helper()

	recorder := MakeAPIRequest(router, http.MethodPut, url, authHeader, body)
	require.Equal(t, expectedStatus, recorder.Code, "body: %s", recorder.Body.String())

	if response != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), response))
	}
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	expectedStatus int,
) {
	t.Helper()

	recorder := MakeAPIRequest(router, http.MethodDelete, url, authHeader, nil)
	require.Equal(t, expectedStatus, recorder.Code, "body: %s", recorder.Body.String())
}
