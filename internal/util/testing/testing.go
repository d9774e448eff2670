package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RequestOptions struct {
	Method         string
	URL            string
	Body           any
	AuthToken      string
	ExpectedStatus int
}

type TestResponse struct {
	StatusCode int
	Body       []byte
}

// MakeRequest performs an HTTP request against the router and asserts the status code.
// Body may be a string (sent raw) or any JSON-marshalable value.
func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) *TestResponse {
	t.Helper()

	var bodyReader *bytes.Reader
	switch body := options.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	default:
		data, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(options.Method, options.URL, bodyReader)
	require.NoError(t, err, "failed to build request")

	req.Header.Set("Content-Type", "application/json")
	if options.AuthToken != "" {
		req.Header.Set("Authorization", options.AuthToken)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if options.ExpectedStatus != 0 {
		assert.Equal(t, options.ExpectedStatus, recorder.Code,
			"unexpected status for %s %s: %s", options.Method, options.URL, recorder.Body.String())
	}

	return &TestResponse{
		StatusCode: recorder.Code,
		Body:       recorder.Body.Bytes(),
	}
}

func MakeGetRequest(t *testing.T, router *gin.Engine, url, authToken string, expectedStatus int) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "GET",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "POST",
		URL:            url,
		Body:           body,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakePutRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "PUT",
		URL:            url,
		Body:           body,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakeDeleteRequest(t *testing.T, router *gin.Engine, url, authToken string, expectedStatus int) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "DELETE",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
	out any,
) *TestResponse {
	t.Helper()

	resp := MakeGetRequest(t, router, url, authToken, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out), "failed to unmarshal response: %s", string(resp.Body))

	return resp
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) *TestResponse {
	t.Helper()

	resp := MakePostRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out), "failed to unmarshal response: %s", string(resp.Body))

	return resp
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) *TestResponse {
	t.Helper()

	resp := MakePutRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out), "failed to unmarshal response: %s", string(resp.Body))

	return resp
}
