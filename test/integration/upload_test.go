package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"
)

func uploadFile(t *testing.T, ts *helpers.TestServer, token, filename string, content []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", ts.Server.URL+"/upload/image", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestUploadImage(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, user := helpers.CreateAndLoginUser(t, ts, "up@test.com", "uppass1234", models.UserRoleUser)

	pngBytes := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)

	// Anonymous uploads are rejected.
	res, _ := uploadFile(t, ts, "", "pic.png", pngBytes)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body := uploadFile(t, ts, token, "pic.png", pngBytes)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"), "url %q", resp.URL)
	assert.Contains(t, resp.URL, itoa(user.ID)+"_")
	assert.True(t, strings.HasSuffix(resp.URL, ".png"))

	// The stored file is served back by the static route.
	getRes, err := ts.Server.Client().Get(ts.Server.URL + resp.URL)
	require.NoError(t, err)
	defer getRes.Body.Close()
	assert.Equal(t, http.StatusOK, getRes.StatusCode)

	// A text file with an image name is rejected on content.
	res, _ = uploadFile(t, ts, token, "fake.jpg", []byte("just some text pretending"))
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)

	res, body = ts.SendRequest(t, "GET", "/db/ping", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "version")
}
