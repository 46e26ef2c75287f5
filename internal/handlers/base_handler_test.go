package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c
}

func jsonContext(t *testing.T, url, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

// Padded addresses are canonicalized after binding, so validation sees the
// cleaned value instead of rejecting the request.
func TestBindAndValidateJSON_NormalizesEmail(t *testing.T) {
	h := NewBaseHandler(validator.New())

	c, _ := jsonContext(t, "/auth/signup", `{"email":"  Alice@Example.COM ","password":"secret123"}`)
	var req dto.SignupRequest
	require.True(t, h.BindAndValidate_JSON(c, &req))
	assert.Equal(t, "alice@example.com", req.Email)

	c, w := jsonContext(t, "/auth/login", `{"email":"   ","password":"secret123"}`)
	var login dto.LoginRequest
	assert.False(t, h.BindAndValidate_JSON(c, &login))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParsePagination_Defaults(t *testing.T) {
	c := testContext(t, "/api/jobs")
	page, pageSize := ParsePagination(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, pageSize)
}

func TestParsePagination_Coercion(t *testing.T) {
	cases := []struct {
		url      string
		page     int
		pageSize int
	}{
		{"/api/jobs?page=3&page_size=25", 3, 25},
		{"/api/jobs?page=0&page_size=0", 1, 10},
		{"/api/jobs?page=-5&page_size=-1", 1, 10},
		{"/api/jobs?page_size=100", 1, 100},
		{"/api/jobs?page_size=101", 1, 100},
		{"/api/jobs?page_size=99999", 1, 100},
		{"/api/jobs?page=abc&page_size=xyz", 1, 10},
	}
	for _, tc := range cases {
		c := testContext(t, tc.url)
		page, pageSize := ParsePagination(c)
		assert.Equal(t, tc.page, page, "url %s", tc.url)
		assert.Equal(t, tc.pageSize, pageSize, "url %s", tc.url)
	}
}

func TestParseParamUint(t *testing.T) {
	c := testContext(t, "/api/jobs/12")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := ParseParamUint(c, "id")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c.Params = gin.Params{{Key: "id", Value: "twelve"}}
	_, err = ParseParamUint(c, "id")
	assert.Error(t, err)

	c.Params = gin.Params{{Key: "id", Value: "-4"}}
	_, err = ParseParamUint(c, "id")
	assert.Error(t, err)
}
