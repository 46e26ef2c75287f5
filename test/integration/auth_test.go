package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"
)

func TestSignupLoginWhoami(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	// Signup normalizes the email and ignores any role escalation attempt.
	res, body := ts.SendRequest(t, "POST", "/auth/signup", "", map[string]interface{}{
		"email":    "  Alice@Example.COM ",
		"password": "secret123",
		"role":     "admin",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "user", created.Role)
	assert.NotZero(t, created.ID)
	assert.NotContains(t, body, "password")

	// Login with a differently-cased email still works.
	res, body = ts.SendRequest(t, "POST", "/auth/login", "", map[string]interface{}{
		"email":    "ALICE@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &tokenResp))
	assert.Equal(t, "bearer", tokenResp.TokenType)
	require.NotEmpty(t, tokenResp.AccessToken)

	res, body = ts.SendRequest(t, "GET", "/auth/me", tokenResp.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "alice@example.com")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	payload := map[string]interface{}{"email": "dup@test.com", "password": "x1234"}
	res, _ := ts.SendRequest(t, "POST", "/auth/signup", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, "POST", "/auth/signup", "", payload)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "email already exists")
}

func TestLogin_GenericFailure(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateUser(t, ts.DB, "bob@test.com", "correct-password", models.UserRoleUser)

	// Unknown email and wrong password must be indistinguishable.
	res1, body1 := ts.SendRequest(t, "POST", "/auth/login", "", map[string]interface{}{
		"email": "nobody@test.com", "password": "whatever1",
	})
	res2, body2 := ts.SendRequest(t, "POST", "/auth/login", "", map[string]interface{}{
		"email": "bob@test.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res1.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)
	assert.Equal(t, body1, body2)
}

func TestAdminRoleManagement(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken, admin := helpers.CreateAndLoginUser(t, ts, "admin@test.com", "adminpass1", models.UserRoleAdmin)
	userToken, target := helpers.CreateAndLoginUser(t, ts, "plain@test.com", "userpass12", models.UserRoleUser)

	// Non-admin cannot touch roles.
	res, _ := ts.SendRequest(t, "PUT", "/api/admin/users/1/role", userToken,
		map[string]interface{}{"role": "recruiter"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Admin promotes the user to recruiter.
	res, body := ts.SendRequest(t, "PUT",
		"/api/admin/users/"+itoa(target.ID)+"/role", adminToken,
		map[string]interface{}{"role": "recruiter"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "recruiter")

	// The role change takes effect on the next request without re-login.
	res, _ = ts.SendRequest(t, "POST", "/api/companies", userToken,
		map[string]interface{}{"name": "Now Allowed"})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// Admins cannot change their own role.
	res, _ = ts.SendRequest(t, "PUT",
		"/api/admin/users/"+itoa(admin.ID)+"/role", adminToken,
		map[string]interface{}{"role": "user"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Unknown roles are rejected.
	res, _ = ts.SendRequest(t, "PUT",
		"/api/admin/users/"+itoa(target.ID)+"/role", adminToken,
		map[string]interface{}{"role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
