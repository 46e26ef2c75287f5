package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"
)

func TestApplicationFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	candidateToken, candidate := helpers.CreateAndLoginUser(t, ts, "cand@test.com", "candpass12", models.UserRoleUser)
	recruiterToken, _ := helpers.CreateAndLoginUser(t, ts, "rec@test.com", "recpass123", models.UserRoleRecruiter)

	company := helpers.CreateCompany(t, ts.DB, "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Backend Engineer")

	// Applying requires authentication.
	res, _ := ts.SendRequest(t, "POST", "/api/applications", "",
		map[string]interface{}{"job_id": job.ID})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Applying to a missing job is a 404.
	res, _ = ts.SendRequest(t, "POST", "/api/applications", candidateToken,
		map[string]interface{}{"job_id": job.ID + 1000, "message": "hi"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body := ts.SendRequest(t, "POST", "/api/applications", candidateToken, map[string]interface{}{
		"job_id":  job.ID,
		"email":   "form@other.com",
		"message": "I would love to join",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"status":"new"`)

	// Candidates cannot read the applications list.
	listPath := fmt.Sprintf("/api/%d/applications", job.ID)
	res, _ = ts.SendRequest(t, "GET", listPath, candidateToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Recruiters can, and the account email wins over the form email.
	res, body = ts.SendRequest(t, "GET", listPath, recruiterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page pageResponse
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Items, 1)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, candidate.Email, page.Items[0]["candidate_email"])
	assert.Equal(t, "new", page.Items[0]["status"])
}
