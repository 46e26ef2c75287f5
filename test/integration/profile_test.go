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

func TestProfileOwnership(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, _ := helpers.CreateAndLoginUser(t, ts, "owner@test.com", "ownerpass1", models.UserRoleUser)
	otherToken, _ := helpers.CreateAndLoginUser(t, ts, "other@test.com", "otherpass1", models.UserRoleUser)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@test.com", "adminpass1", models.UserRoleAdmin)

	res, body := ts.SendRequest(t, "POST", "/api/profiles", ownerToken, map[string]interface{}{
		"first_name": "Jean",
		"last_name":  "Dupont",
		"city":       "Paris",
		"skills":     "Go, SQL",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	profileID := uint(created["id"].(float64))
	path := fmt.Sprintf("/api/profiles/%d", profileID)

	// A different non-admin user may not touch it.
	res, _ = ts.SendRequest(t, "PUT", path, otherToken, map[string]interface{}{"city": "Lyon"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	res, _ = ts.SendRequest(t, "DELETE", path, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// The owner may.
	res, body = ts.SendRequest(t, "PUT", path, ownerToken, map[string]interface{}{"city": "Lyon"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Lyon")

	// So may an admin.
	res, _ = ts.SendRequest(t, "PUT", path, adminToken, map[string]interface{}{"phone": "0601020304"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", path, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	// Gone now; missing targets report not-found before forbidden.
	res, _ = ts.SendRequest(t, "PUT", path, otherToken, map[string]interface{}{"city": "Nice"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCandidateFilters(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	four := 4
	seven := 7
	ts.DB.Create(&models.Profile{UserID: 1, FirstName: "A", LastName: "A", City: "Paris",
		Skills: "Go, SQL", Languages: "French,English", Diplomas: "Master", ExperienceYears: &seven})
	ts.DB.Create(&models.Profile{UserID: 2, FirstName: "B", LastName: "B", City: "Lyon",
		Skills: "sql,Docker", Languages: "English", Diplomas: "Bachelor", ExperienceYears: &four})

	res, body := ts.SendRequest(t, "GET", "/api/candidate_filters", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var filters struct {
		Skills          []string `json:"skills"`
		Languages       []string `json:"languages"`
		Diplomas        []string `json:"diplomas"`
		ExperienceYears []int    `json:"experience_years"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &filters))

	assert.Equal(t, []string{"Docker", "Go", "SQL", "sql"}, filters.Skills)
	assert.Equal(t, []string{"English", "French"}, filters.Languages)
	assert.Equal(t, []string{"Bachelor", "Master"}, filters.Diplomas)
	assert.Equal(t, []int{4, 7}, filters.ExperienceYears)
}
