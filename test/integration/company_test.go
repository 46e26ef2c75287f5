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

type pageResponse struct {
	Items    []map[string]interface{} `json:"items"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
	Total    int64                    `json:"total"`
}

func TestCompanyCRUD(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	recruiterToken, _ := helpers.CreateAndLoginUser(t, ts, "rec@test.com", "recpass123", models.UserRoleRecruiter)
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "user@test.com", "userpass123", models.UserRoleUser)

	// Plain users cannot create companies.
	res, _ := ts.SendRequest(t, "POST", "/api/companies", userToken,
		map[string]interface{}{"name": "Blocked Inc"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Anonymous listing works.
	res, _ = ts.SendRequest(t, "GET", "/api/companies", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, "POST", "/api/companies", recruiterToken,
		map[string]interface{}{"name": "Acme", "hq_city": "Paris", "sector": "Tech"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	companyID := uint(created["id"].(float64))
	require.NotZero(t, companyID)

	// The detail view is public.
	res, body = ts.SendRequest(t, "GET", fmt.Sprintf("/api/companies/%d", companyID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Acme")

	res, _ = ts.SendRequest(t, "GET", "/api/companies/999999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// The update allowlist silently drops unknown keys but applies the rest.
	res, body = ts.SendRequest(t, "PUT", fmt.Sprintf("/api/companies/%d", companyID), recruiterToken,
		map[string]interface{}{"hq_city": "Lyon", "id": 999, "bogus": "x"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Lyon")

	// A payload with nothing applicable is a client error.
	res, _ = ts.SendRequest(t, "PUT", fmt.Sprintf("/api/companies/%d", companyID), recruiterToken,
		map[string]interface{}{"bogus": "x"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", fmt.Sprintf("/api/companies/%d", companyID), recruiterToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", fmt.Sprintf("/api/companies/%d", companyID), recruiterToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCompanyListPagination(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	for i := 1; i <= 25; i++ {
		helpers.CreateCompany(t, ts.DB, fmt.Sprintf("Company %02d", i))
	}

	var page1, page2, both pageResponse

	res, body := ts.SendRequest(t, "GET", "/api/companies?page=1&page_size=10", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &page1))

	res, body = ts.SendRequest(t, "GET", "/api/companies?page=2&page_size=10", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &page2))

	res, body = ts.SendRequest(t, "GET", "/api/companies?page=1&page_size=20", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &both))

	assert.EqualValues(t, 25, page1.Total)
	assert.Len(t, page1.Items, 10)
	assert.Len(t, page2.Items, 10)
	assert.Len(t, both.Items, 20)

	// Two page_size=10 requests equal one page_size=20 request, in order.
	// Rows created in one burst share timestamps, so this exercises the
	// id tie-break.
	combined := append(page1.Items, page2.Items...)
	for i, item := range combined {
		assert.Equal(t, both.Items[i]["id"], item["id"], "row %d", i)
	}
}

func TestCompanyListFilters(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ts.DB.Create(&models.Company{Name: "Globex", HQCity: "Paris", Sector: "Energy"})
	ts.DB.Create(&models.Company{Name: "Initech", HQCity: "Paris", Sector: "Software"})
	ts.DB.Create(&models.Company{Name: "Umbrella", HQCity: "Berlin", Sector: "Software"})

	var page pageResponse
	res, body := ts.SendRequest(t, "GET", "/api/companies?hq_city=Paris&sector=Soft", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	// Filters combine with AND.
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Initech", page.Items[0]["name"])
	assert.EqualValues(t, 1, page.Total)
}
