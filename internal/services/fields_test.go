package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/pkg/apperrors"
)

func TestFilterFields_DropsUnknownKeys(t *testing.T) {
	t.Parallel()

	payload := map[string]interface{}{
		"name":    "Acme",
		"hq_city": "Paris",
		// none of these are company columns
		"role":          "admin",
		"password_hash": "sneaky",
		"id":            uint(42),
	}

	fields, err := filterFields(payload, companyUpdatableFields)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "Acme", "hq_city": "Paris"}, fields)
}

func TestFilterFields_EmptyAfterFiltering(t *testing.T) {
	t.Parallel()

	_, err := filterFields(map[string]interface{}{"bogus": 1}, companyUpdatableFields)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestStrictFields_RejectsUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := strictFields(map[string]interface{}{
		"title":     "Engineer",
		"companyid": uint(1), // typo for company_id, which is not patchable anyway
	}, jobUpdatableFields)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "companyid")
}

func TestStrictFields_AcceptsFullAllowlist(t *testing.T) {
	t.Parallel()

	payload := map[string]interface{}{
		"title":      "Engineer",
		"short_desc": "Build things",
		"salary_min": 50000,
		"tags":       "go,sql",
	}
	fields, err := strictFields(payload, jobUpdatableFields)
	require.NoError(t, err)
	assert.Len(t, fields, 4)
}

func TestStrictFields_EmptyPayload(t *testing.T) {
	t.Parallel()

	_, err := strictFields(map[string]interface{}{}, jobUpdatableFields)
	assert.Error(t, err)
}
