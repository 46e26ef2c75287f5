package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/services/dto"
)

func TestValidate_SignupRequest(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&dto.SignupRequest{Email: "a@b.com", Password: "x"}))

	err := v.Validate(&dto.SignupRequest{Email: "not-an-email", Password: ""})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// Field keys come from the json tags, not the Go names.
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
}

func TestValidate_UserRoleRule(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&dto.RoleChangeRequest{Role: "recruiter"}))
	assert.NoError(t, v.Validate(&dto.RoleChangeRequest{Role: "admin"}))

	err := v.Validate(&dto.RoleChangeRequest{Role: "superuser"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid user role", vErr.Errors["role"])
}

func TestValidate_RequiredForeignKey(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&dto.JobCreateRequest{Title: "Engineer", ShortDesc: "Build"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "company_id")
}
