package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
	assert.Equal(t, "alice@example.com", NormalizeEmail("alice@example.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}
