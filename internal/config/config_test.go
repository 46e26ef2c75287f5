package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := defaults()
	cfg.Database.User = "job"
	cfg.Database.Password = "secret"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = 3307
	cfg.Database.Name = "jobboard"

	assert.Equal(t,
		"job:secret@tcp(db.internal:3307)/jobboard?charset=utf8mb4&parseTime=True&loc=UTC&timeout=5s",
		cfg.DSN())
}

func TestDefaults(t *testing.T) {
	cfg := defaults()
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.EqualValues(t, 8*1024*1024, cfg.Upload.MaxSize)
	assert.Equal(t, "/uploads", cfg.Upload.BaseURL)
}
