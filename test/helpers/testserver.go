package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
)

// TestDSNEnv names the variable pointing the suite at a disposable MySQL
// database. Tests skip when it is unset so the unit suite stays green
// without infrastructure.
const TestDSNEnv = "TEST_DATABASE_DSN"

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to the test database, migrates the schema and
// mounts the full router behind httptest.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dsn := os.Getenv(TestDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set; skipping integration tests", TestDSNEnv)
	}

	config.LoadConfig()
	cfg := config.GetConfig()
	cfg.JWT.Secret = "integration-test-secret"
	cfg.Upload.Dir = t.TempDir()

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", dsn, err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Profile{},
		&models.Application{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	server := httptest.NewServer(app.SetupRouter(cfg, db))

	return &TestServer{Server: server, DB: db}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables empties every table between tests. MySQL has no cascading
// truncate, so deletes run child-first.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"applications", "jobs", "profiles", "companies", "users"} {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clear table %s: %v", table, err)
		}
	}
}

// SendRequest performs one JSON request against the test server.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}
