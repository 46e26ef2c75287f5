package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
)

// CreateUser inserts a user directly, hashing the given raw password.
func CreateUser(t *testing.T, db *gorm.DB, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{Email: email, PasswordHash: hash, Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return user
}

// CreateAndLoginUser inserts a user and logs in through the API,
// returning the bearer token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := CreateUser(t, ts.DB, email, password, role)

	res, body := ts.SendRequest(t, "POST", "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login for %s failed with %d: %s", email, res.StatusCode, body)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal([]byte(body), &tokenResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	return tokenResp.AccessToken, user
}

// CreateCompany inserts a company row directly.
func CreateCompany(t *testing.T, db *gorm.DB, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create test company %s: %v", name, err)
	}
	return company
}

// CreateJob inserts a job row directly.
func CreateJob(t *testing.T, db *gorm.DB, companyID uint, title string) *models.Job {
	t.Helper()
	job := &models.Job{CompanyID: companyID, Title: title, ShortDesc: title + " short"}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create test job %s: %v", title, err)
	}
	return job
}
