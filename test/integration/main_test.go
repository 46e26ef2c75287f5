package integration_test

import (
	"os"
	"strconv"
	"sync"
	"testing"

	"jobboard_backend/test/helpers"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer builds the shared test server on first use. Individual
// tests still skip themselves when no test database is configured.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
	})
	if globalTestServer == nil {
		t.Skipf("%s is not set; skipping integration tests", helpers.TestDSNEnv)
	}
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()
	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
