package main

import (
	"testing"

	"github.com/mkorpela/liftplan/internal/e2etest"
	"github.com/mkorpela/liftplan/internal/testhelpers"
)

// testLookupEnv provides the configuration for test servers: a
// dynamically allocated port and a throwaway in-memory database.
func testLookupEnv(key string) (string, bool) {
	switch key {
	case "LIFTPLAN_ADDR":
		return "localhost:0", true
	case "LIFTPLAN_SQLITE_URL":
		return ":memory:", true
	default:
		return "", false
	}
}

func newTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	return server
}
