package commands

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCommand(t *testing.T) {
	srv, seen := fakeServer(t, http.StatusOK, `{"status":"ok"}`)
	out := captureOutput(func() {
		executeCommand(t, NewHealthCommand(srv.URL), []string{})
	})
	assert.Equal(t, "/health", (<-seen).Path)
	assert.Contains(t, out, "healthy")
}

func TestHealthCommand_StoreDown(t *testing.T) {
	srv, _ := fakeServer(t, http.StatusServiceUnavailable, `{"detail":"Store unavailable"}`)
	out := captureOutput(func() {
		executeCommand(t, NewHealthCommand(srv.URL), []string{})
	})
	assert.Contains(t, out, "Store unavailable")
}
