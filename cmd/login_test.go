// ABOUTME: Tests for the login command
// ABOUTME: Verifies validation, exit codes, and session persistence

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/session"
)

func resetLoginFlags() {
	loginEmail = ""
	loginPassword = ""
	loginUsername = ""
}

func TestLoginCommand_UnknownRole(t *testing.T) {
	resetLoginFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), &buf, "superuser")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "unknown role") {
		t.Errorf("expected role error, got %q", buf.String())
	}
}

func TestLoginCommand_InvalidEmail(t *testing.T) {
	resetLoginFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	loginEmail = "not-an-email"
	loginPassword = "secret1"

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), &buf, "judge")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Invalid email address") {
		t.Errorf("expected email validation error, got %q", buf.String())
	}
}

func TestLoginCommand_UserRequiresUsername(t *testing.T) {
	resetLoginFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	loginEmail = "rob@example.com"
	loginPassword = "secret1"

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), &buf, "user")

	if exitCode != 1 {
		t.Errorf("expected exit code 1 without username, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "username") {
		t.Errorf("expected username validation error, got %q", buf.String())
	}
}

func TestLoginCommand_Success(t *testing.T) {
	resetLoginFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login/judge" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client.LoginResponse{
			AccessToken: "tok-abc",
			TokenType:   "bearer",
			Role:        "judge",
			UserID:      4,
			Username:    "harriet",
		})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	loginEmail = "  Harriet@Example.COM "
	loginPassword = "secret1"

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), &buf, "judge")

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "harriet") {
		t.Errorf("expected username in output, got %q", buf.String())
	}

	store := session.NewFileStore(configDir())
	sess, ok := store.Read()
	if !ok {
		t.Fatal("expected session to be stored")
	}
	if sess.Token != "tok-abc" || sess.Role != session.RoleJudge || sess.UserID != 4 {
		t.Errorf("unexpected stored session %+v", sess)
	}
}

func TestLoginCommand_Rejected(t *testing.T) {
	resetLoginFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	loginEmail = "harriet@example.com"
	loginPassword = "wrongpw"

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), &buf, "judge")

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Invalid credentials") {
		t.Errorf("expected server detail verbatim, got %q", buf.String())
	}

	store := session.NewFileStore(configDir())
	if _, ok := store.Read(); ok {
		t.Error("expected no session after rejected login")
	}
}

func TestLoginCommand_ConnectionError(t *testing.T) {
	resetLoginFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	apiURL = "http://localhost:1"
	defer func() { apiURL = "" }()
	loginEmail = "harriet@example.com"
	loginPassword = "secret1"

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), &buf, "judge")

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}
