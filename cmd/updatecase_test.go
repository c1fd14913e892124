// ABOUTME: Tests for the update-case command
// ABOUTME: Verifies role enforcement, request shape, and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/session"
)

func resetUpdateCaseFlags() {
	updateTitle = ""
	updateDescription = ""
	updateComplexity = ""
	updateStatus = ""
	updateJudgment = ""
}

func TestUpdateCase_InvalidID(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	updateTitle = "New title"
	defer resetUpdateCaseFlags()

	var buf bytes.Buffer
	exitCode := runUpdateCase(context.Background(), &buf, "abc")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
}

func TestUpdateCase_NothingToChange(t *testing.T) {
	seedSession(t, session.RoleAdmin)
	defer resetUpdateCaseFlags()

	var buf bytes.Buffer
	exitCode := runUpdateCase(context.Background(), &buf, "9")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "nothing to change") {
		t.Errorf("expected usage hint, got %q", buf.String())
	}
}

func TestUpdateCase_InvalidComplexity(t *testing.T) {
	seedSession(t, session.RoleAdmin)
	updateComplexity = "trivial"
	defer resetUpdateCaseFlags()

	var buf bytes.Buffer
	exitCode := runUpdateCase(context.Background(), &buf, "9")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "invalid complexity") {
		t.Errorf("expected complexity error, got %q", buf.String())
	}
}

func TestUpdateCase_RequiresAdminRole(t *testing.T) {
	seedSession(t, session.RoleJudge)
	updateTitle = "New title"
	defer resetUpdateCaseFlags()

	var buf bytes.Buffer
	exitCode := runUpdateCase(context.Background(), &buf, "9")

	if exitCode != 1 {
		t.Errorf("expected exit code 1 for non-admin, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "admin role") {
		t.Errorf("expected role error, got %q", buf.String())
	}
}

func TestUpdateCase_Success(t *testing.T) {
	seedSession(t, session.RoleAdmin)
	updateTitle = "Corrected title"
	updateStatus = client.StatusAdjourned
	defer resetUpdateCaseFlags()

	var gotMethod, gotPath string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/cases/9":
			json.NewEncoder(w).Encode(client.Case{ID: 9, CaseNumber: "DCM-2026-0009", Title: "Old title", Status: client.StatusPending})
		case r.Method == http.MethodPut:
			gotMethod = r.Method
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &gotBody)
			json.NewEncoder(w).Encode(client.Case{ID: 9, CaseNumber: "DCM-2026-0009", Title: "Corrected title", Status: client.StatusAdjourned, Complexity: client.ComplexityModerate})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()
	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runUpdateCase(context.Background(), &buf, "9")

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotMethod != http.MethodPut || gotPath != "/api/admins/cases/9" {
		t.Errorf("expected PUT /api/admins/cases/9, got %s %s", gotMethod, gotPath)
	}
	if gotBody["title"] != "Corrected title" || gotBody["status"] != client.StatusAdjourned {
		t.Errorf("unexpected payload %v", gotBody)
	}
	if _, present := gotBody["description"]; present {
		t.Error("unset fields must not appear in the payload")
	}
	out := buf.String()
	if !strings.Contains(out, "DCM-2026-0009") || !strings.Contains(out, "Adjourned") {
		t.Errorf("expected updated record in output, got %q", out)
	}
}

func TestUpdateCase_UnknownRecord(t *testing.T) {
	seedSession(t, session.RoleAdmin)
	updateTitle = "New title"
	defer resetUpdateCaseFlags()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			t.Error("lookup failure must stop before the update is sent")
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Case not found"})
	}))
	defer server.Close()
	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runUpdateCase(context.Background(), &buf, "404")

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Case not found") {
		t.Errorf("expected backend detail, got %q", buf.String())
	}
}
