// ABOUTME: Tests for the navigation resolver
// ABOUTME: Covers per-role link sets, avatar initials, and idempotent logout

package navbar

import (
	"testing"

	"github.com/dcmsystem/dcm-cli/internal/session"
)

func TestLinksPerRole(t *testing.T) {
	tests := []struct {
		role   session.Role
		labels []string
	}{
		{session.RoleUser, []string{"Dashboard", "File Case", "Check Status"}},
		{session.RoleJudge, []string{"Dashboard", "My Cases", "Analytics"}},
		{session.RoleAdmin, []string{"Dashboard", "Analytics", "Manage Records"}},
	}

	for _, tt := range tests {
		links := Links(tt.role)
		if len(links) != len(tt.labels) {
			t.Errorf("role %s: expected %d links, got %d", tt.role, len(tt.labels), len(links))
			continue
		}
		for i, want := range tt.labels {
			if links[i].Label != want {
				t.Errorf("role %s link %d: expected %q, got %q", tt.role, i, want, links[i].Label)
			}
			if links[i].Path == "" {
				t.Errorf("role %s link %q: empty path", tt.role, want)
			}
		}
	}
}

func TestLinksUnknownRole(t *testing.T) {
	for _, role := range []session.Role{"", "clerk", "Admin"} {
		if links := Links(role); len(links) != 0 {
			t.Errorf("role %q: expected no links, got %d", role, len(links))
		}
	}
}

func TestInitial(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"amal", "A"},
		{"Zoe", "Z"},
		{"", "U"},
		{"éli", "É"},
	}

	for _, tt := range tests {
		if got := Initial(tt.username); got != tt.want {
			t.Errorf("Initial(%q): expected %q, got %q", tt.username, tt.want, got)
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	store := session.NewFileStore(t.TempDir())
	if err := store.Establish(session.Session{Token: "t1", Role: session.RoleUser, UserID: 1}); err != nil {
		t.Fatalf("establish failed: %v", err)
	}

	msg := Logout(store)()
	if _, ok := msg.(LoggedOutMsg); !ok {
		t.Fatalf("expected LoggedOutMsg, got %T", msg)
	}
	if _, ok := store.Read(); ok {
		t.Error("expected session to be cleared")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	// Logging out while already logged out still completes and navigates
	store := session.NewFileStore(t.TempDir())

	msg := Logout(store)()
	if _, ok := msg.(LoggedOutMsg); !ok {
		t.Fatalf("expected LoggedOutMsg, got %T", msg)
	}
	if _, ok := store.Read(); ok {
		t.Error("expected store to remain absent")
	}
}
