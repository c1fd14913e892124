// ABOUTME: Tests for the landing menu
// ABOUTME: Verifies cursor movement and role selection messages

package landing

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dcmsystem/dcm-cli/internal/session"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectCitizenByDefault(t *testing.T) {
	l := New()
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}

	msg, ok := cmd().(RoleSelectedMsg)
	if !ok {
		t.Fatalf("expected RoleSelectedMsg, got %T", cmd())
	}
	if msg.Role != session.RoleUser {
		t.Errorf("expected citizen sign-in first, got %s", msg.Role)
	}
}

func TestCursorNavigation(t *testing.T) {
	l := New()
	l.Update(key("j"))
	l.Update(key("j"))

	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(RoleSelectedMsg)
	if !ok {
		t.Fatalf("expected RoleSelectedMsg, got %T", cmd())
	}
	if msg.Role != session.RoleAdmin {
		t.Errorf("expected admin after moving down twice, got %s", msg.Role)
	}

	// Cursor stops at the edges
	for i := 0; i < 10; i++ {
		l.Update(key("k"))
	}
	_, cmd = l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg, ok := cmd().(RoleSelectedMsg); !ok || msg.Role != session.RoleUser {
		t.Error("expected cursor clamped to the first entry")
	}
}

func TestQuitEntry(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		l.Update(key("j"))
	}
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := cmd().(QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewShowsNotice(t *testing.T) {
	l := New()
	l.SetNotice("You have been logged out")
	if !strings.Contains(l.View(), "logged out") {
		t.Error("expected the notice to be rendered")
	}
	if !strings.Contains(l.View(), "DCM System") {
		t.Error("expected the brand heading")
	}
}
