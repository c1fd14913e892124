// ABOUTME: Tests for the case record table
// ABOUTME: Verifies rendering, selection, and role-gated row actions

package caselist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dcmsystem/dcm-cli/internal/client"
)

func sampleCases() []client.Case {
	return []client.Case{
		{ID: 1, CaseNumber: "DCM-2025-0001", Title: "Property dispute", Status: client.StatusPending},
		{ID: 2, CaseNumber: "DCM-2025-0002", Title: "Contract claim", Status: client.StatusInProgress},
	}
}

func TestViewListsCases(t *testing.T) {
	l := New("Check Status", sampleCases(), 100, 10, Actions{})
	view := l.View()

	for _, want := range []string{"Check Status", "DCM-2025-0001", "Property dispute", "Pending", "In Progress"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestViewEmptyList(t *testing.T) {
	l := New("My Cases", nil, 100, 10, Actions{})
	if !strings.Contains(l.View(), "No cases found") {
		t.Error("expected empty-state message")
	}
}

func TestDeleteRequiresPermission(t *testing.T) {
	l := New("Manage Records", sampleCases(), 100, 10, Actions{})
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if cmd != nil {
		if _, ok := cmd().(DeleteRequestedMsg); ok {
			t.Error("delete must not be offered without the action enabled")
		}
	}
}

func TestDeleteSelectedCase(t *testing.T) {
	l := New("Manage Records", sampleCases(), 100, 10, Actions{CanDelete: true})
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(DeleteRequestedMsg)
	if !ok {
		t.Fatalf("expected DeleteRequestedMsg, got %T", cmd())
	}
	if msg.CaseID != 1 {
		t.Errorf("expected the first case selected, got %d", msg.CaseID)
	}
}

func TestScheduleSelectedCase(t *testing.T) {
	l := New("My Cases", sampleCases(), 100, 10, Actions{CanSchedule: true})
	l.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ScheduleRequestedMsg)
	if !ok {
		t.Fatalf("expected ScheduleRequestedMsg, got %T", cmd())
	}
	if msg.CaseID != 2 {
		t.Errorf("expected the second case after moving down, got %d", msg.CaseID)
	}
}

func TestSetCasesRefreshesRows(t *testing.T) {
	l := New("My Cases", sampleCases(), 100, 10, Actions{})
	l.SetCases([]client.Case{{ID: 3, CaseNumber: "DCM-2025-0003", Title: "Appeal", Status: client.StatusCompleted}})

	view := l.View()
	if !strings.Contains(view, "DCM-2025-0003") {
		t.Error("expected refreshed rows")
	}
	if strings.Contains(view, "DCM-2025-0001") {
		t.Error("expected old rows to be gone")
	}
}

func TestStatusLabel(t *testing.T) {
	tests := map[string]string{
		client.StatusPending:    "Pending",
		client.StatusScheduled:  "Scheduled",
		client.StatusInProgress: "In Progress",
		client.StatusCompleted:  "Completed",
		client.StatusAdjourned:  "Adjourned",
		"something_else":        "something_else",
	}
	for in, want := range tests {
		if got := StatusLabel(in); got != want {
			t.Errorf("StatusLabel(%q): expected %q, got %q", in, want, got)
		}
	}
}
