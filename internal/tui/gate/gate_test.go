// ABOUTME: Tests for the role gate
// ABOUTME: Covers authorize/deny decisions across roles and requirement sets

package gate

import (
	"testing"

	"github.com/dcmsystem/dcm-cli/internal/session"
)

func TestEvaluateNoSession(t *testing.T) {
	// Scenario: requirement {judge}, nobody logged in
	status := Evaluate(session.Session{}, false, Require(session.RoleJudge))
	if status != StatusDenied {
		t.Errorf("expected StatusDenied without a session, got %d", status)
	}
}

func TestEvaluateWrongRole(t *testing.T) {
	// Scenario: user session against an admin-only requirement denies the
	// same way as no session at all
	sess := session.Session{Token: "t1", Role: session.RoleUser, UserID: 1}
	status := Evaluate(sess, true, Require(session.RoleAdmin))
	if status != StatusDenied {
		t.Errorf("expected StatusDenied for wrong role, got %d", status)
	}
}

func TestEvaluateAllCombinations(t *testing.T) {
	roles := []session.Role{session.RoleUser, session.RoleJudge, session.RoleAdmin}
	requirements := []Requirement{
		Require(session.RoleUser),
		Require(session.RoleJudge),
		Require(session.RoleAdmin),
		Require(session.RoleJudge, session.RoleAdmin),
		Require(session.RoleUser, session.RoleJudge, session.RoleAdmin),
	}

	for _, role := range roles {
		for _, req := range requirements {
			sess := session.Session{Token: "t1", Role: role, UserID: 1}
			got := Evaluate(sess, true, req)

			want := StatusDenied
			if req.Allows(role) {
				want = StatusAuthorized
			}
			if got != want {
				t.Errorf("role %s against %v: expected %d, got %d", role, req, want, got)
			}
		}
	}
}

func TestEvaluateTokenWithoutRole(t *testing.T) {
	// A token alone never authorizes; role and token are both required
	sess := session.Session{Token: "t1"}
	if got := Evaluate(sess, true, Require(session.RoleUser)); got != StatusDenied {
		t.Errorf("expected StatusDenied for token-only session, got %d", got)
	}
}

func TestEvaluateUnknownRole(t *testing.T) {
	sess := session.Session{Token: "t1", Role: session.Role("clerk"), UserID: 1}
	if got := Evaluate(sess, true, Require(session.RoleUser, session.RoleJudge, session.RoleAdmin)); got != StatusDenied {
		t.Errorf("expected unknown roles to never authorize, got %d", got)
	}
}

func TestGateStartsChecking(t *testing.T) {
	g := New(Require(session.RoleUser))
	if g.Status() != StatusChecking {
		t.Errorf("expected fresh gate to be StatusChecking, got %d", g.Status())
	}
}

func TestGateResolvesAgainstStore(t *testing.T) {
	store := session.NewFileStore(t.TempDir())
	if err := store.Establish(session.Session{Token: "t1", Role: session.RoleJudge, UserID: 2}); err != nil {
		t.Fatalf("establish failed: %v", err)
	}

	g := New(Require(session.RoleJudge))
	if got := g.Resolve(store); got != StatusAuthorized {
		t.Errorf("expected StatusAuthorized, got %d", got)
	}
	if g.Status() != StatusAuthorized {
		t.Errorf("expected gate to record its decision")
	}
}

func TestGateReEvaluatesOnRequirementChange(t *testing.T) {
	store := session.NewFileStore(t.TempDir())
	if err := store.Establish(session.Session{Token: "t1", Role: session.RoleJudge, UserID: 2}); err != nil {
		t.Fatalf("establish failed: %v", err)
	}

	g := New(Require(session.RoleJudge))
	if got := g.Resolve(store); got != StatusAuthorized {
		t.Fatalf("expected StatusAuthorized, got %d", got)
	}

	// Navigating to a differently-gated region re-runs the check
	g.SetRequirement(Require(session.RoleAdmin))
	if g.Status() != StatusChecking {
		t.Errorf("expected StatusChecking after requirement change, got %d", g.Status())
	}
	if got := g.Resolve(store); got != StatusDenied {
		t.Errorf("expected StatusDenied after requirement change, got %d", got)
	}
}

func TestGateDeniedAfterClear(t *testing.T) {
	store := session.NewFileStore(t.TempDir())
	if err := store.Establish(session.Session{Token: "t1", Role: session.RoleUser, UserID: 1}); err != nil {
		t.Fatalf("establish failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	g := New(Require(session.RoleUser))
	if got := g.Resolve(store); got != StatusDenied {
		t.Errorf("expected StatusDenied after logout, got %d", got)
	}
}
