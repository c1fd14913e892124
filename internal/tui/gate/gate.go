// ABOUTME: Role gate guarding protected screens
// ABOUTME: Decides render-vs-redirect from the session and a required-role set

package gate

import "github.com/dcmsystem/dcm-cli/internal/session"

// Status is the gate's decision for the current mount
type Status int

const (
	// StatusChecking is the initial state before the first evaluation.
	// The evaluation itself is synchronous; Checking only gives the first
	// frame a well-defined state.
	StatusChecking Status = iota
	StatusAuthorized
	StatusDenied
)

// Requirement is the non-empty set of roles permitted to view a screen
type Requirement []session.Role

// Require builds a Requirement from the given roles
func Require(roles ...session.Role) Requirement {
	return Requirement(roles)
}

// Allows reports whether the role is a member of the requirement set
func (r Requirement) Allows(role session.Role) bool {
	for _, allowed := range r {
		if allowed == role {
			return true
		}
	}
	return false
}

// Evaluate maps a session snapshot and a requirement to a terminal status.
// Authorized requires both a token and a known role, and role membership in
// the requirement set. Everything else is Denied: "not logged in" and
// "wrong role" are indistinguishable to the user, both redirect identically.
func Evaluate(sess session.Session, present bool, req Requirement) Status {
	if !present || sess.Token == "" || !sess.Role.Valid() {
		return StatusDenied
	}
	if !req.Allows(sess.Role) {
		return StatusDenied
	}
	return StatusAuthorized
}

// Gate holds the per-mount check state for one protected screen
type Gate struct {
	req    Requirement
	status Status
}

// New creates a gate for the given requirement, in the Checking state
func New(req Requirement) *Gate {
	return &Gate{req: req, status: StatusChecking}
}

// Resolve runs the check against the store and records the decision
func (g *Gate) Resolve(store session.Store) Status {
	sess, ok := store.Read()
	g.status = Evaluate(sess, ok, g.req)
	return g.status
}

// SetRequirement re-arms the gate for a new required-role set. The check
// re-runs on the next Resolve, not only on first mount.
func (g *Gate) SetRequirement(req Requirement) {
	g.req = req
	g.status = StatusChecking
}

// Status returns the last decision, or StatusChecking before the first one
func (g *Gate) Status() Status {
	return g.status
}
