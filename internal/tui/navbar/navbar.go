// ABOUTME: Navigation resolver for authenticated screens
// ABOUTME: Maps the session role to nav links, display identity, and logout

package navbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dcmsystem/dcm-cli/internal/session"
)

// Link is one navigation entry for the shared header
type Link struct {
	Path  string
	Label string
}

// Routes for the per-role areas. The app maps these to screens; keeping
// them as paths keeps the resolver free of screen wiring.
const (
	PathUserDashboard      = "user-dashboard"
	PathUserFileCase       = "user-file-case"
	PathUserCheckStatus    = "user-check-status"
	PathJudgeDashboard     = "judge-dashboard"
	PathJudgeCases         = "judge-cases"
	PathJudgeAnalytics     = "judge-analytics"
	PathAdminDashboard     = "admin-dashboard"
	PathAdminAnalytics     = "admin-analytics"
	PathAdminManageRecords = "admin-manage-records"
)

// LoggedOutMsg is sent after Logout has cleared the session
type LoggedOutMsg struct{}

// Links returns the ordered navigation entries for a role's authorized
// area. Any other role, including absent, gets no links.
func Links(role session.Role) []Link {
	switch role {
	case session.RoleUser:
		return []Link{
			{Path: PathUserDashboard, Label: "Dashboard"},
			{Path: PathUserFileCase, Label: "File Case"},
			{Path: PathUserCheckStatus, Label: "Check Status"},
		}
	case session.RoleJudge:
		return []Link{
			{Path: PathJudgeDashboard, Label: "Dashboard"},
			{Path: PathJudgeCases, Label: "My Cases"},
			{Path: PathJudgeAnalytics, Label: "Analytics"},
		}
	case session.RoleAdmin:
		return []Link{
			{Path: PathAdminDashboard, Label: "Dashboard"},
			{Path: PathAdminAnalytics, Label: "Analytics"},
			{Path: PathAdminManageRecords, Label: "Manage Records"},
		}
	default:
		return nil
	}
}

// Initial derives the one-character avatar glyph from the username
func Initial(username string) string {
	if username == "" {
		return "U"
	}
	return strings.ToUpper(string([]rune(username)[0]))
}

// Logout clears the session and reports completion. Clearing an absent
// session is valid, so this always succeeds and always navigates home.
func Logout(store session.Store) tea.Cmd {
	return func() tea.Msg {
		store.Clear()
		return LoggedOutMsg{}
	}
}
