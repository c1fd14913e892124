// ABOUTME: Per-role configuration for the login form
// ABOUTME: Role-tagged constructors keep illegal option combinations out

package loginform

import (
	"github.com/dcmsystem/dcm-cli/internal/session"
	"github.com/dcmsystem/dcm-cli/internal/tui/navbar"
)

// Config customizes one login form instance. The login endpoint follows
// from Role, and the username validation rule travels with
// RequiresUsername, so a config constructed here cannot require a field
// it does not validate.
type Config struct {
	Role             session.Role
	Heading          string
	Tagline          string
	RedirectPath     string
	RequiresUsername bool
	ShowRecoveryLink bool
	SubmitLabel      string
}

// UserConfig is the citizen login: username field and recovery link shown
func UserConfig() Config {
	return Config{
		Role:             session.RoleUser,
		Heading:          "User Login",
		Tagline:          "Welcome back! Please login to your account",
		RedirectPath:     navbar.PathUserDashboard,
		RequiresUsername: true,
		ShowRecoveryLink: true,
		SubmitLabel:      "Sign In",
	}
}

// JudgeConfig is the judge login: email and password only
func JudgeConfig() Config {
	return Config{
		Role:         session.RoleJudge,
		Heading:      "Judge Sign In",
		Tagline:      "Focused insights for fair and swift justice",
		RedirectPath: navbar.PathJudgeDashboard,
		SubmitLabel:  "Get Started",
	}
}

// AdminConfig is the administrator login: email and password only
func AdminConfig() Config {
	return Config{
		Role:         session.RoleAdmin,
		Heading:      "Admin Log In",
		Tagline:      "Manage the case-management platform",
		RedirectPath: navbar.PathAdminDashboard,
		SubmitLabel:  "Get Started",
	}
}

// ForRole returns the login configuration for a role
func ForRole(role session.Role) Config {
	switch role {
	case session.RoleJudge:
		return JudgeConfig()
	case session.RoleAdmin:
		return AdminConfig()
	default:
		return UserConfig()
	}
}
