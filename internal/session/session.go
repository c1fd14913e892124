// ABOUTME: Session types for the DCM client
// ABOUTME: Defines roles and the authenticated-identity record

package session

import "fmt"

// Role identifies which area of the platform a session may access
type Role string

const (
	RoleUser  Role = "user"
	RoleJudge Role = "judge"
	RoleAdmin Role = "admin"
)

// ParseRole validates a role string from user input or an API response.
// Anything outside the three known roles is rejected; unknown roles are
// never authorized anywhere in the client.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleJudge, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q (expected user, judge, or admin)", s)
}

// Valid reports whether the role is one of the three known roles
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleJudge || r == RoleAdmin
}

// Session is the client-held record of an authenticated identity.
// Token and Role decide access; UserID scopes API queries; Username is
// presentation-only.
type Session struct {
	Token    string `json:"token"`
	Role     Role   `json:"role"`
	UserID   int    `json:"userId"`
	Username string `json:"username,omitempty"`
}

// Complete reports whether the session carries everything a login response
// issues together. The store never persists or returns anything less.
func (s Session) Complete() bool {
	return s.Token != "" && s.Role.Valid() && s.UserID != 0
}

// DisplayName returns the username or a placeholder when absent
func (s Session) DisplayName() string {
	if s.Username == "" {
		return "User"
	}
	return s.Username
}
