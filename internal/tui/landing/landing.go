// ABOUTME: Public landing screen, reachable without a session
// ABOUTME: Offers the three role sign-ins and is the redirect target for denials

package landing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dcmsystem/dcm-cli/internal/session"
	"github.com/dcmsystem/dcm-cli/internal/tui/styles"
)

// RoleSelectedMsg is sent when the user picks a sign-in role
type RoleSelectedMsg struct {
	Role session.Role
}

// QuitMsg is sent when the user leaves the application
type QuitMsg struct{}

type entry struct {
	label string
	role  session.Role
	quit  bool
}

// Landing is the public landing menu
type Landing struct {
	entries []entry
	cursor  int
	notice  string
	width   int
}

// New creates the landing menu
func New() *Landing {
	return &Landing{
		entries: []entry{
			{label: "Sign in as Citizen", role: session.RoleUser},
			{label: "Sign in as Judge", role: session.RoleJudge},
			{label: "Sign in as Administrator", role: session.RoleAdmin},
			{label: "Quit", quit: true},
		},
	}
}

// SetNotice shows a one-line message above the menu, e.g. after logout
func (l *Landing) SetNotice(notice string) {
	l.notice = notice
}

// Init implements tea.Model
func (l *Landing) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (l *Landing) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
		case "down", "j":
			if l.cursor < len(l.entries)-1 {
				l.cursor++
			}
		case "q":
			return l, func() tea.Msg { return QuitMsg{} }
		case "enter":
			picked := l.entries[l.cursor]
			if picked.quit {
				return l, func() tea.Msg { return QuitMsg{} }
			}
			role := picked.role
			return l, func() tea.Msg { return RoleSelectedMsg{Role: role} }
		}
	}

	return l, nil
}

// View implements tea.Model
func (l *Landing) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("DCM System"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Digital case management for citizens, judges, and administrators"))
	sb.WriteString("\n\n")

	if l.notice != "" {
		sb.WriteString(styles.Help.Render(l.notice))
		sb.WriteString("\n\n")
	}

	for i, e := range l.entries {
		if i == l.cursor {
			sb.WriteString(styles.KeyStyle.Render("> " + e.label))
		} else {
			sb.WriteString(styles.NavLink.Render("  " + e.label))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
