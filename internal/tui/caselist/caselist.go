// ABOUTME: Case record table for status, docket, and record-management screens
// ABOUTME: Wraps bubbles/table with role-appropriate row actions

package caselist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/tui/styles"
	"github.com/dcmsystem/dcm-cli/internal/tui/widgets"
)

// DeleteRequestedMsg asks the app to delete the selected record (admin)
type DeleteRequestedMsg struct {
	CaseID int
}

// ScheduleRequestedMsg asks the app to schedule the next hearing (judge)
type ScheduleRequestedMsg struct {
	CaseID int
}

// Actions declares which row actions this list offers
type Actions struct {
	CanDelete   bool
	CanSchedule bool
}

// List renders a set of case records
type List struct {
	title   string
	cases   []client.Case
	tbl     table.Model
	actions Actions
	notice  string
	width   int
}

// New creates a case list with the given records
func New(title string, cases []client.Case, width, height int, actions Actions) *List {
	l := &List{
		title:   title,
		cases:   cases,
		actions: actions,
		width:   width,
	}
	l.tbl = buildTable(cases, width, height)
	return l
}

func buildTable(cases []client.Case, width, height int) table.Model {
	numberWidth := 14
	statusWidth := 12
	titleWidth := width - numberWidth - statusWidth - 10
	if titleWidth < 20 {
		titleWidth = 20
	}

	columns := []table.Column{
		{Title: "Case #", Width: numberWidth},
		{Title: "Title", Width: titleWidth},
		{Title: "Status", Width: statusWidth},
	}

	rows := make([]table.Row, len(cases))
	for i, c := range cases {
		rows[i] = table.Row{c.CaseNumber, c.Title, StatusLabel(c.Status)}
	}

	if height < 4 {
		height = 4
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(styles.Primary).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Text).
		Background(styles.Primary).
		Bold(true)
	t.SetStyles(s)

	return t
}

// SetCases replaces the displayed records
func (l *List) SetCases(cases []client.Case) {
	l.cases = cases
	rows := make([]table.Row, len(cases))
	for i, c := range cases {
		rows[i] = table.Row{c.CaseNumber, c.Title, StatusLabel(c.Status)}
	}
	l.tbl.SetRows(rows)
}

// SetNotice shows a one-line result message under the table
func (l *List) SetNotice(notice string) {
	l.notice = notice
}

// Selected returns the currently highlighted case, if any
func (l *List) Selected() (client.Case, bool) {
	idx := l.tbl.Cursor()
	if idx < 0 || idx >= len(l.cases) {
		return client.Case{}, false
	}
	return l.cases[idx], true
}

// Init implements tea.Model
func (l *List) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (l *List) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "d":
			if l.actions.CanDelete {
				if selected, ok := l.Selected(); ok {
					return l, func() tea.Msg { return DeleteRequestedMsg{CaseID: selected.ID} }
				}
			}
		case "s":
			if l.actions.CanSchedule {
				if selected, ok := l.Selected(); ok {
					return l, func() tea.Msg { return ScheduleRequestedMsg{CaseID: selected.ID} }
				}
			}
		}
	}

	var cmd tea.Cmd
	l.tbl, cmd = l.tbl.Update(msg)
	return l, cmd
}

// View implements tea.Model
func (l *List) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(l.title))
	sb.WriteString("\n")

	if len(l.cases) == 0 {
		sb.WriteString(styles.Subtitle.Render("No cases found."))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%d case(s)\n\n", len(l.cases)))
	sb.WriteString(l.tbl.View())
	sb.WriteString("\n")

	if selected, ok := l.Selected(); ok {
		sb.WriteString(l.detailLine(selected))
		sb.WriteString("\n")
	}

	if l.notice != "" {
		sb.WriteString(styles.Help.Render(l.notice))
		sb.WriteString("\n")
	}

	return sb.String()
}

// detailLine summarizes the highlighted record with status and complexity
// badges, plus the hearing slot when one is booked
func (l *List) detailLine(c client.Case) string {
	statusBadge := widgets.Badge(StatusLabel(c.Status), widgets.ForCaseStatus(c.Status))
	complexityBadge := widgets.Badge(ComplexityLabel(c.Complexity), widgets.ForComplexity(c.Complexity))

	line := fmt.Sprintf("%s  %s %s", c.CaseNumber, statusBadge, complexityBadge)
	if c.ScheduledDate != "" {
		line += "  " + styles.ValueStyle.Render("Hearing "+c.ScheduledDate+" "+c.ScheduledTime)
	}
	return line
}

// StatusLabel renders a backend status value for display
func StatusLabel(status string) string {
	switch status {
	case client.StatusPending:
		return "Pending"
	case client.StatusScheduled:
		return "Scheduled"
	case client.StatusInProgress:
		return "In Progress"
	case client.StatusCompleted:
		return "Completed"
	case client.StatusAdjourned:
		return "Adjourned"
	default:
		return status
	}
}

// ComplexityLabel renders a backend complexity value for display
func ComplexityLabel(complexity string) string {
	switch complexity {
	case client.ComplexitySimple:
		return "Simple"
	case client.ComplexityModerate:
		return "Moderate"
	case client.ComplexityComplex:
		return "Complex"
	case client.ComplexityHighlyComplex:
		return "Highly Complex"
	default:
		return complexity
	}
}
