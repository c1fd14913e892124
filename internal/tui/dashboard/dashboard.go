// ABOUTME: Dashboard component showing per-role caseload summaries
// ABOUTME: Renders counts and completion progress for the signed-in role

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dcmsystem/dcm-cli/internal/tui/styles"
)

// Stat is one labeled count on the dashboard
type Stat struct {
	Label string
	Value int
}

// Dashboard displays a caseload summary for the signed-in role
type Dashboard struct {
	title    string
	subtitle string
	stats    []Stat
	total    int
	done     int
	width    int
	height   int
}

// New creates a dashboard. total and done drive the completion bar; pass
// zero totals to omit it.
func New(title, subtitle string, stats []Stat, total, done, width, height int) *Dashboard {
	return &Dashboard{
		title:    title,
		subtitle: subtitle,
		stats:    stats,
		total:    total,
		done:     done,
		width:    width,
		height:   height,
	}
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(d.title))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(d.subtitle))
	sb.WriteString("\n\n")

	labelWidth := 0
	for _, s := range d.stats {
		if len(s.Label) > labelWidth {
			labelWidth = len(s.Label)
		}
	}
	for _, s := range d.stats {
		sb.WriteString(fmt.Sprintf("%-*s  %s\n", labelWidth, s.Label, styles.ValueStyle.Render(fmt.Sprintf("%d", s.Value))))
	}

	if d.total > 0 {
		percent := float64(d.done) / float64(d.total) * 100
		sb.WriteString("\nCompleted\n")
		sb.WriteString(styles.ProgressBar(percent, 20))
		sb.WriteString(fmt.Sprintf(" %.0f%% (%d of %d)\n", percent, d.done, d.total))
	}

	return lipgloss.NewStyle().
		Width(d.width).
		Height(d.height).
		Render(sb.String())
}
