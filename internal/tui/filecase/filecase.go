// ABOUTME: Case filing form for citizens as a bubbletea model
// ABOUTME: huh form collecting title, description, and complexity

package filecase

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/tui/styles"
)

// SubmitMsg is sent when the filing form is completed
type SubmitMsg struct {
	Input client.CaseCreate
}

// CancelledMsg is sent when the user backs out without filing
type CancelledMsg struct{}

var complexityOptions = []huh.Option[string]{
	huh.NewOption("Simple", client.ComplexitySimple),
	huh.NewOption("Moderate", client.ComplexityModerate),
	huh.NewOption("Complex", client.ComplexityComplex),
	huh.NewOption("Highly complex", client.ComplexityHighlyComplex),
}

// Form collects a new case filing
type Form struct {
	userID int
	form   *huh.Form
	done   bool

	title       string
	description string
	complexity  string
}

// New creates a filing form for the given citizen
func New(userID int) *Form {
	f := &Form{
		userID:     userID,
		complexity: client.ComplexitySimple,
	}
	f.form = f.buildForm()
	return f
}

func (f *Form) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Case title").
				Placeholder("e.g., Property boundary dispute").
				CharLimit(120).
				Value(&f.title).
				Validate(requireField),
			huh.NewText().
				Title("Description").
				Placeholder("Describe the matter in detail").
				CharLimit(2000).
				Value(&f.description).
				Validate(requireField),
			huh.NewSelect[string]().
				Title("Complexity").
				Description("How involved is this matter?").
				Options(complexityOptions...).
				Value(&f.complexity),
		).Title("File a New Case"),
	).WithTheme(huh.ThemeBase())
}

func requireField(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("The field is required")
	}
	return nil
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if m, ok := form.(*huh.Form); ok {
		f.form = m
	}

	if f.form.State == huh.StateCompleted && !f.done {
		f.done = true
		input := client.CaseCreate{
			Title:       strings.TrimSpace(f.title),
			Description: strings.TrimSpace(f.description),
			Complexity:  f.complexity,
			UserID:      f.userID,
		}
		return f, func() tea.Msg { return SubmitMsg{Input: input} }
	}

	return f, cmd
}

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder
	sb.WriteString(f.form.View())
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("Esc to cancel"))
	return sb.String()
}
