// ABOUTME: Credential submission flow as a bubbletea model
// ABOUTME: huh form with local validation, single-flight submit, session establish

package loginform

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/logging"
	"github.com/dcmsystem/dcm-cli/internal/session"
	"github.com/dcmsystem/dcm-cli/internal/tui/styles"
)

// LoginSuccessMsg is sent after the session is established
type LoginSuccessMsg struct {
	Session  session.Session
	Redirect string
}

// CancelledMsg is sent when the user backs out of the login form
type CancelledMsg struct{}

// loginResultMsg carries the backend's answer for one submission attempt
type loginResultMsg struct {
	attempt int
	resp    *client.LoginResponse
	err     error
}

// Form is the credential submission flow for one role
type Form struct {
	cfg   Config
	store session.Store
	api   *client.Client

	form    *huh.Form
	spin    spinner.Model
	width   int
	errText string

	// In-flight request bookkeeping. submitting blocks re-entrant
	// submits; attempt lets stale responses be discarded.
	submitting bool
	attempt    int

	// Field values bound into the huh form
	username string
	email    string
	password string
}

// New creates a login form for the given configuration
func New(cfg Config, store session.Store, api *client.Client) *Form {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Accent)

	f := &Form{
		cfg:   cfg,
		store: store,
		api:   api,
		spin:  sp,
	}
	f.form = f.buildForm()
	return f
}

// buildForm constructs the huh form around the bound field values, so a
// rebuild after a rejected login preserves what the user typed
func (f *Form) buildForm() *huh.Form {
	fields := []huh.Field{}

	if f.cfg.RequiresUsername {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Placeholder("Username").
			CharLimit(32).
			Value(&f.username).
			Validate(ValidateUsername))
	}

	fields = append(fields,
		huh.NewInput().
			Title("Email").
			Placeholder("Email").
			CharLimit(64).
			Value(&f.email).
			Validate(ValidateEmail),
		huh.NewInput().
			Title("Password").
			Placeholder("Password").
			EchoMode(huh.EchoModePassword).
			CharLimit(64).
			Value(&f.password).
			Validate(ValidatePassword),
		huh.NewConfirm().
			Affirmative(f.cfg.SubmitLabel).
			Negative(""),
	)

	return huh.NewForm(huh.NewGroup(fields...).Title(f.cfg.Heading)).
		WithTheme(createTheme())
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		form, cmd := f.form.Update(msg)
		if m, ok := form.(*huh.Form); ok {
			f.form = m
		}
		return f, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return f, func() tea.Msg { return CancelledMsg{} }
		}
		// Ignore input while a submission is outstanding
		if f.submitting {
			return f, nil
		}

	case spinner.TickMsg:
		if f.submitting {
			var cmd tea.Cmd
			f.spin, cmd = f.spin.Update(msg)
			return f, cmd
		}
		return f, nil

	case loginResultMsg:
		return f.handleResult(msg)
	}

	form, cmd := f.form.Update(msg)
	if m, ok := form.(*huh.Form); ok {
		f.form = m
	}

	// huh only completes once every field validated; that is the gate
	// between local validation and the network
	if f.form.State == huh.StateCompleted && !f.submitting {
		return f, tea.Batch(cmd, f.submit(), f.spin.Tick)
	}

	return f, cmd
}

// submit normalizes the entered credentials and issues the login request
func (f *Form) submit() tea.Cmd {
	f.submitting = true
	f.attempt++
	f.errText = ""

	attempt := f.attempt
	role := f.cfg.Role
	creds := client.LoginRequest{
		Email:    NormalizeEmail(f.email),
		Password: NormalizePassword(f.password),
	}

	return func() tea.Msg {
		resp, err := f.api.Login(context.Background(), role, creds)
		return loginResultMsg{attempt: attempt, resp: resp, err: err}
	}
}

func (f *Form) handleResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	// A response for a superseded attempt changes nothing
	if msg.attempt != f.attempt {
		return f, nil
	}
	f.submitting = false

	if msg.err != nil {
		var apiErr *client.APIError
		if errors.As(msg.err, &apiErr) {
			// Server-reported rejection, shown verbatim
			f.errText = apiErr.Error()
		} else {
			logging.L().Warnw("login request failed", "role", f.cfg.Role, "error", msg.err)
			f.errText = "Login failed. Please try again."
		}
		// Field values are preserved for correction
		f.form = f.buildForm()
		return f, f.form.Init()
	}

	role, err := session.ParseRole(msg.resp.Role)
	if err != nil {
		logging.L().Warnw("login response carried unknown role", "role", msg.resp.Role)
		f.errText = "Login failed. Please try again."
		f.form = f.buildForm()
		return f, f.form.Init()
	}

	sess := session.Session{
		Token:    msg.resp.AccessToken,
		Role:     role,
		UserID:   msg.resp.UserID,
		Username: msg.resp.Username,
	}
	if sess.Username == "" {
		// Some backends omit the username; keep what the user typed
		sess.Username = NormalizeUsername(f.username)
	}
	if err := f.store.Establish(sess); err != nil {
		logging.L().Errorw("failed to persist session", "error", err)
		f.errText = "Login failed. Please try again."
		f.form = f.buildForm()
		return f, f.form.Init()
	}

	// Reset only after success; the redirect happens in the app
	f.username = ""
	f.email = ""
	f.password = ""

	redirect := f.cfg.RedirectPath
	return f, func() tea.Msg {
		return LoginSuccessMsg{Session: sess, Redirect: redirect}
	}
}

// Err returns the currently displayed submission error, if any
func (f *Form) Err() string {
	return f.errText
}

// Submitting reports whether a request is outstanding
func (f *Form) Submitting() bool {
	return f.submitting
}

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(f.cfg.Heading))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(f.cfg.Tagline))
	sb.WriteString("\n\n")

	if f.submitting {
		sb.WriteString(f.spin.View())
		sb.WriteString(" Signing in...\n")
	} else {
		sb.WriteString(f.form.View())
	}

	if f.errText != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.ErrorText.Render(f.errText))
		sb.WriteString("\n")
	}

	if f.cfg.ShowRecoveryLink {
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("Forgot your password? Reset it on the DCM web portal."))
		sb.WriteString("\n")
	}

	return sb.String()
}

// createTheme returns a huh theme matching the client's palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Accent)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Accent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Text)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(styles.Text).
		Background(styles.Info).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(styles.Muted).
		Background(styles.Surface).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)

	return t
}
