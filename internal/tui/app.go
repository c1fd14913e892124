// ABOUTME: Root bubbletea model for the DCM client
// ABOUTME: Routes screens through the role gate and loads case data per role

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/logging"
	"github.com/dcmsystem/dcm-cli/internal/session"
	"github.com/dcmsystem/dcm-cli/internal/tui/caselist"
	"github.com/dcmsystem/dcm-cli/internal/tui/dashboard"
	"github.com/dcmsystem/dcm-cli/internal/tui/filecase"
	"github.com/dcmsystem/dcm-cli/internal/tui/gate"
	"github.com/dcmsystem/dcm-cli/internal/tui/icons"
	"github.com/dcmsystem/dcm-cli/internal/tui/landing"
	"github.com/dcmsystem/dcm-cli/internal/tui/loginform"
	"github.com/dcmsystem/dcm-cli/internal/tui/navbar"
	"github.com/dcmsystem/dcm-cli/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenLogin
	ScreenUserDashboard
	ScreenFileCase
	ScreenCheckStatus
	ScreenJudgeDashboard
	ScreenJudgeCases
	ScreenJudgeAnalytics
	ScreenAdminDashboard
	ScreenAdminAnalytics
	ScreenManageRecords
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping panel layout
	panelPadding     = 4  // Total horizontal padding from panel borders (2 each side)
)

// routes maps navigation paths to screens
var routes = map[string]Screen{
	navbar.PathUserDashboard:      ScreenUserDashboard,
	navbar.PathUserFileCase:       ScreenFileCase,
	navbar.PathUserCheckStatus:    ScreenCheckStatus,
	navbar.PathJudgeDashboard:     ScreenJudgeDashboard,
	navbar.PathJudgeCases:         ScreenJudgeCases,
	navbar.PathJudgeAnalytics:     ScreenJudgeAnalytics,
	navbar.PathAdminDashboard:     ScreenAdminDashboard,
	navbar.PathAdminAnalytics:     ScreenAdminAnalytics,
	navbar.PathAdminManageRecords: ScreenManageRecords,
}

// screenRequirements declares the permitted roles for each protected
// screen. Screens absent here are public.
var screenRequirements = map[Screen]gate.Requirement{
	ScreenUserDashboard:  gate.Require(session.RoleUser),
	ScreenFileCase:       gate.Require(session.RoleUser),
	ScreenCheckStatus:    gate.Require(session.RoleUser),
	ScreenJudgeDashboard: gate.Require(session.RoleJudge),
	ScreenJudgeCases:     gate.Require(session.RoleJudge),
	ScreenJudgeAnalytics: gate.Require(session.RoleJudge),
	ScreenAdminDashboard: gate.Require(session.RoleAdmin),
	ScreenAdminAnalytics: gate.Require(session.RoleAdmin),
	ScreenManageRecords:  gate.Require(session.RoleAdmin),
}

// navigateToMsg asks the app to move to a path through the role gate
type navigateToMsg struct {
	path string
}

// casesLoadedMsg delivers a case list for the screen that requested it
type casesLoadedMsg struct {
	target Screen
	cases  []client.Case
	err    error
}

// judgeAnalyticsMsg delivers the judge's caseload summary
type judgeAnalyticsMsg struct {
	target    Screen
	analytics *client.JudgeAnalytics
	err       error
}

// adminOverviewMsg delivers platform analytics plus the record list
type adminOverviewMsg struct {
	target    Screen
	analytics *client.AdminAnalytics
	cases     []client.Case
	err       error
}

// caseFiledMsg reports the outcome of a filing
type caseFiledMsg struct {
	filed *client.Case
	err   error
}

// caseDeletedMsg reports the outcome of a record deletion
type caseDeletedMsg struct {
	caseID int
	err    error
}

// hearingScheduledMsg reports the outcome of a scheduling request
type hearingScheduledMsg struct {
	result *client.ScheduleHearingResult
	err    error
}

// App is the root model for the TUI
type App struct {
	store  session.Store
	api    *client.Client
	screen Screen
	width  int
	height int
	err    error

	sess          session.Session
	gateCheck     *gate.Gate
	startPath     string
	pendingNotice string
	lastUpdate    time.Time
	loading       bool

	// Child models
	landingView *landing.Landing
	loginView   *loginform.Form
	fileView    *filecase.Form
	listView    *caselist.List
	dashView    *dashboard.Dashboard
}

// New creates the TUI application. A session persisted by a previous run
// puts the user straight back on their dashboard, still through the gate.
func New(store session.Store, api *client.Client) *App {
	a := &App{
		store:       store,
		api:         api,
		screen:      ScreenLanding,
		landingView: landing.New(),
	}

	if sess, ok := store.Read(); ok {
		api.SetToken(sess.Token)
		a.startPath = dashboardPathFor(sess.Role)
	}

	return a
}

// dashboardPathFor returns the home path for a role
func dashboardPathFor(role session.Role) string {
	switch role {
	case session.RoleJudge:
		return navbar.PathJudgeDashboard
	case session.RoleAdmin:
		return navbar.PathAdminDashboard
	default:
		return navbar.PathUserDashboard
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.startPath == "" {
		return nil
	}
	path := a.startPath
	return func() tea.Msg { return navigateToMsg{path: path} }
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.dashView != nil {
			a.dashView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.screen == ScreenLogin || a.screen == ScreenFileCase {
			return a.forwardToScreen(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case navigateToMsg:
		return a.navigate(msg.path)

	case landing.RoleSelectedMsg:
		return a.openLogin(msg.Role)

	case landing.QuitMsg:
		return a, tea.Quit

	case loginform.LoginSuccessMsg:
		if a.screen != ScreenLogin {
			// A late login response must not hijack the current screen
			return a, nil
		}
		a.api.SetToken(msg.Session.Token)
		a.sess = msg.Session
		logging.L().Infow("login succeeded", "role", msg.Session.Role, "userId", msg.Session.UserID)
		return a.navigate(msg.Redirect)

	case loginform.CancelledMsg:
		return a.toLanding("")

	case navbar.LoggedOutMsg:
		a.api.SetToken("")
		a.sess = session.Session{}
		return a.toLanding("You have been logged out.")

	case filecase.SubmitMsg:
		if a.screen != ScreenFileCase {
			return a, nil
		}
		return a, a.fileCase(msg.Input)

	case filecase.CancelledMsg:
		return a.navigate(navbar.PathUserDashboard)

	case caselist.DeleteRequestedMsg:
		if a.screen != ScreenManageRecords {
			return a, nil
		}
		return a, a.deleteCase(msg.CaseID)

	case caselist.ScheduleRequestedMsg:
		if a.screen != ScreenJudgeCases {
			return a, nil
		}
		return a, a.scheduleHearing(msg.CaseID)

	case casesLoadedMsg:
		return a.handleCasesLoaded(msg)

	case judgeAnalyticsMsg:
		return a.handleJudgeAnalytics(msg)

	case adminOverviewMsg:
		return a.handleAdminOverview(msg)

	case caseFiledMsg:
		return a.handleCaseFiled(msg)

	case caseDeletedMsg:
		if a.screen != ScreenManageRecords {
			return a, nil
		}
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.pendingNotice = fmt.Sprintf("Record %d deleted", msg.caseID)
		return a, a.loadCases(ScreenManageRecords)

	case hearingScheduledMsg:
		if a.screen != ScreenJudgeCases {
			return a, nil
		}
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if msg.result != nil {
			a.pendingNotice = msg.result.Message
		}
		return a, a.loadCases(ScreenJudgeCases)

	default:
		// Everything else goes to the screens running huh forms or
		// spinners; they need internal messages to animate
		if a.screen == ScreenLogin || a.screen == ScreenFileCase {
			return a.forwardToScreen(msg)
		}
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLanding:
		if a.landingView == nil {
			return a, nil
		}
		model, cmd := a.landingView.Update(msg)
		a.landingView = model.(*landing.Landing)
		return a, cmd

	case ScreenLogin, ScreenFileCase:
		return a.forwardToScreen(msg)

	case ScreenUserDashboard, ScreenJudgeDashboard, ScreenAdminDashboard,
		ScreenJudgeAnalytics, ScreenAdminAnalytics:
		return a.handleSummaryKey(msg)

	case ScreenCheckStatus, ScreenJudgeCases, ScreenManageRecords:
		return a.handleListKey(msg)
	}

	return a, nil
}

// handleSummaryKey handles keys on dashboard and analytics screens
func (a *App) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "l":
		return a, navbar.Logout(a.store)
	case "r":
		return a, a.reload()
	case "1", "2", "3":
		return a.jumpToLink(msg.String())
	}
	return a, nil
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "l":
		return a, navbar.Logout(a.store)
	case "r":
		return a, a.reload()
	case "b":
		return a.navigate(dashboardPathFor(a.sess.Role))
	case "1", "2", "3":
		return a.jumpToLink(msg.String())
	}

	if a.listView == nil {
		return a, nil
	}
	model, cmd := a.listView.Update(msg)
	a.listView = model.(*caselist.List)
	return a, cmd
}

// jumpToLink navigates to the numbered navbar link for the current role
func (a *App) jumpToLink(key string) (tea.Model, tea.Cmd) {
	links := navbar.Links(a.sess.Role)
	idx := int(key[0] - '1')
	if idx < 0 || idx >= len(links) {
		return a, nil
	}
	return a.navigate(links[idx].Path)
}

func (a *App) forwardToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		if a.loginView == nil {
			return a, nil
		}
		model, cmd := a.loginView.Update(msg)
		a.loginView = model.(*loginform.Form)
		return a, cmd
	case ScreenFileCase:
		if a.fileView == nil {
			return a, nil
		}
		model, cmd := a.fileView.Update(msg)
		a.fileView = model.(*filecase.Form)
		return a, cmd
	}
	return a, nil
}

// openLogin shows the credential form for the chosen role
func (a *App) openLogin(role session.Role) (tea.Model, tea.Cmd) {
	a.screen = ScreenLogin
	a.err = nil
	a.loginView = loginform.New(loginform.ForRole(role), a.store, a.api)
	return a, a.loginView.Init()
}

// toLanding returns to the public landing screen, dropping all
// authenticated state
func (a *App) toLanding(notice string) (tea.Model, tea.Cmd) {
	a.screen = ScreenLanding
	a.err = nil
	a.loading = false
	a.landingView = landing.New()
	if notice != "" {
		a.landingView.SetNotice(notice)
	}
	a.loginView = nil
	a.fileView = nil
	a.listView = nil
	a.dashView = nil
	return a, nil
}

// navigate moves to a path. Protected paths go through a fresh role gate;
// a denial redirects to the landing screen with no further detail, whether
// the visitor is logged out or signed in with the wrong role.
func (a *App) navigate(path string) (tea.Model, tea.Cmd) {
	screen, ok := routes[path]
	if !ok {
		return a.toLanding("")
	}

	if req, protected := screenRequirements[screen]; protected {
		a.gateCheck = gate.New(req)
		if a.gateCheck.Resolve(a.store) != gate.StatusAuthorized {
			logging.L().Infow("access denied", "path", path)
			return a.toLanding("")
		}
	}

	a.sess, _ = a.store.Read()
	a.screen = screen
	a.err = nil
	a.loginView = nil
	a.fileView = nil
	a.listView = nil
	a.dashView = nil

	switch screen {
	case ScreenFileCase:
		a.fileView = filecase.New(a.sess.UserID)
		return a, a.fileView.Init()
	case ScreenUserDashboard, ScreenCheckStatus, ScreenJudgeCases, ScreenManageRecords:
		a.loading = true
		return a, a.loadCases(screen)
	case ScreenJudgeDashboard, ScreenJudgeAnalytics:
		a.loading = true
		return a, a.loadJudgeAnalytics(screen)
	case ScreenAdminDashboard, ScreenAdminAnalytics:
		a.loading = true
		return a, a.loadAdminOverview(screen)
	}

	return a, nil
}

// reload refetches the current screen's data
func (a *App) reload() tea.Cmd {
	switch a.screen {
	case ScreenUserDashboard, ScreenCheckStatus, ScreenJudgeCases, ScreenManageRecords:
		a.loading = true
		return a.loadCases(a.screen)
	case ScreenJudgeDashboard, ScreenJudgeAnalytics:
		a.loading = true
		return a.loadJudgeAnalytics(a.screen)
	case ScreenAdminDashboard, ScreenAdminAnalytics:
		a.loading = true
		return a.loadAdminOverview(a.screen)
	}
	return nil
}

// loadCases fetches the case list the target screen needs
func (a *App) loadCases(target Screen) tea.Cmd {
	api := a.api
	userID := a.sess.UserID
	return func() tea.Msg {
		ctx := context.Background()
		var cases []client.Case
		var err error

		switch target {
		case ScreenUserDashboard, ScreenCheckStatus:
			cases, err = api.UserCases(ctx, userID)
		case ScreenJudgeCases:
			cases, err = api.JudgeCases(ctx, userID)
		case ScreenManageRecords:
			cases, err = api.AdminCases(ctx)
		}
		return casesLoadedMsg{target: target, cases: cases, err: err}
	}
}

func (a *App) loadJudgeAnalytics(target Screen) tea.Cmd {
	api := a.api
	judgeID := a.sess.UserID
	return func() tea.Msg {
		analytics, err := api.GetJudgeAnalytics(context.Background(), judgeID)
		return judgeAnalyticsMsg{target: target, analytics: analytics, err: err}
	}
}

// loadAdminOverview fetches platform analytics and the record list in
// parallel; the admin summary needs both
func (a *App) loadAdminOverview(target Screen) tea.Cmd {
	api := a.api
	return func() tea.Msg {
		var analytics *client.AdminAnalytics
		var cases []client.Case

		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			analytics, err = api.GetAdminAnalytics(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			cases, err = api.AdminCases(ctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return adminOverviewMsg{target: target, err: err}
		}
		return adminOverviewMsg{target: target, analytics: analytics, cases: cases}
	}
}

func (a *App) fileCase(input client.CaseCreate) tea.Cmd {
	api := a.api
	return func() tea.Msg {
		filed, err := api.FileCase(context.Background(), input)
		return caseFiledMsg{filed: filed, err: err}
	}
}

func (a *App) deleteCase(caseID int) tea.Cmd {
	api := a.api
	return func() tea.Msg {
		err := api.DeleteCase(context.Background(), caseID)
		return caseDeletedMsg{caseID: caseID, err: err}
	}
}

func (a *App) scheduleHearing(caseID int) tea.Cmd {
	api := a.api
	judgeID := a.sess.UserID
	return func() tea.Msg {
		result, err := api.ScheduleHearing(context.Background(), judgeID, caseID)
		return hearingScheduledMsg{result: result, err: err}
	}
}

func (a *App) handleCasesLoaded(msg casesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.target != a.screen {
		// Data for a screen we already left
		return a, nil
	}
	a.loading = false
	if msg.err != nil {
		a.err = msg.err
		return a, nil
	}
	a.lastUpdate = time.Now()

	switch a.screen {
	case ScreenUserDashboard:
		a.dashView = dashboard.New(
			"Dashboard",
			"Welcome, "+a.sess.DisplayName(),
			caseStats(msg.cases),
			len(msg.cases),
			countStatus(msg.cases, client.StatusCompleted),
			a.contentWidth(), a.contentHeight(),
		)
	case ScreenCheckStatus:
		a.listView = caselist.New("Check Status", msg.cases, a.contentWidth(), a.listHeight(), caselist.Actions{})
	case ScreenJudgeCases:
		a.listView = caselist.New("My Cases", msg.cases, a.contentWidth(), a.listHeight(), caselist.Actions{CanSchedule: true})
	case ScreenManageRecords:
		a.listView = caselist.New("Manage Records", msg.cases, a.contentWidth(), a.listHeight(), caselist.Actions{CanDelete: true})
	}

	if a.listView != nil && a.pendingNotice != "" {
		a.listView.SetNotice(a.pendingNotice)
		a.pendingNotice = ""
	}
	return a, nil
}

func (a *App) handleJudgeAnalytics(msg judgeAnalyticsMsg) (tea.Model, tea.Cmd) {
	if msg.target != a.screen {
		return a, nil
	}
	a.loading = false
	if msg.err != nil {
		a.err = msg.err
		return a, nil
	}
	a.lastUpdate = time.Now()

	title := "Dashboard"
	if a.screen == ScreenJudgeAnalytics {
		title = "Analytics"
	}
	an := msg.analytics
	a.dashView = dashboard.New(
		title,
		"Welcome, "+a.sess.DisplayName(),
		[]dashboard.Stat{
			{Label: "Total Cases", Value: an.TotalCases},
			{Label: "Pending", Value: an.PendingCases},
			{Label: "Scheduled", Value: an.ScheduledCases},
			{Label: "Completed", Value: an.CompletedCases},
			{Label: "This Month", Value: an.CasesThisMonth},
		},
		an.TotalCases, an.CompletedCases,
		a.contentWidth(), a.contentHeight(),
	)
	return a, nil
}

func (a *App) handleAdminOverview(msg adminOverviewMsg) (tea.Model, tea.Cmd) {
	if msg.target != a.screen {
		return a, nil
	}
	a.loading = false
	if msg.err != nil {
		a.err = msg.err
		return a, nil
	}
	a.lastUpdate = time.Now()

	title := "Dashboard"
	if a.screen == ScreenAdminAnalytics {
		title = "Analytics"
	}
	an := msg.analytics
	a.dashView = dashboard.New(
		title,
		"Welcome, "+a.sess.DisplayName(),
		[]dashboard.Stat{
			{Label: "Total Cases", Value: an.TotalCases},
			{Label: "Citizens", Value: an.TotalUsers},
			{Label: "Judges", Value: an.TotalJudges},
			{Label: "Pending", Value: an.PendingCases},
			{Label: "Scheduled", Value: an.ScheduledCases},
			{Label: "Completed", Value: an.CompletedCases},
			{Label: "This Month", Value: an.CasesThisMonth},
		},
		an.TotalCases, an.CompletedCases,
		a.contentWidth(), a.contentHeight(),
	)
	return a, nil
}

func (a *App) handleCaseFiled(msg caseFiledMsg) (tea.Model, tea.Cmd) {
	if a.screen != ScreenFileCase {
		return a, nil
	}
	if msg.err != nil {
		a.err = msg.err
		// Rebuild the form so the citizen can retry
		a.fileView = filecase.New(a.sess.UserID)
		return a, a.fileView.Init()
	}

	if msg.filed != nil {
		a.pendingNotice = "Case filed: " + msg.filed.CaseNumber
	}
	return a.navigate(navbar.PathUserCheckStatus)
}

func caseStats(cases []client.Case) []dashboard.Stat {
	return []dashboard.Stat{
		{Label: "My Cases", Value: len(cases)},
		{Label: "Pending", Value: countStatus(cases, client.StatusPending)},
		{Label: "Scheduled", Value: countStatus(cases, client.StatusScheduled)},
		{Label: "In Progress", Value: countStatus(cases, client.StatusInProgress)},
		{Label: "Completed", Value: countStatus(cases, client.StatusCompleted)},
	}
}

func countStatus(cases []client.Case, status string) int {
	n := 0
	for _, c := range cases {
		if c.Status == status {
			n++
		}
	}
	return n
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin:
		if a.loginView != nil {
			content = a.loginView.View()
		}
	case ScreenFileCase:
		if a.fileView != nil {
			content = a.fileView.View()
		}
	case ScreenUserDashboard, ScreenJudgeDashboard, ScreenAdminDashboard,
		ScreenJudgeAnalytics, ScreenAdminAnalytics:
		content = a.viewDashboard()
	case ScreenCheckStatus, ScreenJudgeCases, ScreenManageRecords:
		content = a.viewList()
	default:
		if a.landingView != nil {
			content = a.landingView.View()
		}
	}

	return a.wrapWithFrame(content)
}

// viewDashboard renders the summary panel, or the loading/error state
// while data is in flight
func (a *App) viewDashboard() string {
	if a.err != nil {
		return a.viewError()
	}
	if a.loading || a.dashView == nil {
		return styles.Panel.Width(a.contentWidth()).Render("Loading...")
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(a.dashView.View())
}

// viewList renders the case table panel, or the loading/error state
func (a *App) viewList() string {
	if a.err != nil {
		return a.viewError()
	}
	if a.loading || a.listView == nil {
		return styles.Panel.Width(a.contentWidth()).Render("Loading...")
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(a.listView.View())
}

func (a *App) viewError() string {
	return styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n" +
		styles.Help.Render("Press r to retry")
}

// contentWidth calculates the width available inside the panel
func (a *App) contentWidth() int {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}
	return width - panelPadding
}

// contentHeight calculates the height available for panel content
func (a *App) contentHeight() int {
	// Total overhead:
	// - Header: 1 line
	// - Nav bar plus newlines: 2 lines
	// - ActivePanel border+padding: 4 lines
	// - Footer: 1 line
	return a.height - 8
}

func (a *App) listHeight() int {
	h := a.contentHeight() - 6
	if h < 4 {
		h = 4
	}
	return h
}

// authenticated reports whether the current screen sits behind the gate
func (a *App) authenticated() bool {
	_, protected := screenRequirements[a.screen]
	return protected
}

// renderHeader creates the header bar with app branding and, when signed
// in, the username badge
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("DCM System"))
	leftPlain := fmt.Sprintf(" %s %s", icons.App.String(), "DCM System")

	rightText := ""
	rightPlain := ""
	if a.authenticated() {
		badge := styles.Avatar.Render(navbar.Initial(a.sess.Username))
		rightText = contextStyle.Render(a.sess.DisplayName()) + " " + badge + " "
		rightPlain = a.sess.DisplayName() + " " + navbar.Initial(a.sess.Username) + "   "
	}

	fillWidth := width - 4 - lipgloss.Width(leftPlain) - lipgloss.Width(rightPlain)
	if fillWidth < 0 {
		fillWidth = 0
	}
	fill := strings.Repeat("─", fillWidth)

	header := "╭─" + leftText + fill + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderNav renders the numbered navigation links for the signed-in role
func (a *App) renderNav() string {
	links := navbar.Links(a.sess.Role)
	if len(links) == 0 {
		return ""
	}

	current := Screen(-1)
	if s, ok := routes[a.currentPath()]; ok {
		current = s
	}

	var parts []string
	for i, link := range links {
		label := fmt.Sprintf("%d %s", i+1, link.Label)
		if routes[link.Path] == current {
			parts = append(parts, styles.NavLinkActive.Render(label))
		} else {
			parts = append(parts, styles.NavLink.Render(label))
		}
	}
	return "  " + strings.Join(parts, "   ")
}

// currentPath maps the active screen back to its navigation path
func (a *App) currentPath() string {
	for path, screen := range routes {
		if screen == a.screen {
			return path
		}
	}
	return ""
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	// Build keyboard shortcuts based on current screen
	var shortcuts []string
	switch a.screen {
	case ScreenLanding:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenLogin:
		shortcuts = []string{"Tab Next field", "Enter Submit", "Esc Back"}
	case ScreenFileCase:
		shortcuts = []string{"Tab Next field", "Enter Submit", "Esc Cancel"}
	case ScreenUserDashboard, ScreenJudgeDashboard, ScreenAdminDashboard,
		ScreenJudgeAnalytics, ScreenAdminAnalytics:
		shortcuts = []string{"1-3 Go to", "r Refresh", "l Log out", "q Quit"}
	case ScreenCheckStatus:
		shortcuts = []string{"↑↓ Navigate", "b Back", "l Log out", "q Quit"}
	case ScreenJudgeCases:
		shortcuts = []string{"↑↓ Navigate", "s Schedule", "b Back", "l Log out", "q Quit"}
	case ScreenManageRecords:
		shortcuts = []string{"↑↓ Navigate", "d Delete", "b Back", "l Log out", "q Quit"}
	}

	// Build styled shortcuts
	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	// Right side status (last update time)
	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && a.authenticated() {
		elapsed := a.formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	// Calculate widths
	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	footer := "╰─" + leftText + fill + rightText + "─╯"

	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// Run starts the TUI
func Run(store session.Store, api *client.Client) error {
	app := New(store, api)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// wrapWithFrame wraps content with header, nav links, and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	if a.authenticated() {
		sb.WriteString(a.renderNav())
		sb.WriteString("\n")
	}
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}
