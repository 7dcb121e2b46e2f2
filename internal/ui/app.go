package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"snapcal/internal/foodlog"
	"snapcal/internal/imagefile"
	"snapcal/internal/nutrition"
	"snapcal/internal/prefs"
	"snapcal/internal/session"
)

// analysisFailedText is shown whenever estimation fails, regardless of
// the underlying cause.
const analysisFailedText = "We couldn't analyze that image. Please try again or ensure the food is clearly visible."

// Analyzer is the estimation dependency of the UI. *estimator.Client
// implements it; tests substitute their own.
type Analyzer interface {
	Analyze(ctx context.Context, jpeg []byte) (nutrition.Analysis, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *foodlog.Store
	Analyzer  Analyzer
	Goals     nutrition.Goal
	ImagesDir string
	ThemeName string
	PrefsPath string
	Logger    *zap.Logger
}

// Model is the root application state for Bubble Tea. It owns the
// session state machine value and executes the effects its transitions
// emit (estimator calls, store writes).
type Model struct {
	ctx       context.Context
	store     *foodlog.Store
	analyzer  Analyzer
	goals     nutrition.Goal
	logger    *zap.Logger
	prefsPath string

	sess session.State

	theme  Theme
	styles Styles
	keys   keyMap
	width  int
	height int
	ready  bool

	// Acquire view
	picker     filepicker.Model
	pathInput  textinput.Model
	typingPath bool
	acquireErr string

	// Analyzing view
	spin spinner.Model

	// Dashboard
	bar         progress.Model
	selected    int
	deleteArmed string // entry id awaiting y/n confirmation
	showHelp    bool
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Fresh"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	goals := opts.Goals
	if goals == (nutrition.Goal{}) {
		goals = nutrition.DefaultGoal()
	}

	picker := filepicker.New()
	picker.AllowedTypes = imagefile.Extensions
	picker.CurrentDirectory = opts.ImagesDir
	picker.ShowHidden = false

	input := textinput.New()
	input.Placeholder = "/path/to/photo.jpg"
	input.Prompt = "> "

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	theme := GetTheme(themeName)

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		analyzer:  opts.Analyzer,
		goals:     goals,
		logger:    logger,
		prefsPath: prefsPath,
		theme:     theme,
		styles:    theme.Styles(),
		keys:      DefaultKeyMap(),
		picker:    picker,
		pathInput: input,
		spin:      spin,
		bar:       progress.New(progress.WithSolidFill(theme.Calories), progress.WithoutPercentage()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Messages

type imageReadMsg struct {
	data []byte
	err  error
}

type analyzeDoneMsg struct {
	ticket   int
	analysis nutrition.Analysis
	err      error
}

// Commands

func readImageCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := imagefile.Read(path)
		return imageReadMsg{data: data, err: err}
	}
}

func (m Model) analyzeCmd(ticket int, image []byte) tea.Cmd {
	return func() tea.Msg {
		analysis, err := m.analyzer.Analyze(m.ctx, image)
		return analyzeDoneMsg{ticket: ticket, analysis: analysis, err: err}
	}
}

// apply advances the session state machine and executes the effects the
// transition emitted. Store writes run synchronously on the event loop;
// estimation runs as a command.
func (m *Model) apply(ev session.Event) tea.Cmd {
	next, effects := session.Next(m.sess, ev)
	m.sess = next

	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case session.EffectAnalyze:
			cmds = append(cmds, m.analyzeCmd(eff.Ticket, eff.Image), m.spin.Tick)
		case session.EffectAppend:
			var imageData string
			if len(eff.Image) > 0 {
				imageData = imagefile.EncodeBase64(eff.Image)
			}
			m.store.Append(foodlog.NewEntry(eff.Analysis, imageData, time.Now()))
			m.selected = 0
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.bar.Width = barWidth(m.width)
		m.picker.Height = m.height - 8
		m.pathInput.Width = m.width - 8
		return m, nil

	case spinner.TickMsg:
		if m.sess.Phase != session.Analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case imageReadMsg:
		if m.sess.Phase != session.Acquiring {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Warn("image acquisition failed", zap.Error(msg.err))
			m.acquireErr = "Couldn't read that image. Pick a JPEG or PNG file."
			return m, nil
		}
		m.acquireErr = ""
		return m, m.apply(session.ImageAcquired{Image: msg.data})

	case analyzeDoneMsg:
		if msg.err != nil {
			m.logger.Warn("estimation failed",
				zap.Int("ticket", msg.ticket), zap.Error(msg.err))
			return m, m.apply(session.AnalysisFailed{
				Ticket:  msg.ticket,
				Message: analysisFailedText,
			})
		}
		return m, m.apply(session.AnalysisSucceeded{
			Ticket: msg.ticket,
			Result: msg.analysis,
		})
	}

	// Everything else (filesystem reads, etc.) belongs to the
	// filepicker while the acquire view is active.
	if m.sess.Phase == session.Acquiring && !m.typingPath {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, readImageCmd(path))
	}
	if ok, _ := m.picker.DidSelectDisabledFile(msg); ok {
		m.acquireErr = "That file type isn't supported. Pick a JPEG or PNG."
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.sess.Phase {
	case session.Dashboard:
		return m.handleDashboardKey(msg)
	case session.Acquiring:
		return m.handleAcquireKey(msg)
	case session.Analyzing:
		// The view offers nothing but waiting; the estimation
		// timeout bounds how long this phase can last.
		return m, nil
	case session.Reviewing:
		return m.handleReviewKey(msg)
	}
	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Pending delete confirmation swallows everything except y/n.
	if m.deleteArmed != "" {
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.store.Remove(m.deleteArmed)
			m.deleteArmed = ""
			m.clampSelection()
		case key.Matches(msg, m.keys.No):
			m.deleteArmed = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.bar = progress.New(progress.WithSolidFill(m.theme.Calories), progress.WithoutPercentage())
		m.bar.Width = barWidth(m.width)
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Capture):
		cmd := m.apply(session.StartCapture{})
		m.typingPath = false
		m.acquireErr = ""
		return m, tea.Batch(cmd, m.picker.Init())

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.store.Len()-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if entries := m.store.Entries(); m.selected < len(entries) {
			m.deleteArmed = entries[m.selected].ID
		}
		return m, nil

	case key.Matches(msg, m.keys.DismissError):
		return m, m.apply(session.DismissError{})
	}
	return m, nil
}

func (m Model) handleAcquireKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typingPath {
		switch msg.String() {
		case "enter":
			path := m.pathInput.Value()
			m.typingPath = false
			if path != "" {
				return m, readImageCmd(path)
			}
			return m, nil
		case "esc":
			m.typingPath = false
			return m, nil
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, m.apply(session.CancelCapture{})

	case key.Matches(msg, m.keys.TypePath):
		m.typingPath = true
		m.pathInput.SetValue("")
		return m, m.pathInput.Focus()
	}
	return m.updatePicker(msg)
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.apply(session.Confirm{})
	case key.Matches(msg, m.keys.Discard):
		return m, m.apply(session.Discard{})
	}
	return m, nil
}

func (m *Model) clampSelection() {
	if max := m.store.Len() - 1; m.selected > max {
		m.selected = max
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.sess.Phase {
	case session.Acquiring:
		return m.renderAcquire()
	case session.Analyzing:
		return m.renderAnalyzing()
	case session.Reviewing:
		return m.renderReview()
	default:
		return m.renderDashboard()
	}
}

func barWidth(total int) int {
	w := total - 30
	if w < 10 {
		w = 10
	}
	if w > 48 {
		w = 48
	}
	return w
}

// Run starts the Bubble Tea program and blocks until the user quits or
// the context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
