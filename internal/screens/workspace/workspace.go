// Package workspace is the screen where the learner reads a prompt, writes
// a query and compares results.
package workspace

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/sqltrail/sqltrail/internal/screen"
	"github.com/sqltrail/sqltrail/internal/trail"
	"github.com/sqltrail/sqltrail/internal/tracks"
	"github.com/sqltrail/sqltrail/internal/ui/components"
	"github.com/sqltrail/sqltrail/internal/ui/layout"
)

// listChrome is the number of rows around the question list overlay.
const listChrome = 16

// Deps are the collaborators shared by every workspace.
type Deps struct {
	Backend     trail.Backend
	Logger      *zap.Logger
	Timeout     time.Duration
	DiagramsDir string
}

// WorkspaceScreen implements screen.Screen for one learning session.
type WorkspaceScreen struct {
	ctrl      *trail.Controller
	deps      Deps
	canGoBack bool

	header components.Header
	editor components.Editor
	status components.Status
	retry  key.Binding
}

var (
	_ screen.Screen            = (*WorkspaceScreen)(nil)
	_ screen.KeyHintProvider   = (*WorkspaceScreen)(nil)
	_ screen.ContextProvider   = (*WorkspaceScreen)(nil)
	_ screen.EscapeInterceptor = (*WorkspaceScreen)(nil)
)

// New creates a workspace for mode. canGoBack is true when the screen was
// opened from track selection.
func New(mode trail.Mode, deps Deps, canGoBack bool) *WorkspaceScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	logger := deps.Logger.With(zap.Stringer("mode", mode))
	return &WorkspaceScreen{
		ctrl:      trail.New(mode, deps.Backend, trail.WithLogger(logger)),
		deps:      deps,
		canGoBack: canGoBack,
		header:    components.NewHeader(),
		editor:    components.NewEditor(),
		status:    components.NewStatus(),
		retry:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("Ctrl+R", "Tentar novamente")),
	}
}

// State exposes the controller state.
func (w *WorkspaceScreen) State() trail.State {
	return w.ctrl.State()
}

func (w *WorkspaceScreen) Init() tea.Cmd {
	return tea.Batch(w.editor.Focus(), w.load())
}

// load starts whatever fetch the mode needs to show a question.
func (w *WorkspaceScreen) load() tea.Cmd {
	var t trail.Ticket
	if w.ctrl.Mode().IsTrack() {
		var ok bool
		if t, ok = w.ctrl.BeginLoadTrack(); !ok {
			return nil
		}
	} else {
		var err error
		if t, err = w.ctrl.BeginLoadQuestion(); err != nil {
			return nil
		}
	}
	return tea.Batch(w.sync(), w.perform(t))
}

// perform runs the network half of t off the UI goroutine.
func (w *WorkspaceScreen) perform(t trail.Ticket) tea.Cmd {
	ctrl, timeout := w.ctrl, w.deps.Timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return completionMsg{done: ctrl.Perform(ctx, t)}
	}
}

// sync pushes controller state into the widgets.
func (w *WorkspaceScreen) sync() tea.Cmd {
	st := w.ctrl.State()
	if st.Draft != w.editor.Value() {
		w.editor.SetValue(st.Draft)
	}
	w.editor.SetBusy(st.Busy)
	return w.status.SetBusy(st.Busy)
}

func (w *WorkspaceScreen) headerProps() components.HeaderProps {
	st := w.ctrl.State()
	props := components.HeaderProps{
		Multi:       st.Mode.IsTrack(),
		Questions:   st.Questions,
		CanGoBack:   w.canGoBack,
		DiagramsDir: w.deps.DiagramsDir,
		DiagramName: tracks.DiagramName(st.Mode.Slug),
	}
	if st.Current != nil {
		props.CurrentID = st.Current.ID
	}
	return props
}

func (w *WorkspaceScreen) Title() string {
	if slug := w.ctrl.Mode().Slug; slug != "" {
		return "Trilha " + tracks.Title(slug)
	}
	return "Questão Avulsa"
}

func (w *WorkspaceScreen) HeaderContext() string {
	if slug := w.ctrl.Mode().Slug; slug != "" {
		return tracks.Icon(slug) + " " + tracks.Title(slug)
	}
	return ""
}

func (w *WorkspaceScreen) InterceptsEscape() bool {
	return w.header.OverlayOpen()
}

func (w *WorkspaceScreen) KeyHints() []layout.KeyHint {
	hints := w.header.Hints(w.headerProps())
	if w.header.OverlayOpen() {
		return hints
	}
	hints = append([]layout.KeyHint{{Key: "Ctrl+S", Description: components.SubmitLabel}}, hints...)
	if w.ctrl.NeedsTrackLoad() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Tentar novamente"})
	}
	return hints
}

func (w *WorkspaceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.header.SetListRows(msg.Height - listChrome)
		return w, nil

	case completionMsg:
		w.ctrl.Finish(msg.done)
		return w, w.sync()

	case components.SubmitQueryMsg:
		w.ctrl.SetQueryText(msg.SQL)
		t := w.ctrl.BeginSubmit()
		return w, tea.Batch(w.sync(), w.perform(t))

	case components.NextQuestionMsg:
		if w.ctrl.Mode().IsTrack() {
			w.ctrl.SelectNext()
			return w, w.sync()
		}
		return w, w.load()

	case components.QuestionChosenMsg:
		w.ctrl.SelectQuestion(msg.ID)
		return w, w.sync()

	case spinner.TickMsg:
		var cmd tea.Cmd
		w.status, cmd = w.status.Update(msg)
		return w, cmd

	case tea.KeyPressMsg:
		if !w.header.OverlayOpen() && key.Matches(msg, w.retry) {
			return w, w.load()
		}
	}

	var cmd tea.Cmd
	var handled bool
	w.header, cmd, handled = w.header.Update(msg, w.headerProps())
	if handled {
		return w, cmd
	}

	w.editor, cmd = w.editor.Update(msg)
	if v := w.editor.Value(); v != w.ctrl.State().Draft {
		w.ctrl.SetQueryText(v)
	}
	return w, cmd
}
