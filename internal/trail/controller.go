// Package trail holds the learning-session workflow shared by the TUI and
// the CLI: which question is active, what the learner typed, and what the
// backend answered.
package trail

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/sqltrail/sqltrail/internal/api"
)

// ErrWrongMode is returned when an operation does not apply to the
// controller's mode.
var ErrWrongMode = errors.New("operation not available in this mode")

// Backend is the subset of the API client the controller needs.
type Backend interface {
	FetchQuestion(ctx context.Context) (*api.Question, error)
	FetchQuestions(ctx context.Context, slug string) ([]api.Question, error)
	Validate(ctx context.Context, req api.ValidateRequest) (*api.Outcome, error)
}

// State is a snapshot of everything a view needs to render.
type State struct {
	Mode     Mode
	Current  *api.Question
	Prompt   string
	Draft    string
	Status   string
	Busy     bool
	Verdict  *bool
	Learner  *api.TableResult
	Expected *api.TableResult

	LearnerFooter  string
	ExpectedFooter string

	// Questions is the loaded track set, in backend order.
	Questions       []api.Question
	LoadedTrackSlug string
	TrackLoading    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for discarded completions.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller owns the session state. All methods except Perform must be
// called from a single goroutine; Perform only talks to the backend and
// may run anywhere.
type Controller struct {
	// id distinguishes controllers so a completion reaching the wrong one
	// is dropped.
	id      uint64
	mode    Mode
	backend Backend
	logger  *zap.Logger

	state State
	seq   uint64
	// latest holds the newest ticket sequence issued per operation.
	latest map[Op]uint64
	// epoch advances whenever the active question changes.
	epoch uint64
}

var controllerIDs atomic.Uint64

// New creates a controller for mode backed by backend.
func New(mode Mode, backend Backend, opts ...Option) *Controller {
	c := &Controller{
		id:      controllerIDs.Add(1),
		mode:    mode,
		backend: backend,
		logger:  zap.NewNop(),
		latest:  make(map[Op]uint64),
		state: State{
			Mode:   mode,
			Prompt: PromptInitial,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the controller's mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// NeedsTrackLoad reports whether the track set must be (re)fetched: true in
// track mode when the slug has not been loaded and no load is running.
func (c *Controller) NeedsTrackLoad() bool {
	return c.mode.IsTrack() &&
		c.state.LoadedTrackSlug != c.mode.Slug &&
		!c.state.TrackLoading
}

// SetQueryText replaces the draft query.
func (c *Controller) SetQueryText(text string) {
	c.state.Draft = text
}

// SelectQuestion activates the question with id from the loaded set. It
// reports false, and sets a not-found status, when the id is unknown.
func (c *Controller) SelectQuestion(id int) bool {
	i := slices.IndexFunc(c.state.Questions, func(q api.Question) bool {
		return q.ID == id
	})
	if i < 0 {
		c.state.Status = StatusNotFound
		return false
	}
	q := c.state.Questions[i]
	c.activate(&q)
	c.state.Status = ""
	return true
}

// SetQuestion activates q without consulting the loaded set. It serves
// callers that already know the question, such as the validate command.
func (c *Controller) SetQuestion(q api.Question) {
	c.activate(&q)
	c.state.Status = ""
}

// SelectNext activates the question after the current one in the loaded
// set, wrapping around. It reports false when the set is empty.
func (c *Controller) SelectNext() bool {
	qs := c.state.Questions
	if len(qs) == 0 {
		return false
	}
	next := 0
	if c.state.Current != nil {
		i := slices.IndexFunc(qs, func(q api.Question) bool {
			return q.ID == c.state.Current.ID
		})
		next = (i + 1) % len(qs)
	}
	return c.SelectQuestion(qs[next].ID)
}

// LoadNextQuestion fetches a fresh question in single mode. The returned
// error is informational; it is already reflected in the status.
func (c *Controller) LoadNextQuestion(ctx context.Context) error {
	t, err := c.BeginLoadQuestion()
	if err != nil {
		return err
	}
	done := c.Perform(ctx, t)
	c.Finish(done)
	return done.Err
}

// LoadTrack fetches the question set for the track slug. It is a no-op
// when the set is already loaded or loading.
func (c *Controller) LoadTrack(ctx context.Context) error {
	t, ok := c.BeginLoadTrack()
	if !ok {
		return nil
	}
	done := c.Perform(ctx, t)
	c.Finish(done)
	return done.Err
}

// SubmitQuery sends the draft for the current question to the backend.
func (c *Controller) SubmitQuery(ctx context.Context) error {
	done := c.Perform(ctx, c.BeginSubmit())
	c.Finish(done)
	return done.Err
}

// activate makes q the current question and resets everything tied to the
// previous one. Pending submissions for the old question become stale.
func (c *Controller) activate(q *api.Question) {
	c.epoch++
	c.state.Current = q
	if q != nil {
		c.state.Prompt = q.Prompt
	}
	c.state.Draft = ""
	c.state.Busy = false
	c.clearResults()
}

func (c *Controller) clearResults() {
	c.state.Verdict = nil
	c.state.Learner = nil
	c.state.Expected = nil
	c.state.LearnerFooter = ""
	c.state.ExpectedFooter = ""
}
