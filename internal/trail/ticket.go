package trail

import (
	"context"

	"go.uber.org/zap"

	"github.com/sqltrail/sqltrail/internal/api"
)

// Op identifies a network operation.
type Op int

const (
	OpLoadQuestion Op = iota + 1
	OpLoadTrack
	OpSubmit
)

func (o Op) String() string {
	switch o {
	case OpLoadQuestion:
		return "load_question"
	case OpLoadTrack:
		return "load_track"
	case OpSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Ticket describes one started operation. It carries everything Perform
// needs so the network call never reads controller state.
type Ticket struct {
	// Owner is the id of the controller that issued the ticket.
	Owner uint64
	Op    Op
	Seq   uint64
	// Epoch is the question epoch when the ticket was issued.
	Epoch   uint64
	Slug    string
	Request api.ValidateRequest
}

// Completion is the result of performing a ticket.
type Completion struct {
	Ticket    Ticket
	Question  *api.Question
	Questions []api.Question
	Outcome   *api.Outcome
	Err       error
}

func (c *Controller) issue(op Op) Ticket {
	c.seq++
	c.latest[op] = c.seq
	return Ticket{Owner: c.id, Op: op, Seq: c.seq, Epoch: c.epoch, Slug: c.mode.Slug}
}

// BeginLoadQuestion starts fetching a new question. Single mode only.
func (c *Controller) BeginLoadQuestion() (Ticket, error) {
	if c.mode.IsTrack() {
		return Ticket{}, ErrWrongMode
	}
	return c.issue(OpLoadQuestion), nil
}

// BeginLoadTrack starts fetching the track set. It reports false when no
// load is needed.
func (c *Controller) BeginLoadTrack() (Ticket, bool) {
	if !c.NeedsTrackLoad() {
		return Ticket{}, false
	}
	c.state.TrackLoading = true
	c.state.Busy = true
	c.state.Status = statusLoadingTrack(c.mode.Slug)
	return c.issue(OpLoadTrack), true
}

// BeginSubmit starts validating the draft against the current question.
// Previous results are cleared immediately.
func (c *Controller) BeginSubmit() Ticket {
	c.state.Busy = true
	c.state.Status = ""
	c.clearResults()

	t := c.issue(OpSubmit)
	req := api.ValidateRequest{StudentSQL: c.state.Draft}
	if c.state.Current != nil {
		id := c.state.Current.ID
		req.QuestionID = &id
	}
	if c.mode.IsTrack() {
		req.Slug = c.mode.Slug
	}
	t.Request = req
	return t
}

// Perform runs the network call for t. It does not touch controller state.
func (c *Controller) Perform(ctx context.Context, t Ticket) Completion {
	done := Completion{Ticket: t}
	switch t.Op {
	case OpLoadQuestion:
		done.Question, done.Err = c.backend.FetchQuestion(ctx)
	case OpLoadTrack:
		done.Questions, done.Err = c.backend.FetchQuestions(ctx, t.Slug)
	case OpSubmit:
		done.Outcome, done.Err = c.backend.Validate(ctx, t.Request)
	}
	return done
}

// Finish applies a completion. It reports false when the completion was
// stale and was discarded: it belongs to another controller or has been
// superseded, or it is a submission for a question no longer active.
func (c *Controller) Finish(done Completion) bool {
	t := done.Ticket
	if t.Owner != c.id {
		c.logger.Debug("discarding foreign completion",
			zap.Stringer("op", t.Op),
			zap.Uint64("owner", t.Owner),
			zap.Uint64("controller", c.id))
		return false
	}
	if c.latest[t.Op] != t.Seq || (t.Op == OpSubmit && t.Epoch != c.epoch) {
		c.logger.Debug("discarding stale completion",
			zap.Stringer("op", t.Op),
			zap.Uint64("seq", t.Seq),
			zap.Uint64("latest", c.latest[t.Op]),
			zap.Uint64("epoch", t.Epoch),
			zap.Uint64("current_epoch", c.epoch))
		return false
	}

	switch t.Op {
	case OpLoadQuestion:
		c.finishLoadQuestion(done)
	case OpLoadTrack:
		c.finishLoadTrack(done)
	case OpSubmit:
		c.finishSubmit(done)
	}
	return true
}

func (c *Controller) finishLoadQuestion(done Completion) {
	if done.Err != nil {
		c.state.Status = MessageFor(done.Err, FallbackLoadQuestion)
		return
	}
	c.activate(done.Question)
	c.state.Status = ""
}

func (c *Controller) finishLoadTrack(done Completion) {
	c.state.TrackLoading = false
	c.state.Busy = false
	if done.Err != nil {
		msg := MessageFor(done.Err, FallbackLoadTrack)
		c.state.Status = msg
		c.state.Prompt = msg
		return
	}

	c.state.LoadedTrackSlug = done.Ticket.Slug
	if len(done.Questions) == 0 {
		c.state.Questions = []api.Question{}
		c.activate(nil)
		c.state.Prompt = PromptNoQuestions
		c.state.Status = StatusNoQuestions
		return
	}
	c.state.Questions = done.Questions
	first := done.Questions[0]
	c.activate(&first)
	c.state.Status = statusTrackLoaded(done.Ticket.Slug, len(done.Questions))
}

func (c *Controller) finishSubmit(done Completion) {
	c.state.Busy = false
	if done.Err != nil {
		c.state.Status = MessageFor(done.Err, FallbackValidate)
		return
	}
	out := done.Outcome
	c.state.Status = firstNonEmpty(out.Message, out.Error, StatusProcessed)
	c.state.Verdict = out.Valid
	c.state.Learner = out.Learner
	c.state.Expected = out.Expected
	c.state.LearnerFooter = Footer(out.Learner)
	c.state.ExpectedFooter = Footer(out.Expected)
}
