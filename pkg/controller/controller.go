package controller

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-formgate/pkg/form"
	"github.com/goliatone/go-formgate/pkg/submission"
)

// Phase is the controller state.
type Phase int

const (
	// Pristine is the state at startup and after every reset.
	Pristine Phase = iota
	// Editing is entered on the first field change.
	Editing
	// SubmitAttempted is held while an accepted submission is handed off.
	SubmitAttempted
)

func (p Phase) String() string {
	switch p {
	case Pristine:
		return "pristine"
	case Editing:
		return "editing"
	case SubmitAttempted:
		return "submit_attempted"
	default:
		return "unknown"
	}
}

// NoticeKind classifies a user-facing notice.
type NoticeKind int

const (
	// NoticeBlocked is raised when submit is triggered while disabled.
	NoticeBlocked NoticeKind = iota
	// NoticeSuccess is raised after an accepted submission.
	NoticeSuccess
	// NoticeFailure is raised when the hand-off rejects a submission.
	NoticeFailure
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeBlocked:
		return "blocked"
	case NoticeSuccess:
		return "success"
	case NoticeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Notice is a message for the user that does not belong to a single field.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Notifier surfaces notices to the user.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(Notice)

// Notify calls fn.
func (fn NotifierFunc) Notify(n Notice) {
	if fn != nil {
		fn(n)
	}
}

// Handoff receives the payload of an accepted submission. Nothing is
// transmitted by default; hosts plug in their own transport here.
type Handoff func(submission.Registration) error

// Result describes the outcome of a submit trigger.
type Result struct {
	Accepted     bool
	Registration submission.Registration
	Err          error
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier routes notices to n.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithHandoff sets the function that receives accepted submissions.
func WithHandoff(fn Handoff) Option {
	return func(c *Controller) {
		if fn != nil {
			c.handoff = fn
		}
	}
}

// WithLogger sets the logger used for transition traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller drives a form.Form from discrete events.
type Controller struct {
	form     *form.Form
	phase    Phase
	notifier Notifier
	handoff  Handoff
	logger   *slog.Logger
}

// New wraps f and runs one recompute so the presenter starts from a disabled
// submit control.
func New(f *form.Form, options ...Option) *Controller {
	if f == nil {
		f = form.New()
	}
	c := &Controller{
		form:     f,
		phase:    Pristine,
		notifier: NotifierFunc(nil),
		handoff:  acknowledge,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	enabled := c.form.Recompute()
	c.logger.Debug("form baseline established", "enabled", enabled)
	return c
}

// Form returns the wrapped form.
func (c *Controller) Form() *form.Form {
	return c.form
}

// Phase returns the current controller state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Change stores value on the named field and recomputes the form.
func (c *Controller) Change(name, value string) error {
	if err := c.form.SetValue(name, value); err != nil {
		return err
	}
	c.transition(Editing)
	enabled := c.form.Recompute()
	c.logger.Debug("field changed", "field", name, "enabled", enabled)
	return nil
}

// Reset clears the form without evaluating any rule.
func (c *Controller) Reset() {
	c.form.Reset()
	c.transition(Pristine)
}

// Submit attempts a submission. While any field is invalid it raises the
// blocking notice and leaves every state untouched.
func (c *Controller) Submit() Result {
	msgs := c.form.Messages()
	if !c.form.Enabled() {
		c.logger.Debug("submit blocked", "phase", c.phase.String())
		c.notifier.Notify(Notice{Kind: NoticeBlocked, Message: msgs.SubmitBlocked})
		return Result{}
	}

	c.transition(SubmitAttempted)
	reg := submission.FromValues(c.form.Values())

	if err := c.handoff(reg); err != nil {
		c.logger.Warn("submission hand-off failed", "error", err)
		c.notifier.Notify(Notice{Kind: NoticeFailure, Message: msgs.SubmitFailed(err)})
		c.transition(Editing)
		return Result{Registration: reg, Err: err}
	}

	c.notifier.Notify(Notice{Kind: NoticeSuccess, Message: msgs.SubmitSuccess})
	c.Reset()
	return Result{Accepted: true, Registration: reg}
}

func (c *Controller) transition(next Phase) {
	if c.phase == next {
		return
	}
	c.logger.Debug("controller transition", "from", c.phase.String(), "to", next.String())
	c.phase = next
}

func acknowledge(submission.Registration) error {
	return nil
}
