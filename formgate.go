// Package formgate wires the registration form engine together: rules,
// field validators, the form aggregate, and the interaction controller. Most
// callers only need New plus a Presenter and Notifier for their host.
package formgate

import (
	"log/slog"

	"github.com/goliatone/go-formgate/pkg/controller"
	"github.com/goliatone/go-formgate/pkg/form"
	"github.com/goliatone/go-formgate/pkg/messages"
)

// Controller aliases controller.Controller for callers importing the root
// package only.
type Controller = controller.Controller

// Presenter aliases form.Presenter.
type Presenter = form.Presenter

// Notifier aliases controller.Notifier.
type Notifier = controller.Notifier

// Handoff aliases controller.Handoff.
type Handoff = controller.Handoff

type config struct {
	locale     string
	translator messages.Translator
	presenter  form.Presenter
	notifier   controller.Notifier
	handoff    controller.Handoff
	logger     *slog.Logger
}

// Option configures New.
type Option func(*config)

// WithLocale selects the message locale.
func WithLocale(locale string) Option {
	return func(c *config) {
		c.locale = locale
	}
}

// WithTranslator replaces the embedded message catalog.
func WithTranslator(t messages.Translator) Option {
	return func(c *config) {
		if t != nil {
			c.translator = t
		}
	}
}

// WithPresenter routes field states and the submit flag to p.
func WithPresenter(p Presenter) Option {
	return func(c *config) {
		c.presenter = p
	}
}

// WithNotifier routes notices to n.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithHandoff sets the receiver of accepted submissions.
func WithHandoff(fn Handoff) Option {
	return func(c *config) {
		c.handoff = fn
	}
}

// WithLogger sets the controller logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New builds a form with the five registration fields and returns the
// controller driving it. The baseline recompute has already run.
func New(options ...Option) *Controller {
	cfg := &config{
		locale:     messages.DefaultLocale,
		translator: messages.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	f := form.New(
		form.WithPresenter(cfg.presenter),
		form.WithMessages(messages.Resolve(cfg.translator, cfg.locale, nil)),
	)
	return controller.New(f,
		controller.WithNotifier(cfg.notifier),
		controller.WithHandoff(cfg.handoff),
		controller.WithLogger(cfg.logger),
	)
}
