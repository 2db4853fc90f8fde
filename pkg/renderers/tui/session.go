package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formgate/pkg/controller"
	"github.com/goliatone/go-formgate/pkg/field"
	"github.com/goliatone/go-formgate/pkg/form"
)

type action int

const (
	actionEdit action = iota
	actionSubmit
	actionReset
	actionQuit
)

type menuEntry struct {
	label  string
	action action
	field  string
}

// Session runs the registration form in a terminal. Each menu choice becomes
// one controller event; after every event the session prints the field
// states and any notices the controller raised.
type Session struct {
	ctrl   *controller.Controller
	view   *View
	driver PromptDriver
	theme  Theme
	labels map[string]string
	logger *slog.Logger
}

// New builds a session around ctrl. view must be the presenter and notifier
// wired into ctrl and its form.
func New(ctrl *controller.Controller, view *View, options ...Option) *Session {
	s := &Session{
		ctrl:   ctrl,
		view:   view,
		driver: newSurveyDriver(nil),
		theme:  DefaultTheme(),
		labels: map[string]string{
			form.FieldName:         "Name",
			form.FieldEmail:        "Email",
			form.FieldPassword:     "Password",
			form.FieldConfirmation: "Confirm password",
			form.FieldAge:          "Age",
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Run loops until the user quits, aborts, or ctx is cancelled. Quitting
// returns nil; an interrupt returns ErrAborted.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if s.ctrl == nil {
		return ErrNoController
	}
	if s.view == nil {
		return ErrNoView
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		menu := s.menu()
		labels := make([]string, len(menu))
		for i, entry := range menu {
			labels[i] = entry.label
		}

		idx, err := s.driver.Select(ctx, SelectConfig{
			Message: "Registration",
			Options: labels,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(menu) {
			continue
		}

		entry := menu[idx]
		s.logger.Debug("menu selection", "action", entry.label, "phase", s.ctrl.Phase().String())

		switch entry.action {
		case actionQuit:
			return nil
		case actionReset:
			s.ctrl.Reset()
		case actionSubmit:
			s.ctrl.Submit()
		case actionEdit:
			if err := s.edit(ctx, entry.field); err != nil {
				return err
			}
		}

		if err := s.flush(ctx); err != nil {
			return err
		}
	}
}

func (s *Session) edit(ctx context.Context, name string) error {
	cfg := InputConfig{Message: s.labels[name]}

	var (
		value string
		err   error
	)
	if isSecret(name) {
		value, err = s.driver.Password(ctx, cfg)
	} else {
		cfg.Default = s.view.FieldState(name).Value
		value, err = s.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}
	return s.ctrl.Change(name, value)
}

func (s *Session) flush(ctx context.Context) error {
	for _, name := range form.Fields() {
		if err := s.driver.Info(ctx, s.fieldLine(name, s.view.FieldState(name))); err != nil {
			return err
		}
	}
	for _, notice := range s.view.Drain() {
		prefix := s.theme.InfoPrefix
		if notice.Kind != controller.NoticeSuccess {
			prefix = s.theme.ErrorPrefix
		}
		if err := s.driver.Info(ctx, joinNonEmpty(prefix, notice.Message)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) fieldLine(name string, state field.State) string {
	display := state.Value
	if isSecret(name) && display != "" {
		display = strings.Repeat("*", len([]rune(display)))
	}

	switch state.Validity {
	case field.Valid:
		return joinNonEmpty(s.theme.ValidPrefix, fmt.Sprintf("%s: %s", s.labels[name], display))
	case field.Invalid:
		return joinNonEmpty(s.theme.InvalidPrefix, fmt.Sprintf("%s: %s (%s)", s.labels[name], display, state.Message))
	default:
		return joinNonEmpty(s.theme.PendingPrefix, s.labels[name]+":")
	}
}

func (s *Session) menu() []menuEntry {
	entries := make([]menuEntry, 0, len(form.Fields())+3)
	for _, name := range form.Fields() {
		entries = append(entries, menuEntry{
			label:  "Edit " + strings.ToLower(s.labels[name]),
			action: actionEdit,
			field:  name,
		})
	}
	submit := "Submit"
	if !s.view.SubmitEnabled() {
		submit = "Submit (disabled)"
	}
	entries = append(entries,
		menuEntry{label: submit, action: actionSubmit},
		menuEntry{label: "Reset", action: actionReset},
		menuEntry{label: "Quit", action: actionQuit},
	)
	return entries
}

func isSecret(name string) bool {
	return name == form.FieldPassword || name == form.FieldConfirmation
}

func joinNonEmpty(prefix, text string) string {
	if prefix == "" {
		return text
	}
	return prefix + " " + text
}
