package tui

import (
	"io"
	"log/slog"
)

// Theme captures optional formatting hints the session applies when printing
// field states and notices. Keep minimal to avoid coupling session logic to
// ANSI specifics.
type Theme struct {
	ValidPrefix   string
	InvalidPrefix string
	PendingPrefix string
	InfoPrefix    string
	ErrorPrefix   string
}

// DefaultTheme uses plain ASCII markers.
func DefaultTheme() Theme {
	return Theme{
		ValidPrefix:   "[ok]",
		InvalidPrefix: "[!!]",
		PendingPrefix: "[  ]",
		InfoPrefix:    "->",
		ErrorPrefix:   "xx",
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sends status lines from the default survey driver to w. Prompts
// still read from and draw on the terminal. It replaces any driver set earlier
// in the option list.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.driver = newSurveyDriver(w)
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLogger sets the logger used for session traces.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLabels overrides the prompt labels keyed by field identifier.
func WithLabels(labels map[string]string) Option {
	return func(s *Session) {
		for name, label := range labels {
			s.labels[name] = label
		}
	}
}
