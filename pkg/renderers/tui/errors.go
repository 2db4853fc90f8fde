package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoController is returned when a session is started without a
	// controller.
	ErrNoController = errors.New("tui: controller is nil")
	// ErrNoView is returned when a session is started without the view wired
	// into its controller.
	ErrNoView = errors.New("tui: view is nil")
)
