package tui

import (
	"github.com/goliatone/go-formgate/pkg/controller"
	"github.com/goliatone/go-formgate/pkg/field"
	"github.com/goliatone/go-formgate/pkg/form"
)

// View mirrors what a document would show: the latest state of every field,
// the submit control flag, and notices waiting to be printed. It implements
// form.Presenter and controller.Notifier.
type View struct {
	states  map[string]field.State
	enabled bool
	pending []controller.Notice
}

var (
	_ form.Presenter      = (*View)(nil)
	_ controller.Notifier = (*View)(nil)
)

// NewView returns an empty view with every field unmarked.
func NewView() *View {
	states := make(map[string]field.State)
	for _, name := range form.Fields() {
		states[name] = field.State{}
	}
	return &View{states: states}
}

// SetFieldState implements form.Presenter.
func (v *View) SetFieldState(name string, state field.State) {
	v.states[name] = state
}

// SetSubmitEnabled implements form.Presenter.
func (v *View) SetSubmitEnabled(enabled bool) {
	v.enabled = enabled
}

// Notify implements controller.Notifier.
func (v *View) Notify(n controller.Notice) {
	v.pending = append(v.pending, n)
}

// FieldState returns the last state pushed for name.
func (v *View) FieldState(name string) field.State {
	return v.states[name]
}

// SubmitEnabled reports the submit control flag.
func (v *View) SubmitEnabled() bool {
	return v.enabled
}

// Drain returns and clears the pending notices.
func (v *View) Drain() []controller.Notice {
	out := v.pending
	v.pending = nil
	return out
}
