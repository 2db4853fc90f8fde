package form

import "github.com/goliatone/go-formgate/pkg/field"

// Presenter receives the visible side effects of the form: one call per field
// as it is evaluated or cleared, and one call with the submission flag once
// every field has been handled.
type Presenter interface {
	SetFieldState(name string, state field.State)
	SetSubmitEnabled(enabled bool)
}

// PresenterFuncs adapts plain functions into a Presenter. Nil members are
// skipped.
type PresenterFuncs struct {
	FieldState    func(name string, state field.State)
	SubmitEnabled func(enabled bool)
}

// SetFieldState delegates to FieldState.
func (p PresenterFuncs) SetFieldState(name string, state field.State) {
	if p.FieldState != nil {
		p.FieldState(name, state)
	}
}

// SetSubmitEnabled delegates to SubmitEnabled.
func (p PresenterFuncs) SetSubmitEnabled(enabled bool) {
	if p.SubmitEnabled != nil {
		p.SubmitEnabled(enabled)
	}
}

type nopPresenter struct{}

func (nopPresenter) SetFieldState(string, field.State) {}
func (nopPresenter) SetSubmitEnabled(bool)             {}
