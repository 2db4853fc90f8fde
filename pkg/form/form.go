package form

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formgate/pkg/field"
	"github.com/goliatone/go-formgate/pkg/messages"
	"github.com/goliatone/go-formgate/pkg/rules"
)

// Field identifiers.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldConfirmation = "confirmation"
	FieldAge          = "age"
)

// ErrUnknownField is returned when a caller addresses a field the form does
// not define.
var ErrUnknownField = errors.New("form: unknown field")

var order = [...]string{FieldName, FieldEmail, FieldPassword, FieldConfirmation, FieldAge}

// Fields returns the field identifiers in evaluation order.
func Fields() []string {
	return append([]string(nil), order[:]...)
}

// Snapshot is a copy of every field state plus the submission flag.
type Snapshot struct {
	Fields  map[string]field.State
	Enabled bool
}

// Option configures a Form.
type Option func(*Form)

// WithPresenter routes field and submission updates to p.
func WithPresenter(p Presenter) Option {
	return func(f *Form) {
		if p != nil {
			f.presenter = p
		}
	}
}

// WithMessages sets the message set used for field errors.
func WithMessages(set messages.Set) Option {
	return func(f *Form) {
		f.messages = set
	}
}

// Form is the registration form aggregate.
type Form struct {
	states       map[string]*field.State
	validators   map[string]field.Validator
	confirmation field.ConfirmationValidator
	presenter    Presenter
	messages     messages.Set
}

// New registers the five fields as Unvalidated. The submission flag starts
// disabled; call Recompute to publish the baseline.
func New(options ...Option) *Form {
	f := &Form{
		states:    make(map[string]*field.State, len(order)),
		presenter: nopPresenter{},
		messages:  messages.English(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	for _, name := range order {
		f.states[name] = &field.State{}
	}

	f.validators = map[string]field.Validator{
		FieldName:     {Field: FieldName, Rule: rules.Name, Message: f.messages.NameInvalid},
		FieldEmail:    {Field: FieldEmail, Rule: rules.Email, Message: f.messages.EmailInvalid},
		FieldPassword: {Field: FieldPassword, Rule: rules.Password, Message: f.messages.PasswordInvalid},
		FieldAge:      {Field: FieldAge, Rule: rules.Age, Message: f.messages.AgeInvalid},
	}
	f.confirmation = field.ConfirmationValidator{
		Field:                 FieldConfirmation,
		Primary:               FieldPassword,
		PrimaryInvalidMessage: f.messages.ConfirmationPrimaryInvalid,
		MismatchMessage:       f.messages.ConfirmationMismatch,
	}
	return f
}

// Messages returns the message set the form was built with.
func (f *Form) Messages() messages.Set {
	return f.messages
}

// SetValue stores a raw value for name. It does not evaluate anything, but a
// changed password withdraws a Valid confirmation until the next Recompute.
func (f *Form) SetValue(name, value string) error {
	state, ok := f.states[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if state.Value == value {
		return nil
	}
	state.Set(value)
	if name == f.confirmation.Primary {
		f.states[f.confirmation.Field].Invalidate()
	}
	return nil
}

// Recompute evaluates every field in order, then publishes and returns the
// aggregate submission flag.
func (f *Form) Recompute() bool {
	enabled := true
	for _, name := range order {
		state := f.states[name]
		var ok bool
		if name == FieldConfirmation {
			ok = f.confirmation.Evaluate(f.states[f.confirmation.Primary], state)
		} else {
			ok = f.validators[name].Evaluate(state)
		}
		enabled = enabled && ok
		f.presenter.SetFieldState(name, *state)
	}
	f.presenter.SetSubmitEnabled(enabled)
	return enabled
}

// Reset clears every field to Unvalidated and disables submission. Rules are
// not evaluated.
func (f *Form) Reset() {
	for _, name := range order {
		state := f.states[name]
		state.Clear()
		f.presenter.SetFieldState(name, *state)
	}
	f.presenter.SetSubmitEnabled(false)
}

// Enabled derives the submission flag from the current states: true only
// when every field is Valid.
func (f *Form) Enabled() bool {
	for _, name := range order {
		if f.states[name].Validity != field.Valid {
			return false
		}
	}
	return true
}

// State returns a copy of the named field state.
func (f *Form) State(name string) (field.State, bool) {
	state, ok := f.states[name]
	if !ok {
		return field.State{}, false
	}
	return *state, true
}

// Values returns the raw values keyed by field identifier.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(order))
	for _, name := range order {
		out[name] = f.states[name].Value
	}
	return out
}

// Snapshot copies the current states and submission flag.
func (f *Form) Snapshot() Snapshot {
	snap := Snapshot{
		Fields:  make(map[string]field.State, len(order)),
		Enabled: f.Enabled(),
	}
	for _, name := range order {
		snap.Fields[name] = *f.states[name]
	}
	return snap
}
