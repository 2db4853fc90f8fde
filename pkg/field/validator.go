package field

import "github.com/goliatone/go-formgate/pkg/rules"

// Validator binds a rule and its failure message to one field.
type Validator struct {
	Field   string
	Rule    rules.Rule
	Message string
}

// Check evaluates value without touching any state. The message is empty
// when the value passes.
func (v Validator) Check(value string) (bool, string) {
	if v.Rule != nil && v.Rule(value) {
		return true, ""
	}
	return false, v.Message
}

// Evaluate checks state.Value and records the outcome on state.
func (v Validator) Evaluate(state *State) bool {
	if state == nil {
		return false
	}
	ok, msg := v.Check(state.Value)
	return state.mark(ok, msg)
}

// ConfirmationValidator validates a re-entered password against the primary
// password field. It only reads the primary state.
type ConfirmationValidator struct {
	Field                 string
	Primary               string
	PrimaryInvalidMessage string
	MismatchMessage       string
}

// Check relates password and confirmation and maps the outcome to a message.
func (v ConfirmationValidator) Check(password, confirmation string) (bool, string, rules.Outcome) {
	outcome := rules.Confirmation(password, confirmation)
	switch outcome {
	case rules.Match:
		return true, "", outcome
	case rules.PrimaryInvalid:
		return false, v.PrimaryInvalidMessage, outcome
	default:
		return false, v.MismatchMessage, outcome
	}
}

// Evaluate checks state against primary and records the outcome on state.
func (v ConfirmationValidator) Evaluate(primary, state *State) bool {
	if state == nil {
		return false
	}
	var password string
	if primary != nil {
		password = primary.Value
	}
	ok, msg, _ := v.Check(password, state.Value)
	return state.mark(ok, msg)
}
