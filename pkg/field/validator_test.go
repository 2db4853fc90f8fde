package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgate/pkg/rules"
)

func TestValidator_EvaluateMarksState(t *testing.T) {
	v := Validator{Field: "name", Rule: rules.Name, Message: "too short"}
	state := &State{Value: "Jo"}

	if v.Evaluate(state) {
		t.Fatalf("expected Jo to fail")
	}
	if diff := cmp.Diff(State{Value: "Jo", Validity: Invalid, Message: "too short"}, *state); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}

	state.Set("John")
	if !v.Evaluate(state) {
		t.Fatalf("expected John to pass")
	}
	if diff := cmp.Diff(State{Value: "John", Validity: Valid}, *state); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestValidator_EmptyValueIsDefined(t *testing.T) {
	v := Validator{Field: "email", Rule: rules.Email, Message: "bad email"}
	ok, msg := v.Check("")
	if ok || msg != "bad email" {
		t.Fatalf("expected failure with message, got ok=%v msg=%q", ok, msg)
	}
}

func TestValidator_NilRuleFails(t *testing.T) {
	v := Validator{Field: "x", Message: "no rule"}
	if ok, _ := v.Check("anything"); ok {
		t.Fatalf("expected validator without rule to fail")
	}
}

func TestState_SetDowngradesValid(t *testing.T) {
	state := State{Value: "John", Validity: Valid}
	state.Set("John")
	if state.Validity != Valid {
		t.Fatalf("expected unchanged value to keep validity")
	}
	state.Set("Jo")
	if state.Validity != Unvalidated {
		t.Fatalf("expected changed value to drop validity, got %s", state.Validity)
	}

	state = State{Value: "Jo", Validity: Invalid, Message: "too short"}
	state.Set("J")
	if state.Validity != Invalid || state.Message != "too short" {
		t.Fatalf("expected invalid state to keep its message until re-evaluated, got %+v", state)
	}
}

func TestValidity_Class(t *testing.T) {
	cases := map[Validity]string{
		Unvalidated: "",
		Valid:       "valid",
		Invalid:     "invalid",
	}
	for validity, expect := range cases {
		if got := validity.Class(); got != expect {
			t.Fatalf("%s.Class() = %q, want %q", validity, got, expect)
		}
	}
}

func TestConfirmationValidator(t *testing.T) {
	v := ConfirmationValidator{
		Field:                 "confirmation",
		Primary:               "password",
		PrimaryInvalidMessage: "fix the primary password first",
		MismatchMessage:       "passwords do not match",
	}

	cases := []struct {
		name     string
		password string
		confirm  string
		valid    bool
		message  string
		outcome  rules.Outcome
	}{
		{"match", "Abcdef1!", "Abcdef1!", true, "", rules.Match},
		{"primary invalid", "bad", "bad", false, "fix the primary password first", rules.PrimaryInvalid},
		{"mismatch", "Abcdef1!", "different", false, "passwords do not match", rules.Mismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, msg, outcome := v.Check(tc.password, tc.confirm)
			if ok != tc.valid || msg != tc.message || outcome != tc.outcome {
				t.Fatalf("got (%v, %q, %s), want (%v, %q, %s)", ok, msg, outcome, tc.valid, tc.message, tc.outcome)
			}

			primary := &State{Value: tc.password}
			state := &State{Value: tc.confirm}
			if got := v.Evaluate(primary, state); got != tc.valid {
				t.Fatalf("evaluate = %v, want %v", got, tc.valid)
			}
			if state.Message != tc.message {
				t.Fatalf("message = %q, want %q", state.Message, tc.message)
			}
			if primary.Validity != Unvalidated {
				t.Fatalf("confirmation must not mutate the primary field")
			}
		})
	}
}
