// Package field evaluates single form fields. A Validator pairs a rule with
// its failure message; a ConfirmationValidator relates a field to a primary
// field it does not own. Both write their outcome into a State, which holds
// the raw value, its Validity, and the message shown next to the input.
package field
