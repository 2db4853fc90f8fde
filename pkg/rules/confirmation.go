package rules

// Outcome is the result of relating a password to its confirmation.
type Outcome int

const (
	// Match means the primary password is valid and the confirmation equals it.
	Match Outcome = iota
	// PrimaryInvalid means the primary password fails Password, whether or
	// not the confirmation matches it.
	PrimaryInvalid
	// Mismatch means the primary password is valid but the confirmation
	// differs from it.
	Mismatch
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case PrimaryInvalid:
		return "primary_invalid"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Confirmation relates a password to its re-entry.
func Confirmation(password, confirmation string) Outcome {
	if !Password(password) {
		return PrimaryInvalid
	}
	if confirmation != password {
		return Mismatch
	}
	return Match
}
