package field

// Validity classifies a field. The zero value is Unvalidated.
type Validity int

const (
	// Unvalidated marks a field that has not been evaluated since it was
	// registered or reset.
	Unvalidated Validity = iota
	// Valid marks a field whose rule held for its value at the last
	// evaluation.
	Valid
	// Invalid marks a field whose rule failed at the last evaluation.
	Invalid
)

// Class returns the visual class hosts attach to the input: "" while
// unvalidated, "valid" or "invalid" afterwards.
func (v Validity) Class() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return ""
	}
}

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unvalidated"
	}
}

// State is the per-field record: the raw value plus the outcome of its last
// evaluation.
type State struct {
	Value    string
	Validity Validity
	Message  string
}

// Set stores a new raw value. A previously valid outcome no longer describes
// the value, so the field drops back to Unvalidated until it is evaluated.
func (s *State) Set(value string) {
	if s.Value == value {
		return
	}
	s.Value = value
	s.Invalidate()
}

// Invalidate drops a Valid outcome back to Unvalidated. Dependent fields call
// it when a value they are checked against changes.
func (s *State) Invalidate() {
	if s.Validity == Valid {
		s.Validity = Unvalidated
		s.Message = ""
	}
}

// Clear returns the field to its registration state.
func (s *State) Clear() {
	*s = State{}
}

func (s *State) mark(ok bool, message string) bool {
	if ok {
		s.Validity = Valid
		s.Message = ""
		return true
	}
	s.Validity = Invalid
	s.Message = message
	return false
}
