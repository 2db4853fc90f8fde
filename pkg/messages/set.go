package messages

import (
	"fmt"
	"strings"
	"sync"
)

// MissingTranslationHandler returns the string to show when a key cannot be
// translated. err carries the translator failure, if any.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Set is the resolved message set for one locale. Field validators and the
// controller read their strings from it so no component looks up keys at
// evaluation time.
type Set struct {
	Locale                     string
	NameInvalid                string
	EmailInvalid               string
	PasswordInvalid            string
	ConfirmationPrimaryInvalid string
	ConfirmationMismatch       string
	AgeInvalid                 string
	SubmitBlocked              string
	SubmitSuccess              string

	submitFailed string
}

// SubmitFailed formats the failure notice for a hand-off error.
func (s Set) SubmitFailed(err error) string {
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}
	if strings.Contains(s.submitFailed, "%") {
		return fmt.Sprintf(s.submitFailed, reason)
	}
	if s.submitFailed == "" {
		return reason
	}
	return s.submitFailed + ": " + reason
}

// Resolve translates every key the form needs. Missing entries are routed
// through onMissing; when onMissing is nil the embedded English catalog is
// consulted before falling back to the key itself.
func Resolve(t Translator, locale string, onMissing MissingTranslationHandler) Set {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	tr := func(key string) string {
		return translate(t, locale, key, onMissing)
	}

	return Set{
		Locale:                     locale,
		NameInvalid:                tr(KeyNameInvalid),
		EmailInvalid:               tr(KeyEmailInvalid),
		PasswordInvalid:            tr(KeyPasswordInvalid),
		ConfirmationPrimaryInvalid: tr(KeyConfirmationPrimaryInvalid),
		ConfirmationMismatch:       tr(KeyConfirmationMismatch),
		AgeInvalid:                 tr(KeyAgeInvalid),
		SubmitBlocked:              tr(KeySubmitBlocked),
		SubmitSuccess:              tr(KeySubmitSuccess),
		submitFailed:               tr(KeySubmitFailed),
	}
}

// English returns the embedded English message set.
func English() Set {
	return english()
}

var english = sync.OnceValue(func() Set {
	return Resolve(Default(), DefaultLocale, nil)
})

func translate(t Translator, locale, key string, onMissing MissingTranslationHandler) string {
	if t == nil {
		return onMissing(locale, key, nil, ErrMissingTranslator)
	}
	msg, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(msg) != "" {
		return msg
	}
	return onMissing(locale, key, nil, err)
}

func missingTranslationDefault(_ string, key string, _ []any, _ error) string {
	if msg, err := Default().Translate(DefaultLocale, key); err == nil {
		return msg
	}
	return key
}
