package rules

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Rule reports whether a raw field value satisfies a constraint.
type Rule func(value string) bool

const (
	// MinNameLength is the minimum rune count accepted for a name.
	MinNameLength = 3
	// MinPasswordLength is the minimum rune count accepted for a password.
	MinPasswordLength = 8
	// MinAge is the youngest age that passes the age rule.
	MinAge = 18
	// PasswordSpecials lists the characters that satisfy the special
	// character requirement of the password rule.
	PasswordSpecials = "!@#$%^&*"
	// EmailPattern is the local@domain.tld shape accepted by Email.
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)

var emailRe = regexp.MustCompile(EmailPattern)

// Name passes values with at least MinNameLength runes.
func Name(value string) bool {
	return utf8.RuneCountInString(value) >= MinNameLength
}

// Email passes values shaped like local@domain.tld where no part contains
// whitespace or '@'.
func Email(value string) bool {
	return emailRe.MatchString(value)
}

// Password passes values with at least MinPasswordLength runes that contain
// an ASCII digit, an ASCII letter, and one of PasswordSpecials.
func Password(value string) bool {
	if utf8.RuneCountInString(value) < MinPasswordLength {
		return false
	}

	var hasDigit, hasLetter, hasSpecial bool
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case strings.ContainsRune(PasswordSpecials, r):
			hasSpecial = true
		}
	}
	return hasDigit && hasLetter && hasSpecial
}

// Age passes non-empty values whose numeric prefix is at least MinAge.
// Trailing garbage after the digits is ignored, so "18abc" passes.
func Age(value string) bool {
	if value == "" {
		return false
	}
	n, ok := LeadingInt(value)
	return ok && n >= MinAge
}

var registry = map[string]Rule{
	"name":     Name,
	"email":    Email,
	"password": Password,
	"age":      Age,
}

// Lookup returns the single-value rule registered under name.
func Lookup(name string) (Rule, bool) {
	rule, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return rule, ok
}

// Names lists the registered rule names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
