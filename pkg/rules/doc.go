// Package rules holds the pure predicates behind the registration form. Every
// rule is total over its string input: empty, malformed, or non-ASCII values
// all produce a defined answer and nothing here returns an error or panics.
// The confirmation relation is the only rule over two values and reports one
// of three outcomes instead of a boolean.
package rules
