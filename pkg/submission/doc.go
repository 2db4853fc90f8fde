// Package submission defines what leaves the form once every field passes.
// The Registration payload carries name, email, and age; the password is
// validated for shape only and never leaves the form. Contract describes the
// payload as an OpenAPI schema so a transport layer can check it on its side,
// and Validate re-checks a payload with struct tags backed by the form rules.
package submission
