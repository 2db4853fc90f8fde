// Package tui hosts the registration form in a terminal using survey prompts.
// The session presents a menu of field edits plus submit, reset, and quit,
// turns each choice into a controller event, and prints the resulting field
// states and notices. Prompting goes through the PromptDriver interface so
// tests can script a session without a terminal.
package tui
