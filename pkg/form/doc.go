// Package form holds the registration form: five field states, the
// validators bound to them, and the aggregate that gates submission.
//
// Recompute evaluates every field in a fixed order (name, email, password,
// confirmation, age) without short-circuiting so all visible states stay
// current, then publishes the AND of the outcomes to the Presenter. A Form is
// not safe for concurrent use; hosts drive it from a single goroutine.
package form
