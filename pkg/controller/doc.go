// Package controller maps discrete form events (field changes, reset, and
// submit) onto the registration form. It owns the Pristine → Editing →
// SubmitAttempted cycle and the decision whether a submit attempt is allowed.
//
// Every transition is a synchronous reaction to one event. A Controller is
// not safe for concurrent use.
package controller
