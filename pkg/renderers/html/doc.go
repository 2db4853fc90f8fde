// Package html renders a form snapshot as markup for a browser host. Each
// input carries the validity class ("", "valid", or "invalid"), each error
// slot carries its message, and the submit button is disabled while the form
// is gated. Password inputs are never echoed back.
package html
