// Package messages resolves the fixed set of user-facing strings shown by the
// form: one error per field, the two confirmation errors, and the submit
// notices. Strings live in a YAML catalog keyed by locale; an embedded catalog
// ships English and Spanish renditions and callers may load their own.
package messages
