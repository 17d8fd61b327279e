// Package field models a single form-bound text input: its descriptor, the
// binding to the owning form state, the error feedback, and the pure View
// every renderer draws from.
//
// A field has exactly two render modes, selected by Feedback on each call to
// Build. Nothing is remembered between renders.
package field
