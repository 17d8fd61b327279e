// Package form holds the form-state handle that fields bind to. A State owns
// the values, touched and dirty flags, and validation errors of every field
// in a Schema, and hands out per-field bindings through Register.
//
// The State is the only writer of its maps; renderers reach it exclusively
// through the callbacks in field.Binding.
package form
