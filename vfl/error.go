// Package vfl implements a single-pass recursive-descent scanner for the
// Visual Format Language, a terse textual DSL for declaring layout
// constraints (e.g. "H:|-[view1(>=50)]-8-[view2(==view1)]-|"). It emits
// plain ConstraintRecord values; mapping those onto a cassowary.Solver is
// left entirely to the caller, so this package has no dependency on the
// solver package itself.
package vfl

import "fmt"

// ErrorKind tags the six ways a line of VFL can fail to parse, matching
// the GTK original's GTK_CONSTRAINT_VFL_PARSER_ERROR_* enum one for one.
type ErrorKind uint8

const (
	InvalidSymbol ErrorKind = iota
	InvalidAttribute
	InvalidView
	InvalidMetric
	InvalidPriority
	InvalidRelation
)

var errorKindNames = [...]string{
	InvalidSymbol:    "invalid symbol",
	InvalidAttribute: "invalid attribute",
	InvalidView:      "invalid view",
	InvalidMetric:    "invalid metric",
	InvalidPriority:  "invalid priority",
	InvalidRelation:  "invalid relation",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorKindNames) {
		return "unknown"
	}
	return errorKindNames[k]
}

// Error is returned by ParseLine. Offset is a 0-based byte offset into
// the line that was passed to ParseLine; Range is the length in bytes of
// the offending token (0 for a single-character error). ParseLine never
// sets Cause; when a caller sets it, Error and Unwrap include it.
type Error struct {
	Kind    ErrorKind
	Offset  int
	Range   int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vfl: %s at offset %d: %s: %v", e.Kind, e.Offset, e.Message, e.Cause)
	}
	return fmt.Sprintf("vfl: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }
