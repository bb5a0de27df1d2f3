package types

import (
	"fmt"
)

// StructuralError reports a required field that is missing, or a field whose
// JSON value has the wrong shape. Field is the path into the wire object.
type StructuralError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("metadata: field %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// ColorFormatError reports a background_color value that does not decode to
// exactly three bytes of bare hex.
type ColorFormatError struct {
	Raw string
}

func (e *ColorFormatError) Error() string {
	return fmt.Sprintf("metadata: malformed color %q: expected 6 hex digits", e.Raw)
}

// UnrecognizedAttributeShapeError reports an attributes element that matches
// neither the textual nor the numerical variant.
type UnrecognizedAttributeShapeError struct {
	Index int
}

func (e *UnrecognizedAttributeShapeError) Error() string {
	return fmt.Sprintf("metadata: attributes[%d]: unrecognized attribute shape", e.Index)
}

// UnknownEnumTokenError reports a display_type token outside the closed set.
type UnknownEnumTokenError struct {
	Token string
}

func (e *UnknownEnumTokenError) Error() string {
	return fmt.Sprintf("metadata: unknown display_type %q", e.Token)
}
