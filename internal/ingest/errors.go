package ingest

import (
	"errors"
	"fmt"
)

// ParseError reports a record that does not match the fixed
// three-field grammar.
type ParseError struct {
	// Line is the 1-based line number in the original input,
	// counting blank lines.
	Line int

	// Record is the offending line, verbatim.
	Record string

	// Fields is the number of fields the ", " split produced.
	Fields int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d: %q",
		e.Line, fieldsPerRecord, e.Fields, e.Record)
}

// NewParseError creates a ParseError for a malformed record.
func NewParseError(line int, record string, fields int) *ParseError {
	return &ParseError{Line: line, Record: record, Fields: fields}
}

// IsParseError returns true if the error is a malformed-record error.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
