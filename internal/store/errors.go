package store

import "fmt"

// MalformedRecordError reports a source row that failed a required-field or
// invariant check during load. Load aborts on the first one.
type MalformedRecordError struct {
	Row    int // 1-based data row number (header excluded)
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at row %d: field %q: %s", e.Row, e.Field, e.Reason)
}

// UnknownFieldError reports a query that referenced an attribute name the
// field registry does not know.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}
