package input

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDecode is returned when a file is not valid YAML or JSON.
	ErrDecode = errors.New("failed to decode activity file")

	// ErrRead is returned when a file cannot be read.
	ErrRead = errors.New("failed to read activity file")
)

// FieldError is one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError lists every invalid field in an activity file.
type ValidationError struct {
	Path   string       `json:"path,omitempty"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	prefix := "invalid activity data"
	if e.Path != "" {
		prefix += " in " + e.Path
	}
	return fmt.Sprintf("%s (%d problems): %s", prefix, len(e.Fields), strings.Join(parts, "; "))
}

// Has reports whether field was flagged.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
