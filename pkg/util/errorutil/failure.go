package errorutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by storage when the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// UniquenessViolation is returned by storage when a write collides with an existing record
// on a field declared unique.
type UniquenessViolation struct {
	Field string
	Err   error
}

func (e *UniquenessViolation) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("duplicate value for %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("duplicate value for %q", e.Field)
}

func (e *UniquenessViolation) Unwrap() error {
	return e.Err
}

// SchemaViolation carries one message per offending field.
type SchemaViolation struct {
	Fields map[string]string
}

// NewSchemaViolation builds a violation for a single field.
func NewSchemaViolation(field, message string) *SchemaViolation {
	return &SchemaViolation{Fields: map[string]string{field: message}}
}

func (e *SchemaViolation) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "schema violation: " + strings.Join(parts, "; ")
}
