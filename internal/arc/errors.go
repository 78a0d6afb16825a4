package arc

import (
	"fmt"
	"sort"
	"strings"
)

// MappingError reports a record that could not be translated into the
// internal shape. It should not occur for the fixed known field set,
// but is defined for forward compatibility with schema drift.
type MappingError struct {
	Field string
	Err   error
}

func (e *MappingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("mapping field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("mapping record: %v", e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

// ValidationError reports caller-level problems with a draft, keyed by
// field name. It is raised before a draft ever reaches the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "invalid draft: " + strings.Join(parts, "; ")
}
