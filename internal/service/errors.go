package service

import (
	"fmt"
	"strings"
)

// ValidationError reports a rejected submission. Fields lists the offending
// payload fields; nothing is written to the store when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid payload"
	}
	return fmt.Sprintf("invalid payload: %s", strings.Join(e.Fields, ", "))
}

func invalid(fields ...string) error {
	return &ValidationError{Fields: fields}
}
