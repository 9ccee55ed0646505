package bedrock

import (
	"errors"
	"fmt"
)

var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError reports a field that is present but has the wrong JSON type.
type TypeMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	path := e.Path
	if path == "" {
		path = "document"
	}
	return fmt.Sprintf("bedrock: %s: expected %s, got %s", path, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func mismatch(path, expected string, raw []byte) error {
	return &TypeMismatchError{Path: path, Expected: expected, Actual: kindOf(raw)}
}
