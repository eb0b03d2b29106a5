package kconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue indicates a value that does not fit the entry kind.
	ErrInvalidValue = errors.New("invalid value")
	// ErrEmptyKey indicates a typed entry constructed without a key.
	ErrEmptyKey = errors.New("missing key")
	// ErrReadConfig indicates a config file could not be read.
	ErrReadConfig = errors.New("failed to read config")
	// ErrWriteConfig indicates a config file could not be written.
	ErrWriteConfig = errors.New("failed to write config")
	// ErrReadOnly indicates a write was attempted on a read-only stack.
	ErrReadOnly = errors.New("stack is read-only")
)

// ParseError reports a catastrophic parser failure. Individual malformed
// lines never produce one; they are preserved as comment entries instead.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// InvalidConfigError reports the first invalid entry found by
// ValidateConfig.
type InvalidConfigError struct {
	Index  int // 0-based position of the offending entry
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid entry at index %d: %s", e.Index, e.Reason)
}
