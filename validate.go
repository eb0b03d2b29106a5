package kconfig

import (
	"fmt"
	"regexp"
)

// Key identifiers are word characters only, same as the textual grammar.
var reValidKey = regexp.MustCompile(`^\w+$`)

// ValidateEntry checks the structural invariants of a single entry: keyed
// kinds must carry a well-formed key, comment and blank entries must not,
// and the value must fit the kind's domain. Hex values are unsigned by
// construction, so the >= 0 domain rule is enforced by the type check.
func ValidateEntry(e Entry) error {
	switch e.Kind() {
	case KindComment, KindBlank:
		if e.Key() != "" {
			return fmt.Errorf("%w: %s entry must not have a key", ErrInvalidValue, e.Kind())
		}

		return nil
	}

	if e.Key() == "" {
		return fmt.Errorf("%w: %s entry requires a key", ErrEmptyKey, e.Kind())
	}
	if !reValidKey.MatchString(e.Key()) {
		return fmt.Errorf("%w: malformed key %q", ErrInvalidValue, e.Key())
	}

	switch e.Kind() {
	case KindBool:
		if _, ok := e.Value().(bool); !ok {
			return fmt.Errorf("%w: bool entry %q holds %T", ErrInvalidValue, e.Key(), e.Value())
		}
	case KindTristate:
		v, ok := e.Value().(Tristate)
		if !ok {
			return fmt.Errorf("%w: tristate entry %q holds %T", ErrInvalidValue, e.Key(), e.Value())
		}
		switch v {
		case TristateNo, TristateYes, TristateModule:
		default:
			return fmt.Errorf("%w: tristate entry %q holds %d", ErrInvalidValue, e.Key(), int(v))
		}
	case KindString:
		if _, ok := e.Value().(string); !ok {
			return fmt.Errorf("%w: string entry %q holds %T", ErrInvalidValue, e.Key(), e.Value())
		}
	case KindInt:
		if _, ok := e.Value().(int64); !ok {
			return fmt.Errorf("%w: int entry %q holds %T", ErrInvalidValue, e.Key(), e.Value())
		}
	case KindHex:
		if _, ok := e.Value().(uint64); !ok {
			return fmt.Errorf("%w: hex entry %q holds %T", ErrInvalidValue, e.Key(), e.Value())
		}
	}

	return nil
}

// ValidateConfig validates every entry in order and reports the first
// failure as an InvalidConfigError carrying the 0-based entry index.
// Validation is opt-in and non-fatal: the config stays usable either way.
func ValidateConfig(c *Config) error {
	if c == nil {
		return nil
	}
	for i, e := range c.entries {
		if err := ValidateEntry(e); err != nil {
			return &InvalidConfigError{Index: i, Reason: err.Error()}
		}
	}

	return nil
}
