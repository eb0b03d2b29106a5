package kconfig

import "fmt"

// Kind identifies the shape of a config entry. Every entry has exactly one
// kind, fixed at construction, and the stored value must match it.
type Kind int

// Entry kinds. Bool through Hex carry a key and a typed value, Comment and
// Blank carry neither.
const (
	KindBool Kind = iota
	KindTristate
	KindString
	KindInt
	KindHex
	KindComment
	KindBlank
)

// String implements fmt.Stringer for debugging and error messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindTristate:
		return "tristate"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindHex:
		return "hex"
	case KindComment:
		return "comment"
	case KindBlank:
		return "blank"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Tristate is the three-valued option state of Kconfig: disabled (n),
// enabled (y) or built as a module (m).
type Tristate int

const (
	TristateNo Tristate = iota
	TristateYes
	TristateModule
)

// String returns the single-letter Kconfig notation (n, y or m).
func (t Tristate) String() string {
	switch t {
	case TristateYes:
		return "y"
	case TristateModule:
		return "m"
	default:
		return "n"
	}
}

// MetaDisabledComment is set to true on entries that were reconstructed from
// a "# CONFIG_FOO is not set" comment line rather than an explicit
// assignment. It allows callers to distinguish the two spellings of a
// disabled option after parsing.
const MetaDisabledComment = "disabled_comment"

// Entry represents one logical line of a Kconfig-style file: an assignment,
// a comment or a blank line.
//
// Entries are immutable value objects. The factory functions (NewBool,
// NewTristate, NewString, NewInt, NewHex, NewComment, NewBlank) are the only
// way to construct one and enforce that the value matches the kind. All
// fields are read through accessors; nothing mutates an Entry after
// construction.
type Entry struct {
	key     string
	kind    Kind
	value   any
	line    int // 1-based source line, 0 if synthetically built
	source  string
	comment string // inline comment, or the body of a comment entry
	meta    map[string]any
}

// EntryOption customizes provenance and metadata of a new entry.
type EntryOption func(*Entry)

// WithLine records the 1-based source line the entry was parsed from.
func WithLine(n int) EntryOption {
	return func(e *Entry) {
		e.line = n
	}
}

// WithSource records a provenance label, e.g. a file path or a
// caller-supplied tag.
func WithSource(src string) EntryOption {
	return func(e *Entry) {
		e.source = src
	}
}

// WithInlineComment attaches free-form comment text to the entry.
func WithInlineComment(text string) EntryOption {
	return func(e *Entry) {
		e.comment = text
	}
}

// WithMeta sets an auxiliary metadata flag on the entry.
func WithMeta(key string, value any) EntryOption {
	return func(e *Entry) {
		if e.meta == nil {
			e.meta = make(map[string]any, 1)
		}
		e.meta[key] = value
	}
}

func newEntry(kind Kind, key string, value any, opts []EntryOption) Entry {
	e := Entry{
		key:   key,
		kind:  kind,
		value: value,
	}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func newKeyed(kind Kind, key string, value any, opts []EntryOption) (Entry, error) {
	if key == "" {
		return Entry{}, fmt.Errorf("%w: %s entry requires a key", ErrEmptyKey, kind)
	}

	return newEntry(kind, key, value, opts), nil
}

// NewBool creates a boolean entry. Disabled booleans render as the
// "# CONFIG_FOO is not set" comment form.
func NewBool(key string, value bool, opts ...EntryOption) (Entry, error) {
	return newKeyed(KindBool, key, value, opts)
}

// NewTristate creates a tristate entry. The value must be one of TristateNo,
// TristateYes or TristateModule.
func NewTristate(key string, value Tristate, opts ...EntryOption) (Entry, error) {
	switch value {
	case TristateNo, TristateYes, TristateModule:
	default:
		return Entry{}, fmt.Errorf("%w: %d is not a tristate", ErrInvalidValue, int(value))
	}

	return newKeyed(KindTristate, key, value, opts)
}

// NewString creates a string entry. The value is stored and rendered
// verbatim, embedded quotes are not escaped.
func NewString(key, value string, opts ...EntryOption) (Entry, error) {
	return newKeyed(KindString, key, value, opts)
}

// NewInt creates a signed decimal integer entry.
func NewInt(key string, value int64, opts ...EntryOption) (Entry, error) {
	return newKeyed(KindInt, key, value, opts)
}

// NewHex creates a hexadecimal entry. The value is unsigned: real-world hex
// options (kernel virtual base addresses and friends) use the full 64-bit
// range.
func NewHex(key string, value uint64, opts ...EntryOption) (Entry, error) {
	return newKeyed(KindHex, key, value, opts)
}

// NewComment creates a comment entry carrying the given text (without the
// leading '#').
func NewComment(text string, opts ...EntryOption) Entry {
	e := newEntry(KindComment, "", nil, opts)
	e.comment = text

	return e
}

// NewBlank creates a blank-line entry.
func NewBlank(opts ...EntryOption) Entry {
	return newEntry(KindBlank, "", nil, opts)
}

// Key returns the entry key without prefix. It is empty for comment and
// blank entries.
func (e Entry) Key() string {
	return e.key
}

// Kind returns the entry kind.
func (e Entry) Kind() Kind {
	return e.kind
}

// Line returns the 1-based source line number, or 0 for synthetically built
// entries.
func (e Entry) Line() int {
	return e.line
}

// Source returns the provenance label, or the empty string if none was set.
func (e Entry) Source() string {
	return e.source
}

// InlineComment returns the free-form comment text. For comment entries this
// is the comment body.
func (e Entry) InlineComment() string {
	return e.comment
}

// Value returns the dynamically typed value: bool for KindBool, Tristate for
// KindTristate, string for KindString, int64 for KindInt and uint64 for
// KindHex. Comment and blank entries return nil. Prefer the typed accessors.
func (e Entry) Value() any {
	return e.value
}

// BoolValue returns the boolean value, and whether the entry is a boolean.
func (e Entry) BoolValue() (bool, bool) {
	v, ok := e.value.(bool)

	return v, ok && e.kind == KindBool
}

// TristateValue returns the tristate value, and whether the entry is a
// tristate.
func (e Entry) TristateValue() (Tristate, bool) {
	v, ok := e.value.(Tristate)

	return v, ok && e.kind == KindTristate
}

// StringValue returns the string value, and whether the entry is a string.
func (e Entry) StringValue() (string, bool) {
	v, ok := e.value.(string)

	return v, ok && e.kind == KindString
}

// IntValue returns the integer value, and whether the entry is a decimal
// integer.
func (e Entry) IntValue() (int64, bool) {
	v, ok := e.value.(int64)

	return v, ok && e.kind == KindInt
}

// HexValue returns the unsigned value, and whether the entry is hexadecimal.
func (e Entry) HexValue() (uint64, bool) {
	v, ok := e.value.(uint64)

	return v, ok && e.kind == KindHex
}

// Meta returns the metadata value for the given key.
func (e Entry) Meta(key string) (any, bool) {
	v, found := e.meta[key]

	return v, found
}

// IsDisabledComment reports whether the entry was reconstructed from a
// "is not set" comment line.
func (e Entry) IsDisabledComment() bool {
	v, found := e.meta[MetaDisabledComment]
	if !found {
		return false
	}
	b, ok := v.(bool)

	return ok && b
}

// Render serializes the entry to its textual line form using the given key
// prefix. Blank entries render as the empty string.
func (e Entry) Render(prefix string) string {
	switch e.kind {
	case KindComment:
		// Kernel configs separate header blocks with bare '#' lines; keep
		// them byte-faithful instead of emitting "# ".
		if e.comment == "" {
			return "#"
		}

		return "# " + e.comment
	case KindBlank:
		return ""
	case KindBool:
		v, _ := e.value.(bool)
		if v {
			return prefix + e.key + "=y"
		}

		return fmt.Sprintf("# %s%s is not set", prefix, e.key)
	case KindTristate:
		v, _ := e.value.(Tristate)
		switch v {
		case TristateYes:
			return prefix + e.key + "=y"
		case TristateModule:
			return prefix + e.key + "=m"
		default:
			return fmt.Sprintf("# %s%s is not set", prefix, e.key)
		}
	case KindString:
		v, _ := e.value.(string)
		// Embedded quotes are intentionally not escaped, faithful to the
		// source format.
		return prefix + e.key + `="` + v + `"`
	case KindInt:
		v, _ := e.value.(int64)

		return fmt.Sprintf("%s%s=%d", prefix, e.key, v)
	case KindHex:
		v, _ := e.value.(uint64)

		return fmt.Sprintf("%s%s=0x%x", prefix, e.key, v)
	default:
		return ""
	}
}

// String implements fmt.Stringer using the default prefix.
func (e Entry) String() string {
	return e.Render(DefaultPrefix)
}

// HasKey reports whether the entry carries a key, i.e. is neither a comment
// nor a blank line.
func (e Entry) HasKey() bool {
	return e.key != ""
}

// SameKey reports whether both entries carry the same non-empty key.
func SameKey(a, b Entry) bool {
	return a.key != "" && a.key == b.key
}

// EqualValue reports whether two entries agree on kind, key and value.
// Provenance (line, source) and metadata are ignored.
func EqualValue(a, b Entry) bool {
	if a.kind != b.kind || a.key != b.key {
		return false
	}
	if a.kind == KindComment {
		return a.comment == b.comment
	}

	return a.value == b.value
}

// Conflicts reports whether two entries share a key but disagree on kind or
// value.
func Conflicts(a, b Entry) bool {
	return SameKey(a, b) && !EqualValue(a, b)
}
