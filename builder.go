package kconfig

// Builder provides a fluent interface for constructing configs without going
// through the parser. The first failing entry latches an error and aborts
// Build; intermediate calls can be chained freely.
//
//	cfg, err := kconfig.NewBuilder().
//		WithPrefix("BR2_").
//		Comment("target options").
//		Bool("TARGET_GENERIC", true).
//		String("TARGET_GENERIC_ISSUE", "Welcome").
//		Blank().
//		Hex("LOAD_ADDR", 0x80000).
//		Build()
type Builder struct {
	prefix  string
	source  string
	entries []Entry
	err     error
}

// NewBuilder creates a builder producing configs with DefaultPrefix unless
// WithPrefix is called.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithPrefix sets the key prefix of the built config.
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix

	return b
}

// WithSource sets the provenance label attached to every subsequent entry.
func (b *Builder) WithSource(src string) *Builder {
	b.source = src

	return b
}

func (b *Builder) add(e Entry, err error) *Builder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = err

		return b
	}
	b.entries = append(b.entries, e)

	return b
}

func (b *Builder) opts() []EntryOption {
	if b.source == "" {
		return nil
	}

	return []EntryOption{WithSource(b.source)}
}

// Bool appends a boolean entry.
func (b *Builder) Bool(key string, value bool) *Builder {
	e, err := NewBool(key, value, b.opts()...)

	return b.add(e, err)
}

// Tristate appends a tristate entry.
func (b *Builder) Tristate(key string, value Tristate) *Builder {
	e, err := NewTristate(key, value, b.opts()...)

	return b.add(e, err)
}

// String appends a string entry.
func (b *Builder) String(key, value string) *Builder {
	e, err := NewString(key, value, b.opts()...)

	return b.add(e, err)
}

// Int appends a signed decimal integer entry.
func (b *Builder) Int(key string, value int64) *Builder {
	e, err := NewInt(key, value, b.opts()...)

	return b.add(e, err)
}

// Hex appends a hexadecimal entry.
func (b *Builder) Hex(key string, value uint64) *Builder {
	e, err := NewHex(key, value, b.opts()...)

	return b.add(e, err)
}

// Comment appends a comment entry.
func (b *Builder) Comment(text string) *Builder {
	return b.add(NewComment(text, b.opts()...), nil)
}

// Blank appends a blank-line entry.
func (b *Builder) Blank() *Builder {
	return b.add(NewBlank(b.opts()...), nil)
}

// Entry appends a pre-constructed entry, e.g. one carrying extra metadata.
func (b *Builder) Entry(e Entry) *Builder {
	return b.add(e, nil)
}

// Build returns the constructed config, or the first error any entry
// factory reported.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	c := NewConfig(b.prefix)
	c.entries = make([]Entry, len(b.entries))
	copy(c.entries, b.entries)
	if b.source != "" {
		c.metadata = map[string]any{MetaSource: b.source}
	}

	return c, nil
}
