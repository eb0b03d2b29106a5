package kconfig

import (
	"maps"

	"github.com/gopasspw/gopass/pkg/debug"
)

// DefaultPrefix is the key prefix used when none is given or inferred.
const DefaultPrefix = "CONFIG_"

// Well-known Config metadata keys populated by the parser.
const (
	MetaSource    = "source"
	MetaParsedAt  = "parsed_at"
	MetaLineCount = "line_count"
)

// Config is an ordered sequence of entries plus a key prefix and an open
// metadata map.
//
// Config is a persistent value: Add, Remove, Set and every operation in
// ops.go return a new Config and never mutate the receiver or any argument.
// Because of that, concurrent readers need no synchronization.
//
// Entries keep strict insertion order. Duplicate keys are legal and
// preserved; Get returns the first match, GetAll enumerates all of them.
type Config struct {
	prefix   string
	entries  []Entry
	metadata map[string]any
}

// NewConfig creates an empty config with the given key prefix. An empty
// prefix selects DefaultPrefix.
func NewConfig(prefix string) *Config {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Config{prefix: prefix}
}

// Prefix returns the key prefix, e.g. "CONFIG_" or "BR2_".
func (c *Config) Prefix() string {
	if c == nil || c.prefix == "" {
		return DefaultPrefix
	}

	return c.prefix
}

// Len returns the number of entries, including comments and blanks.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}

// Entries returns a copy of the ordered entry sequence.
func (c *Config) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Meta returns the config metadata value for the given key.
func (c *Config) Meta(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, found := c.metadata[key]

	return v, found
}

// Metadata returns a copy of the open metadata map.
func (c *Config) Metadata() map[string]any {
	if c == nil {
		return nil
	}
	out := make(map[string]any, len(c.metadata))
	maps.Copy(out, c.metadata)

	return out
}

// rawMeta exposes the metadata map without copying. Nil-safe, like the
// exported readers.
func (c *Config) rawMeta() map[string]any {
	if c == nil {
		return nil
	}

	return c.metadata
}

// clone returns a shallow copy with its own entry slice and metadata map.
// A nil receiver clones to an empty default-prefix config, so the
// transformations in ops.go tolerate nil inputs like the readers do.
func (c *Config) clone() *Config {
	if c == nil {
		return &Config{prefix: DefaultPrefix}
	}
	nc := &Config{
		prefix:  c.Prefix(),
		entries: make([]Entry, len(c.entries)),
	}
	copy(nc.entries, c.entries)
	if c.metadata != nil {
		nc.metadata = make(map[string]any, len(c.metadata))
		maps.Copy(nc.metadata, c.metadata)
	}

	return nc
}

func (c *Config) withMeta(key string, value any) *Config {
	nc := c.clone()
	if nc.metadata == nil {
		nc.metadata = make(map[string]any, 4)
	}
	nc.metadata[key] = value

	return nc
}

// Add appends an entry, preserving order, and returns the new config.
func (c *Config) Add(e Entry) *Config {
	nc := c.clone()
	nc.entries = append(nc.entries, e)

	return nc
}

// Get returns the first entry with the given key.
func (c *Config) Get(key string) (Entry, bool) {
	if c == nil || key == "" {
		return Entry{}, false
	}
	for _, e := range c.entries {
		if e.key == key {
			return e, true
		}
	}

	return Entry{}, false
}

// GetAll returns all entries with the given key, in entry order.
func (c *Config) GetAll(key string) []Entry {
	if c == nil || key == "" {
		return nil
	}
	var out []Entry
	for _, e := range c.entries {
		if e.key == key {
			out = append(out, e)
		}
	}

	return out
}

// Has reports whether any entry carries the given key.
func (c *Config) Has(key string) bool {
	_, found := c.Get(key)

	return found
}

// Remove returns a config with all entries of the given key removed. The
// relative order of the remaining entries is preserved.
func (c *Config) Remove(key string) *Config {
	nc := c.clone()
	kept := nc.entries[:0]
	for _, e := range nc.entries {
		if e.key == key && key != "" {
			continue
		}
		kept = append(kept, e)
	}
	nc.entries = kept

	return nc
}

// Set removes all entries with the entry's key and appends the entry at the
// end. Note this moves the entry to the end rather than keeping its original
// position; Merge replaces in place instead. Both semantics are intentional.
func (c *Config) Set(e Entry) *Config {
	debug.V(3).Log("set %q (kind %s)", e.key, e.kind)

	return c.Remove(e.key).Add(e)
}

// Keys returns the ordered sequence of keys, including duplicates. Comment
// and blank entries do not contribute.
func (c *Config) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		if e.key == "" {
			continue
		}
		out = append(out, e.key)
	}

	return out
}
