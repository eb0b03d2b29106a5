package kconfig

import (
	"maps"

	"github.com/gobwas/glob"
)

// globMatchKey compiles a glob pattern for matching entry keys, e.g.
// "USB_*" or "NET_?". Patterns have no separator character since keys are
// flat identifiers.
func globMatchKey(pattern string) (glob.Glob, error) {
	return glob.Compile(pattern)
}

// keyIndex folds the ordered entries into a key map, last entry per key
// winning. Keyless entries are skipped.
func keyIndex(c *Config) map[string]Entry {
	if c == nil {
		return map[string]Entry{}
	}
	m := make(map[string]Entry, len(c.entries))
	for _, e := range c.entries {
		if e.key == "" {
			continue
		}
		m[e.key] = e
	}

	return m
}

// mergeMeta shallow-merges two metadata maps, the right one winning key
// conflicts. Returns nil if both inputs are empty.
func mergeMeta(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)

	return out
}
