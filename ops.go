package kconfig

import (
	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/gopasspw/gopass/pkg/set"
)

// Merge combines two configs. The result starts from base; every keyed
// entry of override replaces the first same-key entry in place (keeping the
// base position) or is appended if the key is new. Keyless entries of
// override (comments, blanks) are always appended.
//
// This left-biased positional replace deliberately differs from Config.Set,
// which moves the entry to the end. Config metadata is shallow-merged with
// override winning key conflicts.
func Merge(base, override *Config) *Config {
	nc := base.clone()

	// first-occurrence positions of keys already in the result
	pos := make(map[string]int, len(nc.entries))
	for i, e := range nc.entries {
		if e.key == "" {
			continue
		}
		if _, seen := pos[e.key]; !seen {
			pos[e.key] = i
		}
	}

	for _, e := range override.Entries() {
		if e.key == "" {
			nc.entries = append(nc.entries, e)

			continue
		}
		if i, found := pos[e.key]; found {
			debug.V(3).Log("merge: replacing %q at position %d", e.key, i)
			nc.entries[i] = e

			continue
		}
		debug.V(3).Log("merge: appending new key %q", e.key)
		pos[e.key] = len(nc.entries)
		nc.entries = append(nc.entries, e)
	}

	nc.metadata = mergeMeta(base.rawMeta(), override.rawMeta())

	return nc
}

// Override replaces entries of base with the overlay's same-key entries,
// keeping every entry in its original position. Keys present only in the
// overlay are dropped: Override never introduces new keys, in contrast to
// Merge. Keyless entries of base are kept unchanged.
func Override(base, overlay *Config) *Config {
	repl := keyIndex(overlay)

	nc := base.clone()
	for i, e := range nc.entries {
		if e.key == "" {
			continue
		}
		if r, found := repl[e.key]; found {
			debug.V(3).Log("override: replacing %q at position %d", e.key, i)
			nc.entries[i] = r
		}
	}
	nc.metadata = mergeMeta(base.rawMeta(), overlay.rawMeta())

	return nc
}

// ChangedEntry pairs the base and target versions of a key whose value
// differs between the two configs.
type ChangedEntry struct {
	Old Entry
	New Entry
}

// DiffResult classifies keys across two configs. Comment and blank entries
// never participate. All slices are sorted by key for deterministic output.
type DiffResult struct {
	Added     []Entry
	Removed   []Entry
	Changed   []ChangedEntry
	Unchanged int
}

// Empty reports whether the two configs agreed on every key.
func (d *DiffResult) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Diff compares two configs key by key. Keys only in target are added, keys
// only in base are removed, shared keys with differing values are changed
// and shared equal keys are counted as unchanged. With duplicate keys the
// last entry per key wins, matching a fold over the ordered sequence.
func Diff(base, target *Config) *DiffResult {
	bm := keyIndex(base)
	tm := keyIndex(target)

	d := &DiffResult{}
	for _, k := range set.SortedKeys(tm) {
		be, found := bm[k]
		if !found {
			d.Added = append(d.Added, tm[k])

			continue
		}
		if Conflicts(be, tm[k]) {
			d.Changed = append(d.Changed, ChangedEntry{Old: be, New: tm[k]})

			continue
		}
		d.Unchanged++
	}
	for _, k := range set.SortedKeys(bm) {
		if _, found := tm[k]; !found {
			d.Removed = append(d.Removed, bm[k])
		}
	}
	debug.V(3).Log("diff: %d added, %d removed, %d changed, %d unchanged",
		len(d.Added), len(d.Removed), len(d.Changed), d.Unchanged)

	return d
}

// Filter returns a config holding only the entries the predicate accepts,
// order preserved. Prefix and metadata are carried over.
func Filter(c *Config, pred func(Entry) bool) *Config {
	nc := c.clone()
	kept := nc.entries[:0]
	for _, e := range nc.entries {
		if pred(e) {
			kept = append(kept, e)
		}
	}
	nc.entries = kept

	return nc
}

// ConfigOnly drops all comment and blank entries.
func ConfigOnly(c *Config) *Config {
	return Filter(c, func(e Entry) bool {
		return e.Kind() != KindComment && e.Kind() != KindBlank
	})
}

// FilterPattern keeps the keyed entries whose key matches the given glob
// pattern, e.g. "USB_*" or "NET_?". Keyless entries are dropped.
func FilterPattern(c *Config, pattern string) (*Config, error) {
	g, err := globMatchKey(pattern)
	if err != nil {
		return nil, err
	}

	return Filter(c, func(e Entry) bool {
		return e.HasKey() && g.Match(e.Key())
	}), nil
}

// GroupBySource groups entries by their provenance label, preserving entry
// order within each group. Entries without a source share the "" group.
func GroupBySource(c *Config) map[string][]Entry {
	out := make(map[string][]Entry, 4)
	for _, e := range c.Entries() {
		out[e.Source()] = append(out[e.Source()], e)
	}

	return out
}
