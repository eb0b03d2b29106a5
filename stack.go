package kconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/gopasspw/gopass/pkg/set"
)

// Stack layers a base config file with an ordered list of fragment files,
// the way kernel and Buildroot builds assemble a defconfig from overlay
// fragments. Later fragments take precedence; merging follows Merge
// semantics, so a fragment replaces a base entry in place and appends keys
// the base does not have.
//
// A Stack must be loaded with LoadAll before the read accessors return
// anything.
type Stack struct {
	// Base is the path of the base config file.
	Base string
	// Fragments are the overlay files, applied in order after Base.
	Fragments []string
	// Prefix forces a key prefix for all files; empty means per-file
	// inference.
	Prefix string
	// NoWrites prevents SaveMerged from touching the file system, e.g. for
	// tests.
	NoWrites bool

	merged *Config
	layers []*Config
}

// NewStack creates a stack over the given base file and fragments.
func NewStack(base string, fragments ...string) *Stack {
	return &Stack{
		Base:      base,
		Fragments: fragments,
	}
}

// String implements fmt.Stringer for debugging.
func (s *Stack) String() string {
	return fmt.Sprintf("Stack{Base: %s - Fragments: %v - Prefix: %q}", s.Base, s.Fragments, s.Prefix)
}

// LoadAll reads and parses the base and every fragment, then merges them in
// order. Unlike per-line parsing, a missing or unreadable file is a hard
// error: a silently skipped fragment would produce a wrong merged config.
func (s *Stack) LoadAll() error {
	opts := []ParseOption{}
	if s.Prefix != "" {
		opts = append(opts, WithPrefix(s.Prefix))
	}

	base, err := LoadFile(s.Base, opts...)
	if err != nil {
		return err
	}

	s.layers = []*Config{base}
	merged := base
	for _, fn := range s.Fragments {
		frag, err := LoadFile(fn, opts...)
		if err != nil {
			return err
		}
		debug.V(2).Log("merging fragment %q (%d entries)", fn, frag.Len())
		s.layers = append(s.layers, frag)
		merged = Merge(merged, frag)
	}
	s.merged = merged

	return nil
}

// Merged returns the merged view, or nil before LoadAll.
func (s *Stack) Merged() *Config {
	return s.merged
}

// Layers returns the parsed base and fragments in load order.
func (s *Stack) Layers() []*Config {
	out := make([]*Config, len(s.layers))
	copy(out, s.layers)

	return out
}

// Get returns the first entry for the key from the merged view.
func (s *Stack) Get(key string) (Entry, bool) {
	return s.merged.Get(key)
}

// Keys returns the sorted distinct keys of the merged view.
func (s *Stack) Keys() []string {
	if s.merged == nil {
		return nil
	}

	return set.Sorted(s.merged.Keys())
}

// SaveMerged writes the merged config to the given path. Respects NoWrites.
func (s *Stack) SaveMerged(path string) error {
	if s.NoWrites {
		debug.Log("not writing merged config to %q (NoWrites)", path)

		return ErrReadOnly
	}
	if s.merged == nil {
		return fmt.Errorf("%w: stack not loaded", ErrWriteConfig)
	}

	return WriteFile(s.merged, path)
}

// LoadFile reads and parses a config file. The file path becomes the source
// label of every entry.
func LoadFile(path string, opts ...ParseOption) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrReadConfig, path, err)
	}

	return ParseString(string(buf), append([]ParseOption{FromSource(path)}, opts...)...)
}

// WriteFile renders the config with default options and writes it to path,
// creating parent directories as needed. A trailing newline is appended so
// the file ends the way the format's tools expect.
func WriteFile(c *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("%w: creating directory for %q: %s", ErrWriteConfig, path, err)
	}

	out := FormatDefault(c) + "\n"
	if err := os.WriteFile(path, []byte(out), 0o600); err != nil {
		return fmt.Errorf("%w: %q: %s", ErrWriteConfig, path, err)
	}
	debug.V(1).Log("wrote config to %s", path)

	return nil
}
