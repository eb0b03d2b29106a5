package kconfig

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gopasspw/gopass/pkg/debug"
)

var (
	reConfigPrefix  = regexp.MustCompile(`^CONFIG_\w+=`)
	reBR2Prefix     = regexp.MustCompile(`^BR2_\w+=`)
	reGenericPrefix = regexp.MustCompile(`^([A-Z]+_)\w+=`)
	reHexValue      = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	reIntValue      = regexp.MustCompile(`^-?[0-9]+$`)
)

type parseOptions struct {
	source string
	prefix string
}

// ParseOption customizes a Parse call.
type ParseOption func(*parseOptions)

// FromSource labels every parsed entry (and the config metadata) with the
// given provenance, typically the file path the text came from.
func FromSource(src string) ParseOption {
	return func(o *parseOptions) {
		o.source = src
	}
}

// WithPrefix forces the key prefix instead of inferring it from the input.
func WithPrefix(prefix string) ParseOption {
	return func(o *parseOptions) {
		o.prefix = prefix
	}
}

// Parse reads the whole input and parses it as a Kconfig-style file.
//
// Parsing is deliberately lenient: malformed lines are preserved verbatim as
// comment entries and never fail the parse. The only error condition is a
// failing reader, wrapped in a ParseError; the grammar itself cannot fail.
func Parse(r io.Reader, opts ...ParseOption) (*Config, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("reading input: %s", err)}
	}

	return ParseString(string(buf), opts...)
}

// ParseString parses the given text as a Kconfig-style file. See Parse.
func ParseString(in string, opts ...ParseOption) (*Config, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	lines := strings.Split(in, "\n")

	prefix := o.prefix
	if prefix == "" {
		prefix = inferPrefix(lines)
	}
	debug.V(3).Log("parsing %d lines with prefix %q (source %q)", len(lines), prefix, o.source)

	// The "# CONFIG_FOO is not set" form and the assignment form both embed
	// the literal prefix, so the matchers depend on it.
	reDisabled := regexp.MustCompile(`^#\s*` + regexp.QuoteMeta(prefix) + `(\w+) is not set\s*$`)
	reAssign := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\w+)=(.*)$`)

	c := NewConfig(prefix)
	c.metadata = map[string]any{
		MetaParsedAt:  time.Now(),
		MetaLineCount: len(lines),
	}
	if o.source != "" {
		c.metadata[MetaSource] = o.source
	}

	entryOpts := func(n int) []EntryOption {
		eo := []EntryOption{WithLine(n)}
		if o.source != "" {
			eo = append(eo, WithSource(o.source))
		}

		return eo
	}

	for i, raw := range lines {
		n := i + 1
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			c.entries = append(c.entries, NewBlank(entryOpts(n)...))
		case strings.HasPrefix(line, "#"):
			c.entries = append(c.entries, parseCommentLine(line, reDisabled, entryOpts(n)))
		case strings.HasPrefix(line, prefix):
			c.entries = append(c.entries, parseConfigLine(line, reAssign, entryOpts(n)))
		default:
			// Unknown line shape. Keep it as a comment so nothing is lost.
			debug.V(3).Log("unrecognized line %d: %q", n, line)
			c.entries = append(c.entries, NewComment(line, entryOpts(n)...))
		}
	}

	return c, nil
}

// inferPrefix scans the input for the first assignment line and derives the
// key prefix from it. Literal CONFIG_ and BR2_ are tried first, then any
// leading all-caps run ending in an underscore. Comment and blank lines are
// skipped. Files with no assignment at all get DefaultPrefix.
func inferPrefix(lines []string) string {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case reConfigPrefix.MatchString(line):
			return "CONFIG_"
		case reBR2Prefix.MatchString(line):
			return "BR2_"
		}
		if m := reGenericPrefix.FindStringSubmatch(line); m != nil {
			debug.V(3).Log("inferred generic prefix %q", m[1])

			return m[1]
		}
	}

	return DefaultPrefix
}

// parseCommentLine handles lines starting with '#'. The disabled-boolean
// form becomes a bool entry with value false, everything else a plain
// comment with the '#' and surrounding whitespace stripped.
func parseCommentLine(line string, reDisabled *regexp.Regexp, opts []EntryOption) Entry {
	if m := reDisabled.FindStringSubmatch(line); m != nil {
		opts = append(opts, WithMeta(MetaDisabledComment, true))
		e, err := NewBool(m[1], false, opts...)
		if err == nil {
			return e
		}
	}

	text := strings.TrimSpace(strings.TrimLeft(line, "#"))

	return NewComment(text, opts...)
}

// parseConfigLine handles "{prefix}{ident}={value}" lines, classifying the
// right-hand side into the typed entry kinds. Lines that do not match the
// assignment shape fall back to comment entries, same as any unknown line.
func parseConfigLine(line string, reAssign *regexp.Regexp, opts []EntryOption) Entry {
	m := reAssign.FindStringSubmatch(line)
	if m == nil {
		return NewComment(line, opts...)
	}

	key := m[1]
	rest := strings.TrimSpace(m[2])

	var (
		e   Entry
		err error
	)

	switch {
	case rest == "y" || rest == "Y":
		e, err = NewBool(key, true, opts...)
	case rest == "n" || rest == "N":
		e, err = NewBool(key, false, opts...)
	case rest == "m" || rest == "M":
		e, err = NewTristate(key, TristateModule, opts...)
	case len(rest) >= 2 && strings.HasPrefix(rest, `"`) && strings.HasSuffix(rest, `"`):
		// Only the two outermost quotes are stripped, no escape processing.
		e, err = NewString(key, rest[1:len(rest)-1], opts...)
	case reHexValue.MatchString(rest):
		v, perr := strconv.ParseUint(rest[2:], 16, 64)
		if perr != nil {
			// Wider than 64 bits, keep it as a raw string.
			e, err = NewString(key, rest, opts...)

			break
		}
		e, err = NewHex(key, v, opts...)
	case reIntValue.MatchString(rest):
		v, perr := strconv.ParseInt(rest, 10, 64)
		if perr != nil {
			e, err = NewString(key, rest, opts...)

			break
		}
		e, err = NewInt(key, v, opts...)
	default:
		// Fallback: any other right-hand side is a literal string.
		e, err = NewString(key, rest, opts...)
	}
	if err != nil {
		// Cannot happen for a non-empty key, but stay lossless regardless.
		return NewComment(line, opts...)
	}

	return e
}
