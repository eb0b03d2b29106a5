package kconfig

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimple(t *testing.T) {
	t.Parallel()

	c, err := ParseString("CONFIG_DEBUG=y")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	e, found := c.Get("DEBUG")
	require.True(t, found)
	assert.Equal(t, KindBool, e.Kind())
	v, ok := e.BoolValue()
	assert.True(t, ok)
	assert.True(t, v)
	assert.Equal(t, 1, e.Line())
}

func TestParseDisabledComment(t *testing.T) {
	t.Parallel()

	c, err := ParseString("# CONFIG_DEBUG is not set")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	e, found := c.Get("DEBUG")
	require.True(t, found)
	assert.Equal(t, KindBool, e.Kind())
	v, ok := e.BoolValue()
	assert.True(t, ok)
	assert.False(t, v)
	assert.True(t, e.IsDisabledComment())
}

func TestParseValueClassification(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]struct {
		kind  Kind
		value any
	}{
		"CONFIG_A=y":             {KindBool, true},
		"CONFIG_A=Y":             {KindBool, true},
		"CONFIG_A=n":             {KindBool, false},
		"CONFIG_A=N":             {KindBool, false},
		"CONFIG_A=m":             {KindTristate, TristateModule},
		"CONFIG_A=M":             {KindTristate, TristateModule},
		`CONFIG_A="hello world"`: {KindString, "hello world"},
		`CONFIG_A=""`:            {KindString, ""},
		`CONFIG_A="a "b" c"`:     {KindString, `a "b" c`},
		"CONFIG_A=0x1000":        {KindHex, uint64(4096)},
		"CONFIG_A=0XFF":          {KindHex, uint64(255)},
		// high bit set, still a valid 64-bit hex value
		"CONFIG_A=0xffff800000000000": {KindHex, uint64(0xffff800000000000)},
		"CONFIG_A=0xffffffffffffffff": {KindHex, uint64(0xffffffffffffffff)},
		// wider than 64 bits, preserved as a raw string
		"CONFIG_A=0x10000000000000000": {KindString, "0x10000000000000000"},
		"CONFIG_A=42":            {KindInt, int64(42)},
		"CONFIG_A=-17":           {KindInt, int64(-17)},
		"CONFIG_A=4.2":           {KindString, "4.2"},
		"CONFIG_A=ymodule":       {KindString, "ymodule"},
		"CONFIG_A=0x":            {KindString, "0x"},
		// out of int64 range, preserved as a raw string
		"CONFIG_A=99999999999999999999999": {KindString, "99999999999999999999999"},
	} {
		c, err := ParseString(in)
		require.NoError(t, err, in)

		e, found := c.Get("A")
		require.True(t, found, in)
		assert.Equal(t, want.kind, e.Kind(), in)
		assert.Equal(t, want.value, e.Value(), in)
	}
}

func TestParseLenient(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"CONFIG_GOOD=y",
		"this is not a config line",
		"CONFIG_NOEQUALS",
		"# just a comment",
		"",
		"   ",
	}, "\n")

	c, err := ParseString(in)
	require.NoError(t, err)
	require.Equal(t, 6, c.Len())

	entries := c.Entries()
	assert.Equal(t, KindBool, entries[0].Kind())
	assert.Equal(t, KindComment, entries[1].Kind())
	assert.Equal(t, "this is not a config line", entries[1].InlineComment())
	// starts with the prefix but has no '=': preserved verbatim
	assert.Equal(t, KindComment, entries[2].Kind())
	assert.Equal(t, "CONFIG_NOEQUALS", entries[2].InlineComment())
	assert.Equal(t, KindComment, entries[3].Kind())
	assert.Equal(t, "just a comment", entries[3].InlineComment())
	assert.Equal(t, KindBlank, entries[4].Kind())
	assert.Equal(t, KindBlank, entries[5].Kind())
}

func TestParseCommentStripping(t *testing.T) {
	t.Parallel()

	c, err := ParseString("##  doubled up hash  ")
	require.NoError(t, err)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, KindComment, entries[0].Kind())
	assert.Equal(t, "doubled up hash", entries[0].InlineComment())
}

func TestPrefixInference(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		in   string
		want string
	}{
		"config":        {"CONFIG_FOO=y", "CONFIG_"},
		"br2":           {"BR2_TARGET_GENERIC=y", "BR2_"},
		"generic":       {"UBOOT_BOARD=\"mx6\"", "UBOOT_"},
		"comments only": {"# nothing here\n\n# still nothing", "CONFIG_"},
		"empty":         {"", "CONFIG_"},
		"skips leading comments": {
			"# CONFIG_ looking text inside a comment\nBR2_FOO=y", "BR2_",
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := ParseString(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Prefix())
		})
	}
}

func TestPrefixOption(t *testing.T) {
	t.Parallel()

	// explicit prefix wins over what inference would pick
	c, err := ParseString("BR2_FOO=y", WithPrefix("CONFIG_"))
	require.NoError(t, err)
	assert.Equal(t, "CONFIG_", c.Prefix())

	// the BR2_ line does not match the forced prefix and is kept verbatim
	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, KindComment, entries[0].Kind())
	assert.Equal(t, "BR2_FOO=y", entries[0].InlineComment())
}

func TestParseBR2Disabled(t *testing.T) {
	t.Parallel()

	c, err := ParseString("BR2_PACKAGE_BUSYBOX=y\n# BR2_PACKAGE_DROPBEAR is not set")
	require.NoError(t, err)
	assert.Equal(t, "BR2_", c.Prefix())

	e, found := c.Get("PACKAGE_DROPBEAR")
	require.True(t, found)
	assert.Equal(t, KindBool, e.Kind())
	assert.True(t, e.IsDisabledComment())
}

func TestParseMetadata(t *testing.T) {
	t.Parallel()

	before := time.Now()
	c, err := ParseString("CONFIG_A=y\nCONFIG_B=n", FromSource(".config"))
	require.NoError(t, err)

	src, found := c.Meta(MetaSource)
	require.True(t, found)
	assert.Equal(t, ".config", src)

	lc, found := c.Meta(MetaLineCount)
	require.True(t, found)
	assert.Equal(t, 2, lc)

	at, found := c.Meta(MetaParsedAt)
	require.True(t, found)
	parsedAt, ok := at.(time.Time)
	require.True(t, ok)
	assert.False(t, parsedAt.Before(before))

	for _, e := range c.Entries() {
		assert.Equal(t, ".config", e.Source())
	}
}

func TestParseReaderError(t *testing.T) {
	t.Parallel()

	_, err := Parse(failingReader{})
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "boom")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}
