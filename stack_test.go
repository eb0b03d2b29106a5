package kconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o600))

	return fn
}

func TestStackLoadAll(t *testing.T) {
	t.Parallel()

	td := t.TempDir()
	base := writeTestFile(t, td, "defconfig", "CONFIG_DEBUG=y\n# CONFIG_VERBOSE is not set\nCONFIG_THREADS=4\n")
	frag1 := writeTestFile(t, td, "perf.config", "CONFIG_THREADS=16\n")
	frag2 := writeTestFile(t, td, "debug.config", "CONFIG_VERBOSE=y\nCONFIG_TRACE=y\n")

	st := NewStack(base, frag1, frag2)
	require.NoError(t, st.LoadAll())

	require.Len(t, st.Layers(), 3)
	merged := st.Merged()
	require.NotNil(t, merged)

	// merge keeps base order, appends new keys
	assert.Equal(t, []string{"DEBUG", "VERBOSE", "THREADS", "TRACE"}, merged.Keys())

	e, found := st.Get("THREADS")
	require.True(t, found)
	n, _ := e.IntValue()
	assert.Equal(t, int64(16), n)
	assert.Equal(t, frag1, e.Source())

	// sorted distinct keys
	assert.Equal(t, []string{"DEBUG", "THREADS", "TRACE", "VERBOSE"}, st.Keys())
}

func TestStackMissingFragment(t *testing.T) {
	t.Parallel()

	td := t.TempDir()
	base := writeTestFile(t, td, "defconfig", "CONFIG_A=y\n")

	st := NewStack(base, filepath.Join(td, "nope.config"))
	err := st.LoadAll()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrReadConfig)
	assert.Contains(t, err.Error(), "nope.config")
}

func TestStackSaveMerged(t *testing.T) {
	t.Parallel()

	td := t.TempDir()
	base := writeTestFile(t, td, "defconfig", "CONFIG_A=y\n# CONFIG_B is not set\n")
	frag := writeTestFile(t, td, "frag.config", "CONFIG_B=y\n")

	st := NewStack(base, frag)
	require.NoError(t, st.LoadAll())

	out := filepath.Join(td, "out", ".config")
	require.NoError(t, st.SaveMerged(out))

	reloaded, err := LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, reloaded.Keys())

	e, found := reloaded.Get("B")
	require.True(t, found)
	v, _ := e.BoolValue()
	assert.True(t, v)
}

func TestStackNoWrites(t *testing.T) {
	t.Parallel()

	td := t.TempDir()
	base := writeTestFile(t, td, "defconfig", "CONFIG_A=y\n")

	st := NewStack(base)
	st.NoWrites = true
	require.NoError(t, st.LoadAll())

	out := filepath.Join(td, ".config")
	require.ErrorIs(t, st.SaveMerged(out), ErrReadOnly)
	_, err := os.Stat(out)
	require.True(t, os.IsNotExist(err))
}

func TestStackNotLoaded(t *testing.T) {
	t.Parallel()

	st := NewStack("whatever")
	require.ErrorIs(t, st.SaveMerged("x"), ErrWriteConfig)
	assert.Nil(t, st.Merged())
	assert.Nil(t, st.Keys())
}

func TestStackForcedPrefix(t *testing.T) {
	t.Parallel()

	td := t.TempDir()
	// forcing the prefix skips per-file inference entirely
	base := writeTestFile(t, td, "defconfig", "BR2_FOO=y\n")
	frag := writeTestFile(t, td, "frag", "BR2_FOO=n\n")

	st := NewStack(base, frag)
	st.Prefix = "BR2_"
	require.NoError(t, st.LoadAll())

	e, found := st.Get("FOO")
	require.True(t, found)
	v, _ := e.BoolValue()
	assert.False(t, v)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, ErrReadConfig)
}

func TestWriteFileRoundTrip(t *testing.T) {
	t.Parallel()

	td := t.TempDir()

	c, err := NewBuilder().Bool("DEBUG", true).String("NAME", "x").Build()
	require.NoError(t, err)

	fn := filepath.Join(td, "sub", "config")
	require.NoError(t, WriteFile(c, fn))

	buf, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "CONFIG_DEBUG=y\nCONFIG_NAME=\"x\"\n", string(buf))
}
