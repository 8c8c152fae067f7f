package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "0", FormatWithCommas(0))
	assert.Equal(t, "999", FormatWithCommas(999))
	assert.Equal(t, "1,000", FormatWithCommas(1000))
	assert.Equal(t, "65,535", FormatWithCommas(65535))
	assert.Equal(t, "-1,234,567", FormatWithCommas(-1234567))
}

func TestReadTOMLSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	data := "title = \"x\"\n[oracle]\nlanguage = \"de\"\ncache_size = 12\nmax_errors = \"two\"\n[progress]\nenabled = false\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	sections, err := ReadTOMLSections(path)
	require.NoError(t, err)
	assert.NotContains(t, sections, "title")

	oracle := sections["oracle"]
	lang, ok := oracle.String("language")
	assert.True(t, ok)
	assert.Equal(t, "de", lang)
	size, ok := oracle.Int("cache_size")
	assert.True(t, ok)
	assert.Equal(t, 12, size)
	_, ok = oracle.Int("max_errors")
	assert.False(t, ok, "wrong type")
	_, ok = oracle.String("cache_size")
	assert.False(t, ok, "wrong type")
	_, ok = oracle.Bool("missing")
	assert.False(t, ok)

	enabled, ok := sections["progress"].Bool("enabled")
	assert.True(t, ok)
	assert.False(t, enabled)

	_, ok = sections["absent"].Int("every")
	assert.False(t, ok, "missing section")
}

func TestReadTOMLSectionsSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("[oracle\n"), 0o644))
	_, err := ReadTOMLSections(path)
	assert.Error(t, err)
}

type named struct {
	Name string `toml:"name"`
}

func TestWriteTOMLFileReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.toml")
	require.NoError(t, WriteTOMLFile(path, named{Name: "x"}))
	require.NoError(t, WriteTOMLFile(path, named{Name: "y"}))

	var out named
	require.NoError(t, DecodeTOMLFile(path, &out))
	assert.Equal(t, "y", out.Name)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteTOMLFileKeepsOldOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.toml")
	require.NoError(t, WriteTOMLFile(path, named{Name: "x"}))

	// a channel has no TOML encoding
	assert.Error(t, WriteTOMLFile(path, map[string]any{"c": make(chan int)}))

	var out named
	require.NoError(t, DecodeTOMLFile(path, &out))
	assert.Equal(t, "x", out.Name)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDecodeTOMLFileIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"x\"\ncolour = \"red\"\n"), 0o644))

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	var out named
	require.NoError(t, DecodeTOMLFile(path, &out))
	assert.Equal(t, "x", out.Name)
	assert.Contains(t, buf.String(), "colour")
}

func TestCheckDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	st := CheckDir(dir)
	assert.True(t, st.Exists)
	assert.True(t, st.Writable)
	assert.NoError(t, st.Err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	st = CheckDir(file)
	assert.False(t, st.Writable)
	assert.Error(t, st.Err)
}

func TestAbsPath(t *testing.T) {
	assert.Equal(t, "", AbsPath(""))
	assert.Equal(t, "/etc/x.toml", AbsPath("/etc/x.toml"))
	assert.True(t, filepath.IsAbs(AbsPath("x.toml")))
}

func TestDictionaryPath(t *testing.T) {
	cwd := t.TempDir()
	config := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(config, "data", "en"), 0o755))

	pr := &PathResolver{workingDir: cwd, executableDir: "", configDir: config}
	assert.Equal(t, filepath.Join(config, "data", "en"), pr.DictionaryPath("data", "en"))
	assert.Equal(t, filepath.Join(cwd, "data", "fr"), pr.DictionaryPath("data", "fr"))

	abs := filepath.Join(cwd, "abs")
	assert.Equal(t, []string{filepath.Join(abs, "en")}, pr.Candidates(abs, "en"))
}
