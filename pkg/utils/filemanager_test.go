package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *FileManager {
	t.Helper()
	base := t.TempDir()
	fm := NewFileManager(
		filepath.Join(base, "input"),
		filepath.Join(base, "output"),
		filepath.Join(base, "input_archive"),
		filepath.Join(base, "output_archive"),
	)
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func TestDiscoverInputFiles(t *testing.T) {
	fm := newTestManager(t)

	for _, name := range []string{"b.xml", "a.json", "notes.txt", "c.JSON"} {
		require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, name), []byte("{}"), 0644))
	}

	files, err := fm.DiscoverInputFiles()
	require.NoError(t, err)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	// Sorted, report extensions only, case-insensitive extension match.
	assert.Equal(t, []string{"a.json", "b.xml", "c.JSON"}, names)
}

func TestArchiveInputFile(t *testing.T) {
	fm := newTestManager(t)

	src := filepath.Join(fm.InputDir, "report.json")
	require.NoError(t, os.WriteFile(src, []byte("{}"), 0644))

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.False(t, FileExists(src))
	assert.True(t, FileExists(archived))
	assert.Equal(t, fm.InputArchiveDir, filepath.Dir(archived))
}

func TestArchiveOutputFileKeepsOriginal(t *testing.T) {
	fm := newTestManager(t)

	src := filepath.Join(fm.OutputDir, "report.json")
	require.NoError(t, os.WriteFile(src, []byte("{}"), 0644))

	archived, err := fm.ArchiveOutputFile(src)
	require.NoError(t, err)

	// Output archival copies; the original stays for the consumer.
	assert.True(t, FileExists(src))
	assert.True(t, FileExists(archived))
}

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("{stem}.normalized.json", map[string]string{"stem": "report1"})
	assert.Equal(t, "report1.normalized.json", name)

	// Unresolved date and uuid placeholders are filled in.
	name = GenerateOutputFileName("{stem}_{date}.json", map[string]string{"stem": "r"})
	assert.Regexp(t, `^r_\d{8}\.json$`, name)

	name = GenerateOutputFileName("{uuid}.json", nil)
	assert.Regexp(t, `^[0-9a-f-]{36}\.json$`, name)

	// The .json extension is enforced.
	name = GenerateOutputFileName("{stem}", map[string]string{"stem": "bare"})
	assert.Equal(t, "bare.json", name)
}
