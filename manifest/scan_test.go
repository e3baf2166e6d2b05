package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "49-rbcl_R1.fastq.gz"))
	touch(t, filepath.Join(dir, "25-rbcl_R1.fastq.gz"))
	touch(t, filepath.Join(dir, "25-rbcl_R1.cutadapt.log"))
	touch(t, filepath.Join(dir, "nested", "26-rbcl_R1.fastq.gz"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "27-rbcl_R1.fastq.gz"), 0755))

	files, err := Scan(dir, DefaultPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "25-rbcl_R1.fastq.gz"),
		filepath.Join(dir, "49-rbcl_R1.fastq.gz"),
	}, files)
}

func TestScanFollowsSymlinks(t *testing.T) {
	dir, other := t.TempDir(), t.TempDir()
	target := filepath.Join(other, "real.fastq.gz")
	touch(t, target)
	if err := os.Symlink(target, filepath.Join(dir, "25-rbcl_R1.fastq.gz")); err != nil {
		t.Skip("symlinks not supported:", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(other, "gone"), filepath.Join(dir, "26-rbcl_R1.fastq.gz")))

	files, err := Scan(dir, DefaultPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "25-rbcl_R1.fastq.gz")}, files)
}

func TestScanMissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"), DefaultPattern)
	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanBadPattern(t *testing.T) {
	_, err := Scan(t.TempDir(), "[")
	assert.Error(t, err)
}
