package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KylevanWyk101/DADA2-Pipeline-metabarcoding/manifest"
)

func TestNewConfigDefaults(t *testing.T) {
	*dir = "/data"
	*impala = "/out/impala.tsv"
	defer func() { *dir, *impala = ".", "" }()

	cfg, err := newConfig()
	require.NoError(t, err)
	assert.Equal(t, manifest.DefaultPaths, cfg.Paths)
	assert.Equal(t, manifest.Single, cfg.Layout)
	require.Len(t, cfg.Groups, 2)
	assert.Equal(t, "/out/impala.tsv", cfg.Groups[0].Manifest)
	assert.Equal(t, "/data/elephant_manifest_rbcl.tsv", cfg.Groups[1].Manifest)
}

func TestNewConfigGroupTable(t *testing.T) {
	table := filepath.Join(t.TempDir(), "groups.tsv")
	require.NoError(t, os.WriteFile(table, []byte("group\tmanifest\tfrom\tto\tsuffix\tcontrols\n"+
		"impala\ti.tsv\t1\t3\t-its\tC1-its\n"), 0644))
	*groups, *layout = table, "paired"
	defer func() { *groups, *layout = "", "single" }()

	cfg, err := newConfig()
	require.NoError(t, err)
	assert.Equal(t, manifest.Paired, cfg.Layout)
	require.Len(t, cfg.Groups, 1)
	assert.Equal(t, []string{"1-its", "2-its", "3-its", "C1-its"}, cfg.Groups[0].Samples)
}

func TestNewConfigBadLayout(t *testing.T) {
	*layout = "triple"
	defer func() { *layout = "single" }()

	_, err := newConfig()
	assert.Error(t, err)
}
