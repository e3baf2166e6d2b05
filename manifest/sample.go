package manifest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// DefaultDelim separates the sample id from the rest of a read file name
	DefaultDelim = "_"
	// DefaultPattern selects gzipped fastq files
	DefaultPattern = "*.fastq.gz"
)

// Group is one cohort of expected samples written to its own manifest.
type Group struct {
	Name     string
	Manifest string
	Samples  []string

	lower map[string]int
}

// NewGroup builds the case-folded lookup once; on duplicates the first casing wins.
func NewGroup(name, manifest string, samples []string) *Group {
	var g = &Group{
		Name:     name,
		Manifest: manifest,
		Samples:  samples,
		lower:    make(map[string]int, len(samples)),
	}
	for i, s := range samples {
		var key = strings.ToLower(s)
		if _, ok := g.lower[key]; !ok {
			g.lower[key] = i
		}
	}
	return g
}

// Match reports whether id belongs to g, ignoring case, and returns the
// canonical casing from g.Samples.
func (g *Group) Match(id string) (string, bool) {
	i, ok := g.lower[strings.ToLower(id)]
	if !ok {
		return "", false
	}
	return g.Samples[i], true
}

// SampleIDs enumerates from..to-1 as "<n><suffix>" followed by controls.
func SampleIDs(from, to int, suffix string, controls ...string) (ids []string) {
	for i := from; i < to; i++ {
		ids = append(ids, strconv.Itoa(i)+suffix)
	}
	ids = append(ids, controls...)
	return
}

// DefaultGroups returns the impala and elephant rbcL cohorts with their
// manifests placed in dir.
func DefaultGroups(dir string) []*Group {
	return []*Group{
		NewGroup(
			"impala",
			filepath.Join(dir, "impala_manifest_rbcl.tsv"),
			SampleIDs(25, 49, "-rbcl", "C1-rbcl"),
		),
		NewGroup(
			"elephant",
			filepath.Join(dir, "elephant_manifest_rbcl.tsv"),
			SampleIDs(49, 73, "-rbcl", "C3-rbcl"),
		),
	}
}

// CheckDisjoint fails on the first sample id claimed by two groups.
func CheckDisjoint(groups []*Group) error {
	var owner = make(map[string]string)
	for _, g := range groups {
		for _, s := range g.Samples {
			var key = strings.ToLower(s)
			if name, ok := owner[key]; ok && name != g.Name {
				return fmt.Errorf("sample %q is in both group %s and group %s", s, name, g.Name)
			}
			owner[key] = g.Name
		}
	}
	return nil
}

// SampleID takes the part of a file's base name before the first delim.
func SampleID(name, delim string) string {
	name = baseName(name)
	if delim != "" {
		if i := strings.Index(name, delim); i >= 0 {
			name = name[:i]
		}
	}
	return strings.TrimSpace(name)
}

// baseName strips directories written with either separator, so Windows
// paths are handled on any host.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
