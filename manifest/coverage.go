package manifest

import "strings"

// Missing lists, in group order and as spelled in the group, the expected samples
// with no file among files. Files are matched whatever group they fall in.
func Missing(groups []*Group, files []string, delim string) (missing []string) {
	var found = make(map[string]bool, len(files))
	for _, file := range files {
		found[strings.ToLower(SampleID(file, delim))] = true
	}
	for _, g := range groups {
		for _, s := range g.Samples {
			if !found[strings.ToLower(s)] {
				missing = append(missing, s)
			}
		}
	}
	return
}
