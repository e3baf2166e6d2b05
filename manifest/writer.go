package manifest

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
)

// Layout selects the manifest columns.
type Layout int

const (
	// Single writes one row per read file.
	Single Layout = iota
	// Paired writes one row per sample with forward and reverse reads.
	Paired
)

var headers = map[Layout][]string{
	Single: {"sample-id", "absolute-filepath"},
	Paired: {"sample-id", "forward-absolute-filepath", "reverse-absolute-filepath"},
}

// ParseLayout reads a -layout flag value.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "", "single":
		return Single, nil
	case "paired":
		return Paired, nil
	}
	return Single, fmt.Errorf("unknown layout %q, want single or paired", s)
}

func (l Layout) String() string {
	if l == Paired {
		return "paired"
	}
	return "single"
}

// Entry is one manifest row in the single layout.
type Entry struct {
	SampleID string
	Path     string
	File     string
}

// Writer renders a group's manifest from the scanned files.
type Writer struct {
	Delim  string
	Paths  PathConverter
	Layout Layout
}

func (w Writer) delim() string {
	if w.Delim == "" {
		return DefaultDelim
	}
	return w.Delim
}

// Entries returns one entry per file of g, in ascending file order, with
// the sample id in the group's casing.
func (w Writer) Entries(g *Group, files []string) (entries []Entry) {
	var sorted = append([]string(nil), files...)
	sort.Strings(sorted)
	for _, file := range sorted {
		var id = SampleID(file, w.delim())
		log.Printf("Extracted sample ID: %s", id)
		sampleID, ok := g.Match(id)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			SampleID: sampleID,
			Path:     w.Paths.Convert(file),
			File:     file,
		})
	}
	return
}

// Write emits the header and the rows of g to out with '\n' line endings.
// It returns the number of rows written.
func (w Writer) Write(out io.Writer, g *Group, files []string) (n int, err error) {
	header, ok := headers[w.Layout]
	if !ok {
		return 0, pfx.Err(fmt.Errorf("unknown layout %d", int(w.Layout)))
	}
	var bw = bufio.NewWriter(out)
	if err = writeRow(bw, header...); err != nil {
		return
	}
	switch w.Layout {
	case Paired:
		for _, info := range w.Pairs(g, files) {
			if err = writeRow(bw, info.SampleID, info.Fq1, info.Fq2); err != nil {
				return
			}
			n++
		}
	default:
		for _, entry := range w.Entries(g, files) {
			if err = writeRow(bw, entry.SampleID, entry.Path); err != nil {
				return
			}
			n++
		}
	}
	if err = bw.Flush(); err != nil {
		err = pfx.Err(err)
	}
	return
}

// WriteFile truncates g.Manifest and writes it. The file is closed on
// every path; a failure part way leaves it truncated.
func (w Writer) WriteFile(g *Group, files []string) (n int, err error) {
	f, err := os.Create(g.Manifest)
	if err != nil {
		return 0, pfx.Err(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = pfx.Err(cerr)
		}
	}()
	return w.Write(f, g, files)
}

func writeRow(w io.Writer, cols ...string) error {
	if _, err := io.WriteString(w, strings.Join(cols, "\t")+"\n"); err != nil {
		return pfx.Err(err)
	}
	return nil
}
