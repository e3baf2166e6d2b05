package manifest

import (
	"log"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// Config holds everything a run needs; nothing is read from the environment.
type Config struct {
	Dir     string
	Pattern string
	Delim   string
	Groups  []*Group
	Paths   PathConverter
	Layout  Layout
}

// DefaultConfig reproduces the rbcL impala/elephant run for dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:     dir,
		Pattern: DefaultPattern,
		Delim:   DefaultDelim,
		Groups:  DefaultGroups(dir),
		Paths:   DefaultPaths,
		Layout:  Single,
	}
}

// Report is what a run found and wrote.
type Report struct {
	Files   []string
	Rows    map[string]int
	Missing []string
}

// Run scans cfg.Dir once, writes every group's manifest in order and
// checks that each expected sample was found.
func Run(cfg Config) (*Report, error) {
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	if cfg.Delim == "" {
		cfg.Delim = DefaultDelim
	}
	if err := CheckDisjoint(cfg.Groups); err != nil {
		return nil, pfx.Err(err)
	}

	log.Printf("Searching for %s files in: %s", cfg.Pattern, cfg.Dir)
	files, err := Scan(cfg.Dir, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	log.Printf("Found %d %s files:", len(files), cfg.Pattern)
	for _, f := range files {
		log.Printf(" - %s", filepath.Base(f))
	}

	var (
		report = &Report{Files: files, Rows: make(map[string]int)}
		w      = Writer{Delim: cfg.Delim, Paths: cfg.Paths, Layout: cfg.Layout}
	)
	for _, g := range cfg.Groups {
		n, err := w.WriteFile(g, files)
		if err != nil {
			return report, err
		}
		report.Rows[g.Name] = n
		log.Printf("%s manifest file created: %s (%d rows)", g.Name, g.Manifest, n)
	}

	report.Missing = Missing(cfg.Groups, files, cfg.Delim)
	if len(report.Missing) > 0 {
		log.Printf("Warning: The following expected samples were not found in the directory:")
		for _, s := range report.Missing {
			log.Printf(" - %s", s)
		}
	} else {
		log.Printf("All expected samples were found.")
	}
	return report, nil
}
