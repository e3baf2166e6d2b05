package manifest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/liserjrqlxue/goUtil/textUtil"
)

// GroupColumns is the header of a group table.
var GroupColumns = []string{"group", "manifest", "from", "to", "suffix", "controls"}

// ReadGroups loads groups from a tab separated table with GroupColumns.
// from and to are both inclusive; controls are comma separated. Relative
// manifest paths are taken from dir.
func ReadGroups(path, dir string) (groups []*Group, err error) {
	if err = checkTable(path); err != nil {
		return nil, err
	}
	rows, title := textUtil.File2MapArray(path, "\t", nil)
	for _, col := range GroupColumns[:2] {
		if !contains(title, col) {
			return nil, pfx.Err(fmt.Errorf("%s: missing column %s", path, col))
		}
	}
	for i, row := range rows {
		if blank(row) {
			continue
		}
		g, err := parseGroup(row, dir)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s row %d: %v", path, i+1, err))
		}
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		return nil, pfx.Err(fmt.Errorf("%s: no groups", path))
	}
	return groups, nil
}

// checkTable rejects what File2MapArray would panic or exit on: an
// unreadable file, an over-long line, or a row wider than the header.
func checkTable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	var (
		scanner = bufio.NewScanner(f)
		width   = -1
	)
	for i := 0; scanner.Scan(); i++ {
		var n = len(strings.Split(scanner.Text(), "\t"))
		if width < 0 {
			width = n
			continue
		}
		if n > width {
			return pfx.Err(fmt.Errorf("%s row %d: %d fields, header has %d", path, i, n, width))
		}
	}
	if err := scanner.Err(); err != nil {
		return pfx.Err(fmt.Errorf("%s: %v", path, err))
	}
	return nil
}

func parseGroup(row map[string]string, dir string) (*Group, error) {
	var name, manifest = strings.TrimSpace(row["group"]), strings.TrimSpace(row["manifest"])
	if name == "" || manifest == "" {
		return nil, fmt.Errorf("group and manifest are required")
	}
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(dir, manifest)
	}

	var samples []string
	from, to := strings.TrimSpace(row["from"]), strings.TrimSpace(row["to"])
	if from != "" || to != "" {
		lo, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("from: %v", err)
		}
		hi, err := strconv.Atoi(to)
		if err != nil {
			return nil, fmt.Errorf("to: %v", err)
		}
		if hi < lo {
			return nil, fmt.Errorf("empty range %d-%d", lo, hi)
		}
		samples = SampleIDs(lo, hi+1, strings.TrimSpace(row["suffix"]))
	}
	for _, control := range strings.Split(row["controls"], ",") {
		if control = strings.TrimSpace(control); control != "" {
			samples = append(samples, control)
		}
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("group %s has no samples", name)
	}
	return NewGroup(name, manifest, samples), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func blank(row map[string]string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
