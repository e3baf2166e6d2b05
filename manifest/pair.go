package manifest

import (
	"log"
	"strings"

	"github.com/liserjrqlxue/libIM"
)

// Mate is the read direction of a paired-end file.
type Mate int

const (
	// Forward is the R1 read.
	Forward Mate = iota + 1
	// Reverse is the R2 read.
	Reverse
)

// MateOf looks for an R1/R2 field in a read file name. Names without one
// are treated as forward reads.
func MateOf(name, delim string) Mate {
	name = baseName(name)
	var fields = []string{name}
	if delim != "" {
		fields = strings.Split(name, delim)
	}
	for _, field := range fields[1:] {
		field = strings.SplitN(field, ".", 2)[0]
		switch strings.ToUpper(field) {
		case "R1":
			return Forward
		case "R2":
			return Reverse
		}
	}
	return Forward
}

// Pairs groups the files of g per sample, ordered by each sample's first
// file. Fq1 and Fq2 hold converted paths; a missing mate stays empty.
func (w Writer) Pairs(g *Group, files []string) (pairs []libIM.Info) {
	var index = make(map[string]int)
	for _, entry := range w.Entries(g, files) {
		i, ok := index[entry.SampleID]
		if !ok {
			i = len(pairs)
			index[entry.SampleID] = i
			pairs = append(pairs, libIM.Info{SampleID: entry.SampleID})
		}
		var info = &pairs[i]
		switch MateOf(entry.File, w.delim()) {
		case Reverse:
			if info.Fq2 != "" {
				log.Printf("sample %s has more than one reverse read, keep %s", entry.SampleID, info.Fq2)
				continue
			}
			info.Fq2 = entry.Path
		default:
			if info.Fq1 != "" {
				log.Printf("sample %s has more than one forward read, keep %s", entry.SampleID, info.Fq1)
				continue
			}
			info.Fq1 = entry.Path
		}
	}
	for _, info := range pairs {
		if info.Fq1 == "" || info.Fq2 == "" {
			log.Printf("Warning: sample %s is missing a mate in group %s", info.SampleID, g.Name)
		}
	}
	return
}
