package main

import (
	"flag"
	"log"
	"os"

	simple_util "github.com/liserjrqlxue/simple-util"

	"github.com/KylevanWyk101/DADA2-Pipeline-metabarcoding/manifest"
)

var (
	dir = flag.String(
		"dir",
		".",
		"directory with trimmed reads",
	)
	pattern = flag.String(
		"pattern",
		manifest.DefaultPattern,
		"read file name pattern",
	)
	delim = flag.String(
		"delim",
		manifest.DefaultDelim,
		"sample id delimiter in file names",
	)
	impala = flag.String(
		"impala",
		"",
		"impala manifest, default dir/impala_manifest_rbcl.tsv",
	)
	elephant = flag.String(
		"elephant",
		"",
		"elephant manifest, default dir/elephant_manifest_rbcl.tsv",
	)
	groups = flag.String(
		"groups",
		"",
		"group table:[group manifest from to suffix controls], replaces impala/elephant",
	)
	sourceRoot = flag.String(
		"source-root",
		manifest.DefaultPaths.SourceRoot,
		"windows root to remap",
	)
	targetRoot = flag.String(
		"target-root",
		manifest.DefaultPaths.TargetRoot,
		"wsl mount point for -source-root",
	)
	layout = flag.String(
		"layout",
		"single",
		"manifest layout:[single|paired]",
	)
	logFile = flag.String(
		"log",
		"",
		"output log file",
	)
)

func main() {
	flag.Parse()

	if *logFile != "" {
		logF, err := os.Create(*logFile)
		simple_util.CheckErr(err)
		defer simple_util.DeferClose(logF)
		log.SetOutput(logF)
	}
	log.SetFlags(log.Ldate | log.Ltime)

	cfg, err := newConfig()
	simple_util.CheckErr(err)

	_, err = manifest.Run(cfg)
	simple_util.CheckErr(err)
}

func newConfig() (cfg manifest.Config, err error) {
	cfg = manifest.DefaultConfig(*dir)
	cfg.Pattern = *pattern
	cfg.Delim = *delim
	cfg.Paths = manifest.PathConverter{
		SourceRoot: *sourceRoot,
		TargetRoot: *targetRoot,
	}
	if cfg.Layout, err = manifest.ParseLayout(*layout); err != nil {
		return
	}

	if *groups != "" {
		if !simple_util.FileExists(*groups) {
			log.Fatalf("can not find group table:%s", *groups)
		}
		cfg.Groups, err = manifest.ReadGroups(*groups, *dir)
		return
	}
	for _, g := range cfg.Groups {
		switch {
		case g.Name == "impala" && *impala != "":
			g.Manifest = *impala
		case g.Name == "elephant" && *elephant != "":
			g.Manifest = *elephant
		}
	}
	return
}
