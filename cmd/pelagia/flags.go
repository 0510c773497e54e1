package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// mermaidFlags holds diagram sizing and orientation flags.
type mermaidFlags struct {
	scale         float64
	width         int
	height        int
	flowDirection string
}

// artifactFlags holds intermediate artifact flags.
type artifactFlags struct {
	keep    bool
	workDir string
}

// convertFlags holds all flags for a conversion run.
type convertFlags struct {
	common    commonFlags
	start     string
	out       string
	title     string
	tocDepth  int
	timeout   string
	mermaid   mermaidFlags
	artifacts artifactFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-stage detail")
}

// addMermaidFlags adds diagram flags to a FlagSet.
func addMermaidFlags(fs *flag.FlagSet, f *mermaidFlags) {
	fs.Float64Var(&f.scale, "mermaid-scale", 0, "scale factor for mermaid diagrams (default 1.0)")
	fs.IntVar(&f.width, "mermaid-width", 0, "mermaid width in pixels (default 800)")
	fs.IntVar(&f.height, "mermaid-height", 0, "mermaid height in pixels (default 600)")
	fs.StringVar(&f.flowDirection, "mermaid-flow-direction", "", "flowchart direction: TB, TD, BT, RL, LR")
}

// addArtifactFlags adds artifact retention flags to a FlagSet.
func addArtifactFlags(fs *flag.FlagSet, f *artifactFlags) {
	fs.BoolVar(&f.keep, "keep-artifacts", false, "retain intermediate images and markdown")
	fs.StringVar(&f.workDir, "work-dir", "", "working directory for artifacts (implies retention)")
}

// parseConvertFlags parses conversion flags and returns positional args.
// args excludes the program name.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("pelagia", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVar(&f.start, "start", "", "markdown file to start from (relative to folder, or absolute)")
	fs.StringVar(&f.out, "out", "", "output PDF path")
	fs.StringVar(&f.title, "title", "", "optional PDF title")
	fs.IntVar(&f.tocDepth, "toc-depth", 0, "heading depth for TOC, 1-6 (default 3)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-renderer timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addMermaidFlags(fs, &f.mermaid)
	addArtifactFlags(fs, &f.artifacts)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
