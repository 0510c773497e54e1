package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pelagia <folder> --start <file> --out <path> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a folder of Markdown files into one PDF with a table of")
	fmt.Fprintln(w, "contents, rendered mermaid diagrams, and working internal links.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  folder    Folder containing markdown files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Required flags:")
	fmt.Fprintln(w, "      --start <file>        Markdown file to start from (relative to folder)")
	fmt.Fprintln(w, "      --out <path>          Output PDF path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Optional PDF title")
	fmt.Fprintln(w, "      --toc-depth <n>       Heading depth for TOC, 1-6 (default 3)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mermaid:")
	fmt.Fprintln(w, "      --mermaid-scale <f>   Scale factor for diagrams (default 1.0)")
	fmt.Fprintln(w, "      --mermaid-width <n>   Diagram width in pixels (default 800)")
	fmt.Fprintln(w, "      --mermaid-height <n>  Diagram height in pixels (default 600)")
	fmt.Fprintln(w, "      --mermaid-flow-direction <d>")
	fmt.Fprintln(w, "                            Flowchart direction: TB, TD, BT, RL, LR")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Artifacts:")
	fmt.Fprintln(w, "      --keep-artifacts      Retain intermediate images and markdown")
	fmt.Fprintln(w, "      --work-dir <path>     Working directory (implies retention)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Per-renderer timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-stage detail")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor     Check that mmdc, pandoc, and tectonic are available")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this message")
}
