// Package pelagia converts a folder of interlinked Markdown files into a
// single paginated PDF.
//
// # Quick Start
//
// Create a service and convert a folder:
//
//	svc := pelagia.New()
//	result, err := svc.Convert(ctx, pelagia.Input{
//	    FolderPath: "docs",
//	    StartFile:  "README.md",
//	    OutputPath: "docs.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.OutputPath)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Discovery: recursive scan for .md/.markdown files, rotated so the
//     designated start file comes first
//  2. Diagram rewriting: fenced mermaid blocks rendered to PNG via mmdc and
//     replaced with image references
//  3. Link rewriting: cross-file Markdown links rewritten to in-document
//     anchors matching the identifiers pandoc derives from headings
//  4. Assembly: one Markdown document with a table-of-contents directive and
//     page breaks between files
//  5. PDF rendering via pandoc with the tectonic engine
//
// All stages run sequentially; the only blocking points are the external
// renderer subprocesses, each bounded by the configured timeout.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := pelagia.New(
//	    pelagia.WithTimeout(5 * time.Minute),
//	)
//
// Per-run options are passed via Input: diagram sizing (explicit pixel
// dimensions win over a scale factor), flow-direction hints, TOC depth, and
// artifact retention.
//
// # External Tools
//
// Three binaries must be on PATH: mmdc (mermaid-cli) for diagrams, and the
// pandoc/tectonic pair for typesetting. Their absence is detected before any
// rewriting work and reported with an install hint.
package pelagia
