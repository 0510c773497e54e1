package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	pelagia "github.com/pelagia-docs/pelagia"
	"github.com/pelagia-docs/pelagia/internal/config"
)

// Sentinel errors for CLI validation.
var (
	ErrMissingFolder  = errors.New("expected exactly one folder argument")
	ErrMissingStart   = errors.New("--start is required")
	ErrMissingOutput  = errors.New("--out is required")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// dispatch routes to a subcommand or, by default, runs a conversion.
func dispatch(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "doctor":
		return runDoctorCmd(args[2:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "pelagia %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		printUsage(env.Stdout)
		return ExitSuccess
	}

	if err := runConvert(ctx, args[1:], env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert parses flags, merges config, and runs the pipeline.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positionals, err := parseConvertFlags(args)
	if err != nil {
		return err
	}
	if len(positionals) != 1 {
		return fmt.Errorf("%w (got %d)", ErrMissingFolder, len(positionals))
	}
	if flags.start == "" {
		return ErrMissingStart
	}
	if flags.out == "" {
		return ErrMissingOutput
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	input := buildInput(positionals[0], flags, cfg)

	timeout, err := resolveTimeout(flags.timeout, cfg)
	if err != nil {
		return err
	}

	var opts []pelagia.Option
	if timeout > 0 {
		opts = append(opts, pelagia.WithTimeout(timeout))
	}
	svc := pelagia.New(opts...)

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %s (start: %s)\n", input.FolderPath, input.StartFile)
	}

	began := env.Now()
	result, err := svc.Convert(ctx, input)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		elapsed := env.Now().Sub(began).Round(time.Millisecond)
		fmt.Fprintf(env.Stderr, "Assembled %d files, rendered %d diagrams in %s\n",
			result.Files, result.Diagrams, elapsed)
		if result.ArtifactsKept {
			fmt.Fprintf(env.Stderr, "Artifacts kept in %s\n", result.WorkDir)
		}
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "wrote: %s\n", result.OutputPath)
	}
	return nil
}

// buildInput merges flags over config defaults; flags win.
func buildInput(folder string, flags *convertFlags, cfg *config.Config) pelagia.Input {
	input := pelagia.Input{
		FolderPath: folder,
		StartFile:  flags.start,
		OutputPath: flags.out,
		Title:      flags.title,
		TOCDepth:   flags.tocDepth,
		Diagram: pelagia.DiagramOptions{
			Width:         flags.mermaid.width,
			Height:        flags.mermaid.height,
			Scale:         flags.mermaid.scale,
			FlowDirection: flags.mermaid.flowDirection,
		},
		WorkDir:       flags.artifacts.workDir,
		KeepArtifacts: flags.artifacts.keep,
	}

	if input.Title == "" {
		input.Title = cfg.Title
	}
	if input.TOCDepth == 0 {
		input.TOCDepth = cfg.TOC.Depth
	}
	if input.Diagram.Width == 0 {
		input.Diagram.Width = cfg.Diagram.Width
	}
	if input.Diagram.Height == 0 {
		input.Diagram.Height = cfg.Diagram.Height
	}
	if input.Diagram.Scale == 0 {
		input.Diagram.Scale = cfg.Diagram.Scale
	}
	if input.Diagram.FlowDirection == "" {
		input.Diagram.FlowDirection = cfg.Diagram.FlowDirection
	}
	if input.WorkDir == "" {
		input.WorkDir = cfg.Artifacts.WorkDir
	}
	if !input.KeepArtifacts {
		input.KeepArtifacts = cfg.Artifacts.Keep
	}
	return input
}

// resolveTimeout picks the flag timeout over the config timeout.
func resolveTimeout(flagValue string, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, flagValue)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	return cfg.ParseTimeout()
}
