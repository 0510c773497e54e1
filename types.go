package pelagia

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Default diagram dimensions in pixels, matching mermaid-cli's typical canvas.
const (
	DefaultDiagramWidth  = 800
	DefaultDiagramHeight = 600
)

// TOC depth bounds.
const (
	MinTOCDepth     = 1
	MaxTOCDepth     = 6
	DefaultTOCDepth = 3
)

// defaultTimeout bounds each renderer subprocess invocation.
const defaultTimeout = 2 * time.Minute

// Flow direction constants for mermaid flowcharts.
const (
	FlowTopBottom = "TB"
	FlowTopDown   = "TD"
	FlowBottomTop = "BT"
	FlowRightLeft = "RL"
	FlowLeftRight = "LR"
)

// DiagramOptions configures mermaid diagram rendering.
//
// Explicit Width/Height win over Scale: a dimension left at zero falls back
// to the default scaled by Scale (1.0 when unset). FlowDirection overrides
// the direction of flowchart/graph headers and is passed through to the
// renderer, not interpreted here.
type DiagramOptions struct {
	Width         int     // explicit width in pixels (0 = default * scale)
	Height        int     // explicit height in pixels (0 = default * scale)
	Scale         float64 // uniform scale factor (0 = 1.0)
	FlowDirection string  // "TB", "TD", "BT", "RL", "LR" ("" = keep source)
}

// Validate checks that diagram options are within bounds.
func (o DiagramOptions) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Width, validation.Min(0)),
		validation.Field(&o.Height, validation.Min(0)),
		validation.Field(&o.Scale, validation.Min(0.0)),
		validation.Field(&o.FlowDirection, validation.In(
			FlowTopBottom, FlowTopDown, FlowBottomTop, FlowRightLeft, FlowLeftRight,
		)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDiagramOptions, err)
	}
	return nil
}

// effectiveSize resolves the pixel dimensions to pass to the renderer.
// Explicit dimensions are used directly; missing ones take the scaled default
// with a floor of one pixel.
func (o DiagramOptions) effectiveSize() (width, height int) {
	scale := o.Scale
	if scale == 0 {
		scale = 1.0
	}

	width = o.Width
	if width == 0 {
		width = int(float64(DefaultDiagramWidth) * scale)
	}
	height = o.Height
	if height == 0 {
		height = int(float64(DefaultDiagramHeight) * scale)
	}

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// Input contains conversion parameters for a single run.
type Input struct {
	FolderPath string // folder containing markdown files (required)
	StartFile  string // file placed first, relative to folder or absolute (required)
	OutputPath string // output PDF path (required)

	Title    string         // optional PDF title passed to the renderer
	Diagram  DiagramOptions // mermaid sizing and orientation
	TOCDepth int            // heading depth for the TOC (0 = 3)

	WorkDir       string // working directory for artifacts ("" = temp dir); implies retention
	KeepArtifacts bool   // retain intermediate markdown and images after success
}

// Validate checks that required fields are present and valid.
func (in Input) Validate() error {
	if in.FolderPath == "" {
		return fmt.Errorf("%w: folder path", ErrMissingInput)
	}
	if in.StartFile == "" {
		return fmt.Errorf("%w: start file", ErrMissingInput)
	}
	if in.OutputPath == "" {
		return fmt.Errorf("%w: output path", ErrMissingInput)
	}
	if err := in.Diagram.Validate(); err != nil {
		return err
	}
	if err := validateTOCDepth(in.TOCDepth); err != nil {
		return err
	}
	return nil
}

// validateTOCDepth accepts 0 (meaning default) or a value within bounds.
func validateTOCDepth(depth int) error {
	if depth == 0 {
		return nil
	}
	if depth < MinTOCDepth || depth > MaxTOCDepth {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidTOCDepth, depth, MinTOCDepth, MaxTOCDepth)
	}
	return nil
}

// Document is one markdown file flowing through the pipeline: read once,
// rewritten in place, consumed by the assembler.
type Document struct {
	Path    string // absolute path on disk
	Content string // current text, mutated by the rewriters
}

// Result reports the outcome of a successful conversion.
type Result struct {
	OutputPath    string // path of the written PDF
	WorkDir       string // where intermediate artifacts were staged
	ArtifactsKept bool   // whether WorkDir survives the run
	Files         int    // number of markdown files assembled
	Diagrams      int    // number of mermaid blocks rendered
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// WithTimeout sets the per-subprocess timeout for diagram and PDF rendering.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pelagia: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithRunner replaces the subprocess runner (used by tests).
func WithRunner(r CommandRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// WithDependencyCheck replaces the external tool probe (used by tests).
func WithDependencyCheck(check func() error) Option {
	return func(s *Service) {
		s.checkDeps = check
	}
}
