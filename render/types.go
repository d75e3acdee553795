// types.go defines the render sentinels, the edge/node classification
// palette, the Renderer contract and the functional options shared by
// NewScene and Generate.

package render

import (
	"errors"
	"time"
)

var (
	// ErrUnsupportedFormat is returned by GetRenderer (and Generate) when
	// the requested output format has no registered renderer.
	ErrUnsupportedFormat = errors.New("render: unsupported output format")

	// ErrNilScene is returned by Generate when the scene is nil.
	ErrNilScene = errors.New("render: nil scene")

	// ErrEmptyScene is returned when the scene, or the graph it would be
	// built from, contains no nodes.
	ErrEmptyScene = errors.New("render: scene has no nodes")
)

// EdgeKind classifies an edge for presentation purposes.
type EdgeKind string

const (
	// KindPath marks edges on the reconstructed source→target route.
	KindPath EdgeKind = "path"
	// KindCycle marks edges that belong to a detected negative ΔG cycle.
	KindCycle EdgeKind = "cycle"
	// KindNegative marks off-path edges with ΔG < 0.
	KindNegative EdgeKind = "negative"
	// KindPositive marks off-path edges with ΔG ≥ 0.
	KindPositive EdgeKind = "positive"
)

// Color returns the hex color associated with the kind
// (green / black / red / blue).
func (k EdgeKind) Color() string {
	switch k {
	case KindPath:
		return "#1a9850"
	case KindCycle:
		return "#000000"
	case KindNegative:
		return "#d73027"
	default:
		return "#4575b4"
	}
}

// Node palette.
const (
	colorNode        = "#4285f4" // default
	colorSourceNode  = "#f4b400" // analysis source
	colorPathNode    = "#a6d96a" // on the reconstructed path
	colorUnreachable = "#9e9e9e" // distance is +∞
)

// Renderer is one output backend. Render must be side-effect free and
// deterministic for a given scene and options.
type Renderer interface {
	// Render serializes the scene into the backend's format.
	Render(s *Scene, opts Options) ([]byte, error)
	// Name returns a short human-readable renderer name.
	Name() string
	// Description explains what the renderer produces.
	Description() string
}

// Defaults used by DefaultOptions.
const (
	DefaultWidth      = 800.0
	DefaultHeight     = 600.0
	DefaultBackground = "#f8f8f8"
	DefaultNodeSize   = 12.0
	DefaultEdgeWidth  = 1.0
	DefaultFontSize   = 10.0
	DefaultTimeout    = 30 * time.Second
	DefaultSeed       = int64(1)
)

// Options bundles every tunable of scene construction and rendering.
// Geometry (Width/Height/Background/Seed/Layout) is consumed by NewScene
// and baked into the Scene; style and deadline knobs are consumed by the
// renderers and Generate.
type Options struct {
	// Width and Height are the canvas dimensions in abstract pixels.
	Width, Height float64
	// Background is the canvas fill color (hex).
	Background string
	// NodeSize is the node radius in pixels.
	NodeSize float64
	// EdgeWidth is the base stroke width; path edges render at twice it.
	EdgeWidth float64
	// FontSize is the label size in points.
	FontSize float64
	// Timeout bounds Generate when the caller's context has no deadline.
	Timeout time.Duration
	// Seed drives the default force-directed layout. Same seed, same scene.
	Seed int64
	// Layout overrides the default layout algorithm when non-nil.
	Layout LayoutAlgorithm
}

// Option mutates Options (functional-options pattern).
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
// 800×600 canvas, light background, 12px nodes, 30s deadline, seed 1.
func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: DefaultBackground,
		NodeSize:   DefaultNodeSize,
		EdgeWidth:  DefaultEdgeWidth,
		FontSize:   DefaultFontSize,
		Timeout:    DefaultTimeout,
		Seed:       DefaultSeed,
	}
}

// WithDimensions sets the canvas width and height.
// Non-positive values are ignored.
func WithDimensions(width, height float64) Option {
	return func(o *Options) {
		if width > 0 {
			o.Width = width
		}
		if height > 0 {
			o.Height = height
		}
	}
}

// WithBackground sets the canvas background color.
// Empty strings are ignored.
func WithBackground(hex string) Option {
	return func(o *Options) {
		if hex != "" {
			o.Background = hex
		}
	}
}

// WithNodeSize sets the node radius. Non-positive values are ignored.
func WithNodeSize(px float64) Option {
	return func(o *Options) {
		if px > 0 {
			o.NodeSize = px
		}
	}
}

// WithEdgeWidth sets the base edge stroke width.
// Non-positive values are ignored.
func WithEdgeWidth(px float64) Option {
	return func(o *Options) {
		if px > 0 {
			o.EdgeWidth = px
		}
	}
}

// WithFontSize sets the label font size. Non-positive values are ignored.
func WithFontSize(pt float64) Option {
	return func(o *Options) {
		if pt > 0 {
			o.FontSize = pt
		}
	}
}

// WithTimeout sets the Generate deadline. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithSeed fixes the seed of the default force-directed layout.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLayout overrides the layout algorithm. Nil is ignored.
func WithLayout(l LayoutAlgorithm) Option {
	return func(o *Options) {
		if l != nil {
			o.Layout = l
		}
	}
}
