// render.go is the package entry point: format resolution and the
// deadline-bounded Generate pipeline.

package render

import (
	"context"
	"fmt"
	"strings"
)

// GetRenderer resolves an output format to its renderer. Recognized
// formats, case-insensitive: "svg", "dot" (alias "graphviz"), "ascii"
// (alias "txt") and "json".
func GetRenderer(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "svg":
		return &SVGRenderer{}, nil
	case "dot", "graphviz":
		return &DOTRenderer{}, nil
	case "ascii", "txt":
		return &ASCIIRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Generate validates the scene, resolves the renderer for format and runs
// it under a deadline: the caller's ctx when it carries one, otherwise the
// configured Timeout. A nil ctx means context.Background().
func Generate(ctx context.Context, s *Scene, format string, opts ...Option) ([]byte, error) {
	// 1) Resolve options and context.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2) Validate input before spending any work.
	if s == nil {
		return nil, ErrNilScene
	}
	if len(s.Nodes) == 0 {
		return nil, ErrEmptyScene
	}
	r, err := GetRenderer(format)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	// 3) Bound the render when the caller did not.
	if _, has := ctx.Deadline(); !has && cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	// 4) Render on a worker goroutine so a stuck backend cannot hold the
	// caller past the deadline.
	type result struct {
		data []byte
		err  error
	}
	out := make(chan result, 1)
	go func() {
		data, err := r.Render(s, cfg)
		out <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("render: %s: %w", r.Name(), ctx.Err())
	case res := <-out:
		if res.err != nil {
			return nil, fmt.Errorf("render: %s: %w", r.Name(), res.err)
		}
		return res.data, nil
	}
}
