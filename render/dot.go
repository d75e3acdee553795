// dot.go renders a scene as Graphviz DOT carrying the same palette, so
// dot/neato reproduce the diagram outside this package.

package render

import (
	"bytes"
	"fmt"
	"strings"
)

// DOTRenderer emits Graphviz DOT.
type DOTRenderer struct{}

// Name returns the renderer name.
func (r *DOTRenderer) Name() string { return "DOT Renderer" }

// Description explains what the renderer produces.
func (r *DOTRenderer) Description() string {
	return "Renders the scene as Graphviz DOT for processing with Graphviz tools"
}

// Render serializes the scene to DOT. Layout positions are exported as
// pinned pos attributes (honored by neato -n, ignored by dot); the DOT
// y-axis grows upward, hence the flip.
func (r *DOTRenderer) Render(s *Scene, opts Options) ([]byte, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	if len(s.Nodes) == 0 {
		return nil, ErrEmptyScene
	}
	var buf bytes.Buffer

	buf.WriteString("digraph foldpath {\n")
	fmt.Fprintf(&buf, "  graph [bgcolor=\"%s\", label=\"%s\", rankdir=LR, fontsize=%.0f];\n",
		s.Background, dotEscape(s.title()), opts.FontSize*1.2)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fontname=\"Arial\", fontsize=%.0f];\n",
		opts.FontSize)
	fmt.Fprintf(&buf, "  edge [fontname=\"Arial\", fontsize=%.0f];\n", opts.FontSize*0.8)

	for _, n := range s.Nodes {
		fmt.Fprintf(&buf, "  \"%s\" [label=\"%s\\n%s\", fillcolor=\"%s\", width=%.2f, pos=\"%.0f,%.0f!\"];\n",
			dotEscape(n.ID), dotEscape(n.ID), fmtDist(n.Dist), n.Color, opts.NodeSize/20.0, n.X, s.Height-n.Y)
	}
	for _, e := range s.Edges {
		style := "solid"
		if e.Kind == KindCycle {
			style = "dashed"
		}
		penwidth := opts.EdgeWidth
		if e.Kind == KindPath {
			penwidth *= 2
		}
		fmt.Fprintf(&buf, "  \"%s\" -> \"%s\" [label=\"%.2f\", color=\"%s\", style=%s, penwidth=%.1f];\n",
			dotEscape(e.From), dotEscape(e.To), e.Weight, e.Kind.Color(), style, penwidth)
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// dotEscape quotes embedded double quotes for DOT string literals.
func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
