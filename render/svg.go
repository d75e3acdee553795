// svg.go renders a scene as a standalone SVG document with arrowed,
// color-coded edges, weight labels and a legend.

package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// SVGRenderer emits a standalone SVG document.
type SVGRenderer struct{}

// Name returns the renderer name.
func (r *SVGRenderer) Name() string { return "SVG Renderer" }

// Description explains what the renderer produces.
func (r *SVGRenderer) Description() string {
	return "Renders the scene as a scalable SVG diagram with arrowed, color-coded edges"
}

// Render serializes the scene to SVG. Edges draw under nodes; every edge
// carries an arrowhead matching its classification color and a midpoint
// ΔG label.
func (r *SVGRenderer) Render(s *Scene, opts Options) ([]byte, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	if len(s.Nodes) == 0 {
		return nil, ErrEmptyScene
	}
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)

	// One arrow marker per edge kind so heads match their stroke.
	buf.WriteString("  <defs>\n")
	for _, k := range []EdgeKind{KindPath, KindCycle, KindNegative, KindPositive} {
		fmt.Fprintf(&buf, `    <marker id="arrow-%s" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">`+"\n", k)
		fmt.Fprintf(&buf, `      <path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/>`+"\n", k.Color())
		buf.WriteString("    </marker>\n")
	}
	buf.WriteString("  </defs>\n")

	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.Background)
	fmt.Fprintf(&buf, `  <text x="%.0f" y="%.0f" font-family="Arial" font-size="%.0f" fill="#333333">%s</text>`+"\n",
		opts.FontSize, opts.FontSize*2, opts.FontSize*1.2, xmlEscaper.Replace(s.title()))

	nodes := s.byID()

	// Edges under nodes.
	for _, e := range s.Edges {
		from, to := nodes[e.From], nodes[e.To]
		if from == nil || to == nil {
			continue
		}
		if e.From == e.To {
			r.renderLoop(&buf, from, e, opts)
			continue
		}
		x1, y1, x2, y2 := trimSegment(from.X, from.Y, to.X, to.Y, opts.NodeSize)
		width, dash := edgeStroke(e.Kind, opts.EdgeWidth)
		fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"%s marker-end="url(#arrow-%s)"/>`+"\n",
			x1, y1, x2, y2, e.Kind.Color(), width, dash, e.Kind)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="Arial" font-size="%.0f" fill="#555555" text-anchor="middle">%.2f</text>`+"\n",
			(x1+x2)/2, (y1+y2)/2-3, opts.FontSize*0.8, e.Weight)
	}

	// Nodes and labels.
	for _, n := range s.Nodes {
		fmt.Fprintf(&buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="#333333" stroke-width="1"/>`+"\n",
			n.X, n.Y, opts.NodeSize, n.Color)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="Arial" font-size="%.0f" fill="#333333" text-anchor="middle">%s %s</text>`+"\n",
			n.X, n.Y+opts.NodeSize+opts.FontSize, opts.FontSize, xmlEscaper.Replace(n.ID), fmtDist(n.Dist))
	}

	r.renderLegend(&buf, s, opts)

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// renderLoop draws a self-loop as a small circle tangent to the node,
// with its weight alongside.
func (r *SVGRenderer) renderLoop(buf *bytes.Buffer, n *Node, e *Edge, opts Options) {
	width, dash := edgeStroke(e.Kind, opts.EdgeWidth)
	loopR := opts.NodeSize * 0.9
	cy := n.Y - opts.NodeSize - loopR*0.6
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
		n.X, cy, loopR, e.Kind.Color(), width, dash)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="Arial" font-size="%.0f" fill="#555555" text-anchor="middle">%.2f</text>`+"\n",
		n.X, cy-loopR-2, opts.FontSize*0.8, e.Weight)
}

// renderLegend draws the four-color key in the bottom-left corner.
func (r *SVGRenderer) renderLegend(buf *bytes.Buffer, s *Scene, opts Options) {
	entries := []struct {
		kind  EdgeKind
		label string
	}{
		{KindPath, "path"},
		{KindCycle, "cycle"},
		{KindNegative, "ΔG &lt; 0"},
		{KindPositive, "ΔG ≥ 0"},
	}
	x := opts.FontSize
	y := s.Height - opts.FontSize*float64(len(entries))*1.5
	for i, en := range entries {
		ly := y + float64(i)*opts.FontSize*1.5
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
			x, ly, x+opts.FontSize*2, ly, en.kind.Color())
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="Arial" font-size="%.0f" fill="#333333">%s</text>`+"\n",
			x+opts.FontSize*2.5, ly+opts.FontSize*0.35, opts.FontSize*0.9, en.label)
	}
}

// edgeStroke maps a classification to stroke width and dash style: path
// edges are doubled, cycle edges are dashed.
func edgeStroke(kind EdgeKind, base float64) (width float64, dash string) {
	width = base
	if kind == KindPath {
		width = base * 2
	}
	if kind == KindCycle {
		dash = ` stroke-dasharray="6,3"`
	}
	return width, dash
}

// trimSegment pulls both endpoints in by the node radius so strokes and
// arrowheads meet the circle edge, not its center. Segments too short to
// trim are returned unchanged.
func trimSegment(x1, y1, x2, y2, r float64) (float64, float64, float64, float64) {
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	head := r + 4 // leave room for the arrowhead
	if dist <= r+head {
		return x1, y1, x2, y2
	}
	ux, uy := dx/dist, dy/dist
	return x1 + ux*r, y1 + uy*r, x2 - ux*head, y2 - uy*head
}
