// json.go renders a scene as structured JSON for programmatic consumers
// and custom visualizations.

package render

import (
	"encoding/json"
	"math"
)

// JSONRenderer emits the scene as indented JSON.
type JSONRenderer struct{}

// Name returns the renderer name.
func (r *JSONRenderer) Name() string { return "JSON Renderer" }

// Description explains what the renderer produces.
func (r *JSONRenderer) Description() string {
	return "Renders the scene as JSON for machine consumption"
}

type jsonNode struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Dist   any     `json:"dist"`
	Color  string  `json:"color"`
	Source bool    `json:"source,omitempty"`
	OnPath bool    `json:"on_path,omitempty"`
}

type jsonEdge struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Weight float64  `json:"weight"`
	Kind   EdgeKind `json:"kind"`
	Color  string   `json:"color"`
}

type jsonScene struct {
	Nodes    []jsonNode     `json:"nodes"`
	Edges    []jsonEdge     `json:"edges"`
	Metadata map[string]any `json:"metadata"`
}

// Render serializes the scene with two-space indentation.
func (r *JSONRenderer) Render(s *Scene, opts Options) ([]byte, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	if len(s.Nodes) == 0 {
		return nil, ErrEmptyScene
	}

	doc := jsonScene{
		Nodes: make([]jsonNode, 0, len(s.Nodes)),
		Edges: make([]jsonEdge, 0, len(s.Edges)),
		Metadata: map[string]any{
			"width":      s.Width,
			"height":     s.Height,
			"background": s.Background,
			"source":     s.Source,
			"target":     s.Target,
			"has_cycle":  s.HasCycle,
			"node_count": len(s.Nodes),
			"edge_count": len(s.Edges),
		},
	}
	for _, n := range s.Nodes {
		doc.Nodes = append(doc.Nodes, jsonNode{
			ID:     n.ID,
			X:      n.X,
			Y:      n.Y,
			Dist:   distJSON(n.Dist),
			Color:  n.Color,
			Source: s.Source != "" && n.ID == s.Source,
			OnPath: n.OnPath,
		})
	}
	for _, e := range s.Edges {
		doc.Edges = append(doc.Edges, jsonEdge{
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
			Kind:   e.Kind,
			Color:  e.Kind.Color(),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// distJSON keeps encoding/json happy: +∞ is not a valid JSON number, so
// unreachable distances serialize as the string "unreachable".
func distJSON(d float64) any {
	if math.IsInf(d, +1) {
		return "unreachable"
	}
	return d
}
