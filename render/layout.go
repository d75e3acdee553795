// layout.go assigns canvas positions to scene nodes. Two algorithms ship:
// a Fruchterman-Reingold force simulation for arbitrary graphs and a
// straight left-to-right layout for sequential residue chains.

package render

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// LayoutAlgorithm positions scene nodes. The lifecycle is
// Initialize once, Step until it reports true (stable or out of
// iterations), then Apply to write positions back into the scene.
type LayoutAlgorithm interface {
	Initialize(s *Scene)
	// Step advances the simulation one tick and reports whether the
	// layout is finished.
	Step() bool
	Apply(s *Scene)
	Name() string
}

// Step cap of the runLayout driver, a backstop above the algorithms' own
// iteration limits.
const layoutStepCap = 250

// runLayout drives a layout over a scene to completion.
func runLayout(l LayoutAlgorithm, s *Scene) {
	l.Initialize(s)
	for i := 0; i < layoutStepCap; i++ {
		if l.Step() {
			break
		}
	}
	l.Apply(s)
}

// layoutVec is a reusable 2-D quantity (position, velocity or force).
type layoutVec struct{ x, y float64 }

// ForceDirectedLayout is a Fruchterman-Reingold simulation: nodes repel
// each other, edges pull their endpoints together, a weak gravity keeps
// disconnected components on canvas, and simulated annealing settles the
// system. Initial placement is a circle perturbed by seeded opensimplex
// noise, so the whole run is deterministic for a given seed.
//
// Not safe for concurrent use; build one per scene.
type ForceDirectedLayout struct {
	seed  int64
	noise opensimplex.Noise

	width, height float64
	k             float64 // optimal vertex spacing, √(area/|V|)

	maxIterations   int
	iteration       int
	temperature     float64
	energyThreshold float64
	stable          bool

	gravity   float64
	repulsion float64
	spring    float64
	damping   float64

	order []string
	pos   map[string]layoutVec
	vel   map[string]layoutVec
	// adj sums |ΔG| between unordered endpoint pairs; heavier bonds
	// pull tighter.
	adj map[edgePair]float64
}

// NewForceDirectedLayout returns a simulation with the standard physics
// constants. The seed fixes the initial placement.
func NewForceDirectedLayout(seed int64) *ForceDirectedLayout {
	return &ForceDirectedLayout{
		seed:            seed,
		noise:           opensimplex.New(seed),
		maxIterations:   100,
		temperature:     1.0,
		energyThreshold: 0.001,
		gravity:         0.05,
		repulsion:       100.0,
		spring:          0.04,
		damping:         0.9,
	}
}

// Name identifies the algorithm in logs and JSON output.
func (fd *ForceDirectedLayout) Name() string { return "force-directed" }

// Initialize sizes the simulation to the scene and seeds node positions
// on a noise-perturbed circle. The perturbation breaks the rotational
// symmetry that would otherwise stall the repulsion pass.
func (fd *ForceDirectedLayout) Initialize(s *Scene) {
	fd.width = s.Width
	fd.height = s.Height
	fd.iteration = 0
	fd.temperature = 1.0
	fd.stable = false

	n := len(s.Nodes)
	if n == 0 {
		fd.order = nil
		return
	}
	fd.k = math.Sqrt(fd.width * fd.height / float64(n))

	fd.order = make([]string, 0, n)
	fd.pos = make(map[string]layoutVec, n)
	fd.vel = make(map[string]layoutVec, n)

	cx, cy := fd.width/2, fd.height/2
	radius := 0.35 * math.Min(fd.width, fd.height)
	for i, node := range s.Nodes {
		angle := 2 * math.Pi * float64(i) / float64(n)
		jx := fd.noise.Eval2(float64(i)*0.83, 0.25) * fd.k * 0.5
		jy := fd.noise.Eval2(0.25, float64(i)*0.83) * fd.k * 0.5
		fd.order = append(fd.order, node.ID)
		fd.pos[node.ID] = layoutVec{
			x: cx + radius*math.Cos(angle) + jx,
			y: cy + radius*math.Sin(angle) + jy,
		}
		fd.vel[node.ID] = layoutVec{}
	}

	// Attraction acts on unordered pairs; self-loops have no geometry.
	fd.adj = make(map[edgePair]float64)
	for _, e := range s.Edges {
		if e.From == e.To {
			continue
		}
		p := edgePair{e.From, e.To}
		if e.To < e.From {
			p = edgePair{e.To, e.From}
		}
		fd.adj[p] += math.Abs(e.Weight)
	}
}

// Step runs one simulation tick and reports whether the layout settled
// (average displacement below the energy threshold) or ran out of
// iterations.
func (fd *ForceDirectedLayout) Step() bool {
	if len(fd.order) == 0 || fd.stable || fd.iteration >= fd.maxIterations {
		return true
	}

	forces := make(map[string]layoutVec, len(fd.order))
	cx, cy := fd.width/2, fd.height/2
	short := math.Min(fd.width, fd.height)

	// 1) Gravity toward the canvas center, stronger the farther out.
	for _, id := range fd.order {
		p := fd.pos[id]
		dx, dy := cx-p.x, cy-p.y
		dist := math.Max(0.1, math.Hypot(dx, dy))
		pull := fd.gravity * (dist / short)
		forces[id] = layoutVec{x: dx * pull, y: dy * pull}
	}

	// 2) Pairwise repulsion, F = k²/d.
	for i, a := range fd.order {
		pa := fd.pos[a]
		for _, b := range fd.order[i+1:] {
			pb := fd.pos[b]
			dx, dy := pa.x-pb.x, pa.y-pb.y
			dist := math.Max(0.1, math.Hypot(dx, dy))
			f := (fd.k * fd.k / dist) * fd.repulsion / 100.0
			ux, uy := dx/dist, dy/dist
			fa, fb := forces[a], forces[b]
			forces[a] = layoutVec{x: fa.x + ux*f, y: fa.y + uy*f}
			forces[b] = layoutVec{x: fb.x - ux*f, y: fb.y - uy*f}
		}
	}

	// 3) Attraction along edges, F = d²/k, boosted by bond strength and
	// capped so an outlier ΔG cannot fold the diagram.
	for p, sumW := range fd.adj {
		pa, pb := fd.pos[p.from], fd.pos[p.to]
		dx, dy := pb.x-pa.x, pb.y-pa.y
		dist := math.Max(0.1, math.Hypot(dx, dy))
		f := dist * dist / fd.k * fd.spring
		f *= 1.0 + 0.25*math.Min(sumW, 4.0)
		ux, uy := dx/dist, dy/dist
		fa, fb := forces[p.from], forces[p.to]
		forces[p.from] = layoutVec{x: fa.x + ux*f, y: fa.y + uy*f}
		forces[p.to] = layoutVec{x: fb.x - ux*f, y: fb.y - uy*f}
	}

	// 4) Integrate with temperature limiting and damping, clamp to the
	// canvas, and measure the remaining energy.
	totalEnergy := 0.0
	padding := fd.k * 0.5
	for _, id := range fd.order {
		f := forces[id]
		mag := math.Hypot(f.x, f.y)
		if mag > 0 {
			scale := math.Min(mag, fd.temperature) / mag
			f.x *= scale
			f.y *= scale
		}

		v := fd.vel[id]
		v.x = (v.x + f.x) * fd.damping
		v.y = (v.y + f.y) * fd.damping
		fd.vel[id] = v

		p := fd.pos[id]
		p.x = math.Max(padding, math.Min(fd.width-padding, p.x+v.x))
		p.y = math.Max(padding, math.Min(fd.height-padding, p.y+v.y))
		fd.pos[id] = p

		totalEnergy += mag
	}

	// 5) Cool and test for convergence.
	fd.temperature *= 0.95
	fd.stable = totalEnergy/float64(len(fd.order)) < fd.energyThreshold
	fd.iteration++
	return fd.stable
}

// Apply writes the simulated positions back into the scene.
func (fd *ForceDirectedLayout) Apply(s *Scene) {
	for _, n := range s.Nodes {
		if p, ok := fd.pos[n.ID]; ok {
			n.X = p.x
			n.Y = p.y
		}
	}
}

// ChainLayout places nodes on a horizontal line in insertion order. For
// sequential residue chains this reads like the original backbone:
// N-terminus on the left, C-terminus on the right.
type ChainLayout struct {
	width, height float64
	count         int
}

// NewChainLayout returns the left-to-right layout.
func NewChainLayout() *ChainLayout { return &ChainLayout{} }

// Name identifies the algorithm in logs and JSON output.
func (cl *ChainLayout) Name() string { return "chain" }

// Initialize records the scene geometry.
func (cl *ChainLayout) Initialize(s *Scene) {
	cl.width = s.Width
	cl.height = s.Height
	cl.count = len(s.Nodes)
}

// Step reports true immediately: the layout is closed-form.
func (cl *ChainLayout) Step() bool { return true }

// Apply spaces nodes evenly across the horizontal midline.
func (cl *ChainLayout) Apply(s *Scene) {
	if cl.count == 0 {
		return
	}
	margin := cl.width * 0.08
	y := cl.height / 2
	if cl.count == 1 {
		s.Nodes[0].X = cl.width / 2
		s.Nodes[0].Y = y
		return
	}
	span := cl.width - 2*margin
	step := span / float64(cl.count-1)
	for i, n := range s.Nodes {
		n.X = margin + float64(i)*step
		n.Y = y
	}
}
