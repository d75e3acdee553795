// ascii.go renders a scene as terminal art: a bordered character grid
// with Bresenham edge lines and symbolic nodes.

package render

import (
	"bytes"
	"math"
)

// ASCIIRenderer emits a terminal-friendly grid drawing.
type ASCIIRenderer struct{}

// Name returns the renderer name.
func (r *ASCIIRenderer) Name() string { return "ASCII Renderer" }

// Description explains what the renderer produces.
func (r *ASCIIRenderer) Description() string {
	return "Renders the scene as ASCII art for terminals and logs"
}

// Render rasterizes the scene into a character grid. Node symbols:
// '@' source, '*' on the reconstructed path, 'o' unreachable, 'O' other.
func (r *ASCIIRenderer) Render(s *Scene, opts Options) ([]byte, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	if len(s.Nodes) == 0 {
		return nil, ErrEmptyScene
	}

	cols := clampInt(int(s.Width/10), 40, 160)
	rows := clampInt(int(s.Height/20), 16, 60)

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	for x := 0; x < cols; x++ {
		grid[0][x], grid[rows-1][x] = '-', '-'
	}
	for y := 0; y < rows; y++ {
		grid[y][0], grid[y][cols-1] = '|', '|'
	}
	grid[0][0], grid[0][cols-1] = '+', '+'
	grid[rows-1][0], grid[rows-1][cols-1] = '+', '+'

	// Scale canvas coordinates into the interior cells.
	gx := func(x float64) int { return clampInt(1+int(x/s.Width*float64(cols-2)), 1, cols-2) }
	gy := func(y float64) int { return clampInt(1+int(y/s.Height*float64(rows-2)), 1, rows-2) }

	nodes := s.byID()

	// Edges first so node symbols and labels win cell conflicts.
	for _, e := range s.Edges {
		from, to := nodes[e.From], nodes[e.To]
		if from == nil || to == nil || e.From == e.To {
			continue
		}
		drawLine(grid, gx(from.X), gy(from.Y), gx(to.X), gy(to.Y))
	}

	for _, n := range s.Nodes {
		x, y := gx(n.X), gy(n.Y)
		grid[y][x] = nodeSymbol(s, n)
		placeLabel(grid, x+2, y, n.ID)
	}

	var buf bytes.Buffer
	buf.WriteString(s.title())
	buf.WriteByte('\n')
	for _, row := range grid {
		buf.WriteString(string(row))
		buf.WriteByte('\n')
	}
	buf.WriteString("legend: @ source  * path  O node  o unreachable  · edge\n")
	if s.HasCycle {
		buf.WriteString("warning: negative ΔG cycle present\n")
	}
	return buf.Bytes(), nil
}

// nodeSymbol picks the grid marker for a node.
func nodeSymbol(s *Scene, n *Node) rune {
	switch {
	case s.Source != "" && n.ID == s.Source:
		return '@'
	case n.OnPath:
		return '*'
	case math.IsInf(n.Dist, +1):
		return 'o'
	default:
		return 'O'
	}
}

// placeLabel writes id to the right of a node, stopping at the border or
// at cells already holding a symbol or another label.
func placeLabel(grid [][]rune, x, y int, id string) {
	for i, ch := range id {
		cx := x + i
		if cx >= len(grid[y])-1 {
			return
		}
		if grid[y][cx] == ' ' || grid[y][cx] == '·' {
			grid[y][cx] = ch
		}
	}
}

// drawLine plots a Bresenham segment with mid-dots. Only blank cells are
// written, so symbols, labels and the border survive crossings.
func drawLine(grid [][]rune, x1, y1, x2, y2 int) {
	dx := absInt(x2 - x1)
	dy := -absInt(y2 - y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	errAcc := dx + dy

	for {
		if y1 >= 0 && y1 < len(grid) && x1 >= 0 && x1 < len(grid[y1]) {
			if grid[y1][x1] == ' ' {
				grid[y1][x1] = '·'
			}
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			if x1 == x2 {
				return
			}
			errAcc += dy
			x1 += sx
		}
		if e2 <= dx {
			if y1 == y2 {
				return
			}
			errAcc += dx
			y1 += sy
		}
	}
}

func clampInt(v, lo, hi int) int { return min(max(v, lo), hi) }

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
