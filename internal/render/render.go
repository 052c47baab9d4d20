// Package render lays out a tree for drawing. It owns the layout policy and
// nothing else: a Surface receives circles and lines in its own coordinate
// space and decides how they look.
package render

import "github.com/san-kum/bintree/internal/tree"

// Surface is anything a tree can be drawn onto.
type Surface interface {
	// Circle draws a node marker of radius r centered on (x, y).
	Circle(x, y, r float64, label byte)
	Line(x1, y1, x2, y2 float64)
}

// Layout positions the root at (Width/2, Top). Children sit LevelGap below
// their parent, offset horizontally by Width/4 at the first level and by
// half of the parent's offset at every level after that.
type Layout struct {
	Width    float64
	Radius   float64
	Top      float64
	LevelGap float64
}

// DefaultLayout matches the classic window geometry: 30 unit markers, the
// root 50 units from the top and 50 units between levels.
func DefaultLayout(width float64) Layout {
	return Layout{Width: width, Radius: 15, Top: 50, LevelGap: 50}
}

// Draw walks t and draws every node onto s. An empty tree draws nothing.
func Draw(s Surface, t *tree.Tree, l Layout) {
	root := t.Root()
	if root == nil {
		return
	}
	drawNode(s, root, l.Width/2, l.Top, l.Width/4, l)
}

func drawNode(s Surface, n *tree.Node, x, y, offsetX float64, l Layout) {
	s.Circle(x, y, l.Radius, n.Value())

	childY := y + l.LevelGap
	if left := n.Left(); left != nil {
		s.Line(x, y+l.Radius, x-offsetX, childY)
		drawNode(s, left, x-offsetX, childY, offsetX/2, l)
	}
	if right := n.Right(); right != nil {
		s.Line(x, y+l.Radius, x+offsetX, childY)
		drawNode(s, right, x+offsetX, childY, offsetX/2, l)
	}
}

// Height returns the vertical extent Draw needs for t under l.
func Height(t *tree.Tree, l Layout) float64 {
	h := tree.Height(t.Root())
	if h == 0 {
		return 0
	}
	return l.Top + float64(h-1)*l.LevelGap + l.Radius
}
