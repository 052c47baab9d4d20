package viz

import (
	"github.com/san-kum/bintree/internal/render"
	"github.com/san-kum/bintree/internal/tree"
)

// CanvasLayout holds the node geometry used on a Braille canvas, in dots.
type CanvasLayout struct {
	Radius   float64
	Top      float64
	LevelGap float64
}

// DrawTree renders t onto a fresh w x h cell canvas. The layout spans the
// full dot width of the canvas.
func DrawTree(t *tree.Tree, w, h int, cl CanvasLayout) *Canvas {
	c := NewCanvas(w, h)
	render.Draw(c, t, render.Layout{
		Width:    float64(c.DotWidth()),
		Radius:   cl.Radius,
		Top:      cl.Top,
		LevelGap: cl.LevelGap,
	})
	return c
}
