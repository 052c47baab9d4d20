package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/bintree/internal/render"
	"github.com/san-kum/bintree/internal/tree"
)

// SVGStyle controls the colors of the drawing.
type SVGStyle struct {
	Fill   string
	Stroke string
	Line   string
}

// SVG collects node markers and edges as SVG elements. It satisfies
// render.Surface. Edges are kept apart from nodes so that every line is
// painted underneath every circle.
type SVG struct {
	Width, Height int
	Style         SVGStyle
	edges         strings.Builder
	nodes         strings.Builder
}

func NewSVG(width, height int, style SVGStyle) *SVG {
	return &SVG{Width: width, Height: height, Style: style}
}

func (s *SVG) Circle(x, y, r float64, label byte) {
	s.nodes.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="2"/>
`, x, y, r, s.Style.Fill, s.Style.Stroke))
	s.nodes.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-weight="bold">%c</text>
`, x, y, label))
}

func (s *SVG) Line(x1, y1, x2, y2 float64) {
	s.edges.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, x1, y1, x2, y2, s.Style.Line))
}

// String returns the complete SVG document.
func (s *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="white"/>
<g>
`, s.Width, s.Height, s.Width, s.Height))
	sb.WriteString(s.edges.String())
	sb.WriteString(s.nodes.String())
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TreeToSVG draws t with the given layout. The document grows taller than
// height when the tree needs more room.
func TreeToSVG(t *tree.Tree, width, height int, l render.Layout, style SVGStyle) string {
	l.Width = float64(width)
	if need := int(render.Height(t, l) + l.Radius); need > height {
		height = need
	}
	s := NewSVG(width, height, style)
	render.Draw(s, t, l)
	return s.String()
}

// WriteSVG writes the drawing of t to path.
func WriteSVG(path string, t *tree.Tree, width, height int, l render.Layout, style SVGStyle) error {
	doc := TreeToSVG(t, width, height, l, style)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return errors.Wrapf(err, "write svg %s", path)
	}
	return nil
}
