package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/bintree/internal/tree"
)

type recorder struct {
	ops []string
}

func (r *recorder) Circle(x, y, radius float64, label byte) {
	r.ops = append(r.ops, fmt.Sprintf("circle %c (%g,%g) r=%g", label, x, y, radius))
}

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, fmt.Sprintf("line (%g,%g)-(%g,%g)", x1, y1, x2, y2))
}

func TestDraw_Layout(t *testing.T) {
	rec := &recorder{}
	Draw(rec, tree.Build("ABD##E##C##"), DefaultLayout(400))

	require.Equal(t, []string{
		"circle A (200,50) r=15",
		"line (200,65)-(100,100)",
		"circle B (100,100) r=15",
		"line (100,115)-(50,150)",
		"circle D (50,150) r=15",
		"line (100,115)-(150,150)",
		"circle E (150,150) r=15",
		"line (200,65)-(300,100)",
		"circle C (300,100) r=15",
	}, rec.ops)
}

func TestDraw_CountsMatchTree(t *testing.T) {
	for _, enc := range []string{"A##", "ABC##DE#G##F###", "A#B#C#D##"} {
		rec := &recorder{}
		tr := tree.Build(enc)
		Draw(rec, tr, DefaultLayout(800))

		circles, lines := 0, 0
		for _, op := range rec.ops {
			if op[0] == 'c' {
				circles++
			} else {
				lines++
			}
		}
		size := tree.Size(tr.Root())
		require.Equal(t, size, circles, enc)
		require.Equal(t, size-1, lines, enc)
	}
}

func TestDraw_Empty(t *testing.T) {
	rec := &recorder{}
	Draw(rec, tree.Build("#"), DefaultLayout(400))
	Draw(rec, nil, DefaultLayout(400))
	require.Empty(t, rec.ops)
}

func TestHeight(t *testing.T) {
	l := DefaultLayout(400)
	require.Equal(t, 0.0, Height(tree.Build(""), l))
	require.Equal(t, 65.0, Height(tree.Build("A##"), l))
	require.Equal(t, 265.0, Height(tree.Build("ABC##DE#G##F###"), l))
}
