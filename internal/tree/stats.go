package tree

// LevelWidths returns the number of nodes at each depth, root first. The
// empty tree has no levels.
func LevelWidths(n *Node) []int {
	if n == nil {
		return nil
	}
	var widths []int
	var q queue[*Node]
	q.enqueue(n)
	for q.len() > 0 {
		// everything queued now belongs to the same level
		width := q.len()
		widths = append(widths, width)
		for i := 0; i < width; i++ {
			cur := q.dequeue()
			if cur.left != nil {
				q.enqueue(cur.left)
			}
			if cur.right != nil {
				q.enqueue(cur.right)
			}
		}
	}
	return widths
}

// Height is the number of levels: 0 for the empty tree, 1 for a lone root.
func Height(n *Node) int {
	return len(LevelWidths(n))
}

func Size(n *Node) int {
	size := 0
	for _, w := range LevelWidths(n) {
		size += w
	}
	return size
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Size   int   `json:"size"`
	Height int   `json:"height"`
	Leaves int   `json:"leaves"`
	Levels []int `json:"levels"`
}

func Summarize(t *Tree) Stats {
	levels := LevelWidths(t.Root())
	size := 0
	for _, w := range levels {
		size += w
	}
	return Stats{
		Size:   size,
		Height: len(levels),
		Leaves: CountLeafNodes(t.Root()),
		Levels: levels,
	}
}
