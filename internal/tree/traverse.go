package tree

import "strings"

// Every traversal writes each visited payload followed by a single space,
// trailing space included. A nil node yields "".

func emit(b *strings.Builder, n *Node) {
	b.WriteByte(n.value)
	b.WriteByte(' ')
}

func PreOrderRecursive(n *Node) string {
	var b strings.Builder
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		emit(&b, n)
		walk(n.left)
		walk(n.right)
	}
	walk(n)
	return b.String()
}

func InOrderRecursive(n *Node) string {
	var b strings.Builder
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.left)
		emit(&b, n)
		walk(n.right)
	}
	walk(n)
	return b.String()
}

func PostOrderRecursive(n *Node) string {
	var b strings.Builder
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		emit(&b, n)
	}
	walk(n)
	return b.String()
}

// PreOrderIterative pops a node, emits it, then pushes right before left so
// the left child is popped first.
func PreOrderIterative(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var st stack[*Node]
	st.push(n)
	for st.len() > 0 {
		cur := st.pop()
		emit(&b, cur)
		if cur.right != nil {
			st.push(cur.right)
		}
		if cur.left != nil {
			st.push(cur.left)
		}
	}
	return b.String()
}

// InOrderIterative descends left pushing ancestors, and on reaching a nil
// left link pops, emits, and continues with the popped node's right child.
func InOrderIterative(n *Node) string {
	var b strings.Builder
	var st stack[*Node]
	cur := n
	for st.len() > 0 || cur != nil {
		if cur != nil {
			st.push(cur)
			cur = cur.left
			continue
		}
		cur = st.pop()
		emit(&b, cur)
		cur = cur.right
	}
	return b.String()
}

// PostOrderIterative uses two stacks. The first pass visits node, right,
// left (left is pushed before right) and records each node on out, which
// then holds the reverse of post-order; draining out restores it.
func PostOrderIterative(n *Node) string {
	if n == nil {
		return ""
	}
	var work, out stack[*Node]
	work.push(n)
	for work.len() > 0 {
		cur := work.pop()
		out.push(cur)
		if cur.left != nil {
			work.push(cur.left)
		}
		if cur.right != nil {
			work.push(cur.right)
		}
	}
	var b strings.Builder
	for out.len() > 0 {
		emit(&b, out.pop())
	}
	return b.String()
}

// LevelOrder is breadth-first, left to right within a level.
func LevelOrder(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var q queue[*Node]
	q.enqueue(n)
	for q.len() > 0 {
		cur := q.dequeue()
		emit(&b, cur)
		if cur.left != nil {
			q.enqueue(cur.left)
		}
		if cur.right != nil {
			q.enqueue(cur.right)
		}
	}
	return b.String()
}

func CountLeafNodes(n *Node) int {
	if n == nil {
		return 0
	}
	if n.left == nil && n.right == nil {
		return 1
	}
	return CountLeafNodes(n.left) + CountLeafNodes(n.right)
}
