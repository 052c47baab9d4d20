package tree

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Valid reports whether every byte of s is an uppercase ASCII letter or the
// sentinel. The empty string is valid.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != Sentinel && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Build parses a pre-order encoding into a new Tree.
//
// Build does not validate s: every byte other than the sentinel becomes a
// payload. Input that ends before every branch is closed yields the partial
// tree built so far, and bytes after the root's encoding are ignored. Use
// BuildStrict to reject both cases.
func Build(s string) *Tree {
	root, _, _ := build(s)
	return &Tree{root: root}
}

// BuildStrict is Build with validation and structural checks. It returns
// ErrInvalidInput for illegal characters and ErrMalformedEncoding when the
// input is truncated or has trailing characters.
func BuildStrict(s string) (*Tree, error) {
	if !Valid(s) {
		return nil, errors.Wrapf(ErrInvalidInput, "build %q", s)
	}
	root, consumed, pending := build(s)
	if pending > 0 {
		return nil, errors.Wrapf(ErrMalformedEncoding,
			"input ends at offset %d with %d unclosed branches", consumed, pending)
	}
	if consumed < len(s) {
		return nil, errors.Wrapf(ErrMalformedEncoding,
			"unexpected trailing input %q at offset %d", s[consumed:], consumed)
	}
	return &Tree{root: root}, nil
}

// build performs the pre-order descent with an explicit stack of child
// slots still waiting to be filled. Popping a slot and consuming one byte is
// exactly one call of the recursive formulation, so the shapes match,
// including on truncated input, where the remaining slots stay nil.
//
// It returns the number of bytes consumed and the number of slots left open.
func build(s string) (root *Node, consumed, pending int) {
	var slots stack[**Node]
	slots.push(&root)
	i := 0
	for slots.len() > 0 && i < len(s) {
		slot := slots.pop()
		c := s[i]
		i++
		if c == Sentinel {
			continue
		}
		n := &Node{value: c}
		*slot = n
		// right first so the left subtree is filled next
		slots.push(&n.right)
		slots.push(&n.left)
	}
	return root, i, slots.len()
}

// Encode serializes t in the form accepted by Build. The empty tree encodes
// as a single sentinel.
func Encode(t *Tree) string {
	var b strings.Builder
	var st stack[*Node]
	st.push(t.Root())
	for st.len() > 0 {
		n := st.pop()
		if n == nil {
			b.WriteByte(Sentinel)
			continue
		}
		b.WriteByte(n.value)
		st.push(n.right)
		st.push(n.left)
	}
	return b.String()
}
