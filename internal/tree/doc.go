// Package tree provides the binary tree model and its traversal engine.
//
// Trees are built from a pre-order serialization in which '#' marks an
// absent child:
//
//	Tree := '#' | Letter Tree Tree
//
// The package exposes:
//
//   - [Valid]: character-level check of a candidate encoding
//   - [Build]: permissive builder (truncated input yields a partial tree)
//   - [BuildStrict]: builder that rejects truncated or trailing input
//   - [Encode]: the inverse of [Build] for well-formed encodings
//   - recursive and iterative pre-, in- and post-order traversals,
//     [LevelOrder] and [CountLeafNodes]
//
// # Example
//
//	t := tree.Build("ABC##DE#G##F###")
//	tree.PreOrderRecursive(t.Root()) // "A B C D E G F "
//	tree.InOrderIterative(t.Root())  // "C B E G D F A "
//	tree.CountLeafNodes(t.Root())    // 3
//
// # Thread Safety
//
// A built Tree is never mutated, so traversals may run concurrently on the
// same tree. Rebuilding produces a new Tree rather than changing an old one.
package tree
