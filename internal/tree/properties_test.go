package tree_test

import (
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bintree/internal/tree"
)

// randomEncoding writes a well-formed encoding with at most maxDepth levels.
func randomEncoding(rng *rand.Rand, b *strings.Builder, maxDepth int) {
	if maxDepth == 0 || rng.Intn(4) == 0 {
		b.WriteByte(tree.Sentinel)
		return
	}
	b.WriteByte(byte('A' + rng.Intn(26)))
	randomEncoding(rng, b, maxDepth-1)
	randomEncoding(rng, b, maxDepth-1)
}

func randomTrees(seed int64, n int) []string {
	rng := rand.New(rand.NewSource(seed))
	encodings := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var b strings.Builder
		randomEncoding(rng, &b, 1+rng.Intn(12))
		encodings = append(encodings, b.String())
	}
	return encodings
}

var _ = Describe("Traversal engine", func() {
	encodings := append([]string{"#", "A##", "ABC##DE#G##F###", "ABC##DEG####F##"}, randomTrees(7, 200)...)

	It("produces identical output for recursive and iterative variants", func() {
		for _, enc := range encodings {
			root := tree.Build(enc).Root()
			Expect(tree.PreOrderIterative(root)).To(Equal(tree.PreOrderRecursive(root)), enc)
			Expect(tree.InOrderIterative(root)).To(Equal(tree.InOrderRecursive(root)), enc)
			Expect(tree.PostOrderIterative(root)).To(Equal(tree.PostOrderRecursive(root)), enc)
		}
	})

	It("emits every node exactly once in each order", func() {
		for _, enc := range encodings {
			root := tree.Build(enc).Root()
			size := tree.Size(root)
			for _, o := range tree.Orders() {
				Expect(tree.Traverse(o, root)).To(HaveLen(2*size), "%s %s", o, enc)
			}
		}
	})

	It("is idempotent", func() {
		root := tree.Build("ABC##DE#G##F###").Root()
		for _, o := range tree.Orders() {
			first := tree.Traverse(o, root)
			Expect(tree.Traverse(o, root)).To(Equal(first))
		}
		Expect(tree.CountLeafNodes(root)).To(Equal(tree.CountLeafNodes(root)))
	})

	It("counts leaves additively across subtrees", func() {
		for _, enc := range encodings {
			root := tree.Build(enc).Root()
			if root == nil || root.IsLeaf() {
				continue
			}
			Expect(tree.CountLeafNodes(root)).To(Equal(
				tree.CountLeafNodes(root.Left()) + tree.CountLeafNodes(root.Right())))
		}
	})

	It("round-trips well-formed encodings", func() {
		for _, enc := range encodings {
			Expect(tree.Encode(tree.Build(enc))).To(Equal(enc))
			_, err := tree.BuildStrict(enc)
			Expect(err).NotTo(HaveOccurred(), enc)
		}
	})

	DescribeTable("single traversals",
		func(enc string, order tree.Order, want string) {
			Expect(tree.Traverse(order, tree.Build(enc).Root())).To(Equal(want))
		},
		Entry("empty level order", "", tree.LevelOrdered, ""),
		Entry("single node level order", "A##", tree.LevelOrdered, "A "),
		Entry("canonical pre-order", "ABC##DE#G##F###", tree.PreOrderRec, "A B C D E G F "),
		Entry("canonical in-order", "ABC##DE#G##F###", tree.InOrderIter, "C B E G D F A "),
		Entry("left-child example in-order", "ABC##DEG####F##", tree.InOrderRec, "C B G E D A F "),
	)
})

var _ = Describe("Validation", func() {
	DescribeTable("Valid",
		func(input string, want bool) {
			Expect(tree.Valid(input)).To(Equal(want))
		},
		Entry("letters", "ABC", true),
		Entry("letters and sentinels", "A#B", true),
		Entry("lowercase", "ab#", false),
		Entry("empty string", "", true),
	)
})
