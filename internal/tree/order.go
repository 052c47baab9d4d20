package tree

import "github.com/cockroachdb/errors"

// Order names one of the traversal functions.
type Order int

const (
	PreOrderRec Order = iota
	InOrderRec
	PostOrderRec
	PreOrderIter
	InOrderIter
	PostOrderIter
	LevelOrdered
)

var orderNames = [...]string{
	PreOrderRec:   "pre-rec",
	InOrderRec:    "in-rec",
	PostOrderRec:  "post-rec",
	PreOrderIter:  "pre-iter",
	InOrderIter:   "in-iter",
	PostOrderIter: "post-iter",
	LevelOrdered:  "level",
}

var orderFuncs = [...]func(*Node) string{
	PreOrderRec:   PreOrderRecursive,
	InOrderRec:    InOrderRecursive,
	PostOrderRec:  PostOrderRecursive,
	PreOrderIter:  PreOrderIterative,
	InOrderIter:   InOrderIterative,
	PostOrderIter: PostOrderIterative,
	LevelOrdered:  LevelOrder,
}

// Orders lists every traversal in declaration order.
func Orders() []Order {
	orders := make([]Order, len(orderNames))
	for i := range orders {
		orders[i] = Order(i)
	}
	return orders
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "unknown"
	}
	return orderNames[o]
}

// Recursive reports whether o is one of the direct-recursion variants.
func (o Order) Recursive() bool {
	return o == PreOrderRec || o == InOrderRec || o == PostOrderRec
}

// Counterpart returns the other strategy for the same visiting order. Level
// order has no counterpart and returns itself.
func (o Order) Counterpart() Order {
	switch o {
	case PreOrderRec:
		return PreOrderIter
	case InOrderRec:
		return InOrderIter
	case PostOrderRec:
		return PostOrderIter
	case PreOrderIter:
		return PreOrderRec
	case InOrderIter:
		return InOrderRec
	case PostOrderIter:
		return PostOrderRec
	}
	return o
}

// ParseOrder accepts the names produced by Order.String.
func ParseOrder(name string) (Order, error) {
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return 0, errors.Newf("unknown traversal order: %s", name)
}

// Traverse runs the traversal named by o on n.
func Traverse(o Order, n *Node) string {
	if o < 0 || int(o) >= len(orderFuncs) {
		return ""
	}
	return orderFuncs[o](n)
}
