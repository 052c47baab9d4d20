package tree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestTraversalData runs the golden files under testdata/traversal. Commands:
//
//	build [strict]        builds the tree from the input block
//	traverse order=<name> prints the quoted traversal output
//	leaves                prints the leaf count
//	stats                 prints the shape summary
//	encode                prints the re-serialized tree
func TestTraversalData(t *testing.T) {
	datadriven.RunTest(t, "testdata/traversal", func(t *testing.T, td *datadriven.TestData) string {
		return runTreeCmd(t, td)
	})
}

var current *Tree

func runTreeCmd(t *testing.T, td *datadriven.TestData) string {
	switch td.Cmd {
	case "build":
		input := strings.TrimSpace(td.Input)
		if td.HasArg("strict") {
			tr, err := BuildStrict(input)
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			current = tr
			return "ok"
		}
		current = Build(input)
		return "ok"

	case "traverse":
		var name string
		td.ScanArgs(t, "order", &name)
		o, err := ParseOrder(name)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return fmt.Sprintf("%q", Traverse(o, current.Root()))

	case "leaves":
		return fmt.Sprint(CountLeafNodes(current.Root()))

	case "stats":
		s := Summarize(current)
		return fmt.Sprintf("size=%d height=%d leaves=%d levels=%v", s.Size, s.Height, s.Leaves, s.Levels)

	case "encode":
		return Encode(current)

	default:
		t.Fatalf("unknown command: %s", td.Cmd)
		return ""
	}
}
