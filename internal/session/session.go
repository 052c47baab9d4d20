// Package session dispatches textual commands against a held tree.
//
// Input is either one of the command identifiers, run on the current tree,
// or a candidate encoding, which replaces the current tree with a new one.
// Anything else is rejected and ends the session. Deciding what ending means
// is left to the caller.
package session

import (
	"strconv"

	"github.com/agnivade/levenshtein"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/san-kum/bintree/internal/tree"
)

type Command string

const (
	RecursionPreOrder     Command = "Recursion-PreOrder"
	RecursionInOrder      Command = "Recursion-InOrder"
	RecursionPostOrder    Command = "Recursion-PostOrder"
	NonRecursionPreOrder  Command = "Non-Recursion-PreOrder"
	NonRecursionInOrder   Command = "Non-Recursion-InOrder"
	NonRecursionPostOrder Command = "Non-Recursion-PostOrder"
	LevelOrder            Command = "LevelOrder"
	CountLeafNodes        Command = "CountLeafNodes"
)

var commands = []Command{
	RecursionPreOrder,
	RecursionInOrder,
	RecursionPostOrder,
	NonRecursionPreOrder,
	NonRecursionInOrder,
	NonRecursionPostOrder,
	LevelOrder,
	CountLeafNodes,
}

var commandOrders = map[Command]tree.Order{
	RecursionPreOrder:     tree.PreOrderRec,
	RecursionInOrder:      tree.InOrderRec,
	RecursionPostOrder:    tree.PostOrderRec,
	NonRecursionPreOrder:  tree.PreOrderIter,
	NonRecursionInOrder:   tree.InOrderIter,
	NonRecursionPostOrder: tree.PostOrderIter,
	LevelOrder:            tree.LevelOrdered,
}

// maxSuggestDistance bounds how far a typo may be from a command before no
// suggestion is offered.
const maxSuggestDistance = 3

var (
	ErrUnknownCommand = errors.New("session: unknown command")
	ErrSessionEnded   = errors.New("session: ended")
)

// Commands returns the recognized identifiers in their canonical order.
func Commands() []Command {
	return append([]Command(nil), commands...)
}

// CommandNames is Commands as plain strings.
func CommandNames() []string {
	return lo.Map(commands, func(c Command, _ int) string { return string(c) })
}

// Lookup matches input exactly; identifiers are case and punctuation
// sensitive.
func Lookup(input string) (Command, bool) {
	c := Command(input)
	return c, lo.Contains(commands, c)
}

// Hint returns the suggestion attached to a Dispatch error, or "".
func Hint(err error) string {
	return errors.FlattenHints(err)
}

// Suggest returns the command closest to input by edit distance, if any is
// within maxSuggestDistance.
func Suggest(input string) (Command, bool) {
	best := lo.MinBy(commands, func(a, b Command) bool {
		return levenshtein.ComputeDistance(input, string(a)) < levenshtein.ComputeDistance(input, string(b))
	})
	if levenshtein.ComputeDistance(input, string(best)) > maxSuggestDistance {
		return "", false
	}
	return best, true
}

// Execute runs cmd on t without any held state.
func Execute(t *tree.Tree, cmd Command) (string, error) {
	if cmd == CountLeafNodes {
		return strconv.Itoa(tree.CountLeafNodes(t.Root())), nil
	}
	o, ok := commandOrders[cmd]
	if !ok {
		return "", errors.Wrapf(ErrUnknownCommand, "%q", string(cmd))
	}
	return tree.Traverse(o, t.Root()), nil
}

// Result describes what a dispatched input did.
type Result struct {
	Input   string
	Command Command
	Output  string
	// Built is set when the input replaced the current tree.
	Built bool
	Tree  *tree.Tree
}

// Session holds the current tree between commands. It is not safe for
// concurrent use.
type Session struct {
	tree   *tree.Tree
	strict bool
	ended  bool
}

type Option func(*Session)

// WithStrict makes builds reject truncated or trailing input.
func WithStrict(strict bool) Option {
	return func(s *Session) { s.strict = strict }
}

// WithTree starts the session with t instead of the empty tree.
func WithTree(t *tree.Tree) Option {
	return func(s *Session) { s.tree = t }
}

func New(opts ...Option) *Session {
	s := &Session{tree: &tree.Tree{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Tree() *tree.Tree { return s.tree }

func (s *Session) Strict() bool { return s.strict }

// Ended reports whether an invalid input has ended the session.
func (s *Session) Ended() bool { return s.ended }

// Dispatch handles one line of input. Invalid input returns an error
// wrapping tree.ErrInvalidInput, with a hint naming the closest command when
// there is one, and ends the session. A strict-mode build failure is
// returned without ending the session and leaves the current tree in place.
func (s *Session) Dispatch(input string) (Result, error) {
	if s.ended {
		return Result{Input: input}, ErrSessionEnded
	}

	if cmd, ok := Lookup(input); ok {
		out, err := Execute(s.tree, cmd)
		if err != nil {
			return Result{Input: input}, err
		}
		return Result{Input: input, Command: cmd, Output: out, Tree: s.tree}, nil
	}

	if !tree.Valid(input) {
		s.ended = true
		err := errors.Wrapf(tree.ErrInvalidInput, "%q is neither a command nor an encoding", input)
		if cmd, ok := Suggest(input); ok {
			err = errors.WithHintf(err, "did you mean %s?", cmd)
		}
		return Result{Input: input}, err
	}

	var next *tree.Tree
	if s.strict {
		var err error
		if next, err = tree.BuildStrict(input); err != nil {
			return Result{Input: input}, err
		}
	} else {
		next = tree.Build(input)
	}
	s.tree = next
	return Result{Input: input, Built: true, Tree: next}, nil
}
