package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bintree/internal/session"
	"github.com/san-kum/bintree/internal/tree"
)

const canonicalScript = `
name: canonical
description: canonical tree walkthrough
steps:
  - input: ABC##DE#G##F###
  - input: Recursion-PreOrder
    expect: "A B C D E G F "
  - input: Non-Recursion-InOrder
    expect: "C B E G D F A "
  - input: CountLeafNodes
    expect: "3"
  - input: "#"
  - input: LevelOrder
    expect: ""
`

func TestParseAndRun(t *testing.T) {
	sc, err := Parse([]byte(canonicalScript))
	require.NoError(t, err)
	require.Equal(t, "canonical", sc.Name)
	require.Len(t, sc.Steps, 6)
	require.Nil(t, sc.Steps[0].Expect)
	require.NotNil(t, sc.Steps[5].Expect)

	results, err := Run(sc)
	require.NoError(t, err)
	require.Len(t, results, 6)
	require.True(t, results[0].Result.Built)
	require.Equal(t, "3", results[3].Result.Output)
	require.True(t, results[4].Result.Tree.Empty())
}

func TestRun_ExpectationFailure(t *testing.T) {
	sc, err := Parse([]byte(`
name: wrong
steps:
  - input: AB##C##
  - input: Recursion-PostOrder
    expect: "A B C "
  - input: LevelOrder
`))
	require.NoError(t, err)

	results, err := Run(sc)
	require.True(t, errors.Is(err, ErrExpectation))
	require.ErrorContains(t, err, `got "B C A "`)
	require.Len(t, results, 2)
}

func TestRun_InvalidInputStops(t *testing.T) {
	sc := &Script{Steps: []Step{
		{Input: "A##"},
		{Input: "levelorder"},
		{Input: "LevelOrder"},
	}}
	results, err := Run(sc)
	require.True(t, errors.Is(err, tree.ErrInvalidInput))
	require.ErrorContains(t, err, "step 2")
	require.Len(t, results, 2)
}

func TestRun_StrictBuildFailureContinues(t *testing.T) {
	sc := &Script{Strict: true, Steps: []Step{
		{Input: "A##"},
		{Input: "AB"},
		{Input: "Recursion-PreOrder"},
	}}
	results, err := Run(sc)
	require.NoError(t, err)
	require.True(t, errors.Is(results[1].Err, tree.ErrMalformedEncoding))
	require.Equal(t, "A ", results[2].Result.Output)
}

func TestRun_SessionOptions(t *testing.T) {
	sc := &Script{Steps: []Step{{Input: "CountLeafNodes"}}}
	results, err := Run(sc, session.WithTree(tree.Build("AB##C##")))
	require.NoError(t, err)
	require.Equal(t, "2", results[0].Result.Output)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(canonicalScript), 0644))

	sc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "canonical tree walkthrough", sc.Description)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Parse([]byte("name: empty\n"))
	require.ErrorContains(t, err, "no steps")
}
