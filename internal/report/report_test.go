package report

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bintree/internal/tree"
)

func TestGenerate(t *testing.T) {
	r := Generate("ABC##DE#G##F###", tree.Build("ABC##DE#G##F###"))

	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	require.Equal(t, 3, r.Stats.Leaves)
	require.Len(t, r.Traversals, len(tree.Orders()))
	require.Equal(t, Traversal{Order: "pre-rec", Output: "A B C D E G F "}, r.Traversals[0])
	require.Equal(t, Traversal{Order: "level", Output: "A B C D E F G "}, r.Traversals[6])
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	r := Generate("AB##C##", tree.Build("AB##C##"))
	require.NoError(t, st.Save(r))

	loaded, err := st.Load(r.ID)
	require.NoError(t, err)
	require.Equal(t, r.Encoding, loaded.Encoding)
	require.Equal(t, r.Stats, loaded.Stats)
	require.Equal(t, r.Traversals, loaded.Traversals)
	require.True(t, r.Timestamp.Equal(loaded.Timestamp))

	// trailing spaces survive the CSV round trip
	rows, err := st.LoadTraversals(r.ID)
	require.NoError(t, err)
	require.Equal(t, r.Traversals, rows)
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	require.NoError(t, err)
	require.Empty(t, runs)

	require.NoError(t, st.Init())
	require.NoError(t, st.Save(Generate("A##", tree.Build("A##"))))
	require.NoError(t, st.Save(Generate("#", tree.Build("#"))))

	// junk is skipped
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "junk"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), nil, 0644))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	r := Generate("A##", tree.Build("A##"))
	require.NoError(t, st.Save(r))

	for _, name := range []string{metadataFile, traversalsFile} {
		if _, err := os.Stat(filepath.Join(dir, r.ID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}

	_, err := st.Load("missing")
	require.Error(t, err)
}

type closeFailWriter struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (w *closeFailWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestWriteAndClose(t *testing.T) {
	errDisk := errors.New("disk full")
	write := func(w io.Writer) error {
		_, err := io.WriteString(w, "order,output\n")
		return err
	}

	w := &closeFailWriter{}
	require.NoError(t, writeAndClose(w, write))
	require.True(t, w.closed)
	require.Equal(t, "order,output\n", w.String())

	// a failure that only shows at close is still reported
	w = &closeFailWriter{closeErr: errDisk}
	err := writeAndClose(w, write)
	require.True(t, errors.Is(err, errDisk))

	// the write error wins, and the file is still closed
	errWrite := errors.New("encode")
	w = &closeFailWriter{closeErr: errDisk}
	err = writeAndClose(w, func(io.Writer) error { return errWrite })
	require.True(t, errors.Is(err, errWrite))
	require.True(t, w.closed)
}
