// Package report writes traversal reports for a tree into a data directory
// and reads them back. A report records what the traversals produced; it is
// not a way to store and reload trees.
package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/san-kum/bintree/internal/tree"
)

const (
	metadataFile   = "report.json"
	traversalsFile = "traversals.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Traversal is one row of a report.
type Traversal struct {
	Order  string `json:"order"`
	Output string `json:"output"`
}

type Report struct {
	ID         string      `json:"id"`
	Encoding   string      `json:"encoding"`
	Timestamp  time.Time   `json:"timestamp"`
	Stats      tree.Stats  `json:"stats"`
	Traversals []Traversal `json:"traversals"`
}

// Generate runs every traversal on t.
func Generate(encoding string, t *tree.Tree) *Report {
	r := &Report{
		ID:        uuid.NewString(),
		Encoding:  encoding,
		Timestamp: time.Now().UTC(),
		Stats:     tree.Summarize(t),
	}
	for _, o := range tree.Orders() {
		r.Traversals = append(r.Traversals, Traversal{
			Order:  o.String(),
			Output: tree.Traverse(o, t.Root()),
		})
	}
	return r
}

// Save writes r as <id>/report.json plus <id>/traversals.csv.
func (s *Store) Save(r *Report) error {
	dir := filepath.Join(s.baseDir, r.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create report dir")
	}

	err := createAndWrite(filepath.Join(dir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(r), "encode report")
	})
	if err != nil {
		return err
	}

	return createAndWrite(filepath.Join(dir, traversalsFile), func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"order", "output"}); err != nil {
			return err
		}
		for _, tr := range r.Traversals {
			if err := cw.Write([]string{tr.Order, tr.Output}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

func createAndWrite(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeAndClose(f, write)
}

// writeAndClose runs write against f and always closes f. A close failure is
// reported when write itself succeeded.
func writeAndClose(f io.WriteCloser, write func(io.Writer) error) error {
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close")
}

// List returns every readable report, oldest first. Directories without a
// parseable report.json are skipped.
func (s *Store) List() ([]Report, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Report{}, nil
		}
		return nil, err
	}

	reports := make([]Report, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		r, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		reports = append(reports, *r)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Timestamp.Before(reports[j].Timestamp)
	})
	return reports, nil
}

func (s *Store) Load(id string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, errors.Wrapf(err, "load report %s", id)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrapf(err, "decode report %s", id)
	}
	return &r, nil
}

// LoadTraversals reads the CSV half of a report.
func (s *Store) LoadTraversals(id string) ([]Traversal, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, traversalsFile))
	if err != nil {
		return nil, errors.Wrapf(err, "load traversals %s", id)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Traversal{}, nil
	}

	out := make([]Traversal, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 2 {
			continue
		}
		out = append(out, Traversal{Order: rec[0], Output: rec[1]})
	}
	return out, nil
}
