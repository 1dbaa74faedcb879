package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/topogen/core"
)

// Folder is the sub-directory holding extension adjacency files.
const Folder = "BrownExt"

// Dir stores adjacency files under <root>/BrownExt.
type Dir struct {
	path string
}

// NewDir creates <root>/BrownExt if needed.
func NewDir(root string) (*Dir, error) {
	p := filepath.Join(root, Folder)
	if err := os.MkdirAll(p, 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", p, err)
	}

	return &Dir{path: p}, nil
}

// Path returns the directory holding the files.
func (d *Dir) Path() string { return d.path }

// Save writes g for (q, r0, r1) atomically and returns the file path.
func (d *Dir) Save(q, r0, r1 int, g *core.Graph) (string, error) {
	dst := filepath.Join(d.path, FileName(q, r0, r1))
	tmp, err := os.CreateTemp(d.path, ".adj-*")
	if err != nil {
		return "", fmt.Errorf("store: save %s: %w", dst, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	header := fmt.Sprintf("q=%d r0=%d r1=%d vertices=%d", q, r0, r1, g.Order())
	if err = WriteAdjacency(tmp, g, header); err != nil {
		tmp.Close()
		return "", fmt.Errorf("store: save %s: %w", dst, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("store: save %s: %w", dst, err)
	}
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("store: save %s: %w", dst, err)
	}

	return dst, nil
}

// Load reads the graph saved for (q, r0, r1).
func (d *Dir) Load(q, r0, r1 int) (*core.Graph, error) {
	f, err := os.Open(filepath.Join(d.path, FileName(q, r0, r1)))
	if err != nil {
		return nil, fmt.Errorf("store: load: %w", err)
	}
	defer f.Close()

	return ReadAdjacency(f)
}
