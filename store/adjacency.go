package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/topogen/core"
)

// ErrMalformed is returned when an adjacency file cannot be parsed.
var ErrMalformed = errors.New("store: malformed adjacency file")

// maxLine bounds a single adjacency line.
const maxLine = 1 << 20

// FileName returns "BrownExt.<q>.<r0>.<r1>.adj.txt".
func FileName(q, r0, r1 int) string {
	return fmt.Sprintf("BrownExt.%d.%d.%d.adj.txt", q, r0, r1)
}

// WriteAdjacency writes one line per vertex. A non-empty header is written
// first as a '#' comment.
func WriteAdjacency(w io.Writer, g *core.Graph, header string) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		if _, err := fmt.Fprintf(bw, "# %s\n", header); err != nil {
			return err
		}
	}
	var line []byte
	for v := 0; v < g.Order(); v++ {
		line = line[:0]
		for i, u := range g.Neighbors(v) {
			if i > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(u), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadAdjacency parses the format written by WriteAdjacency. Ids are
// range-checked; symmetry is not enforced.
func ReadAdjacency(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var lists [][]int
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		nbrs := make([]int, 0, len(fields))
		for _, f := range fields {
			u, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, f, ErrMalformed)
			}
			nbrs = append(nbrs, u)
		}
		lists = append(lists, nbrs)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadAdjacency: %w", err)
	}

	g, err := core.FromAdjacency(lists)
	if err != nil {
		return nil, fmt.Errorf("ReadAdjacency: %w: %w", err, ErrMalformed)
	}

	return g, nil
}
