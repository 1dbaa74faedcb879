// Package store persists extension outputs.
//
//   - Adjacency files: one line per vertex holding its space-separated
//     neighbour ids, named BrownExt.<q>.<r0>.<r1>.adj.txt under a BrownExt/
//     folder. Lines starting with '#' are comments.
//   - graph6: the compact nauty/gonum encoding, via
//     gonum.org/v1/gonum/graph/encoding/graph6.
//   - SQLite: a results table of sweep outcomes, using the pure-Go
//     modernc.org/sqlite driver. The schema is migrated on Open.
//
// SQLite implements sweep.GraphSink: every built graph is stored in graph6
// form next to its result row. With WithGraphDir it is also written to disk
// and the file path recorded.
package store
