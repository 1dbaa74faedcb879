// Package topogen builds network topologies from Brown polarity graphs.
//
// The base graph ER_q (q a prime power) has optimal order for diameter 2
// and maximum degree q+1. The brownext package grows it by cluster
// replication, trading a little diameter or degree balance for more
// vertices:
//
//	r0 rounds   replicate cluster 0           diameter stays 2
//	r1 rounds   replicate quadric neighbours  diameter becomes 3
//
// Packages:
//
//	gf/        — finite-field arithmetic GF(q) for prime powers q
//	core/      — undirected adjacency-list Graph
//	builder/   — Polarity(q) base graph plus cycle/complete/regular fixtures
//	bfs/       — breadth-first search with depth limits and hooks
//	analysis/  — diameter, average path length, degree range
//	brownext/  — quadrics, cluster layout, extension and validation
//	sweep/     — concurrent validation of random (q, r0, r1) tuples
//	store/     — adjacency files and a SQLite results store
//	config/    — YAML configuration of the CLI
//	cmd/topogen — command-line front end
//
// Quick example:
//
//	gen, _ := brownext.NewGenerator(5)
//	g, _ := gen.Make(2, 0)          // 43 vertices, degree 6..10
//	ok := brownext.Validate(g, 5, 2, 0)
package topogen
