// Package analysis computes all-pairs structural metrics of an unweighted
// core.Graph: connectivity, diameter, average shortest-path length and the
// degree range.
//
// Summarize runs one bfs.BFS per vertex. The first traversal doubles as the
// connectivity test; on a disconnected graph the remaining traversals are
// skipped and Diameter / AvgPathLength are reported as -1 / +Inf.
//
// Complexity:
//
//   - Time:   O(V·(V + E))
//   - Memory: O(V)
package analysis
