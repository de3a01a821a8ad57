// Package ucs implements uniform-cost search over a heightmap.Grid: Dijkstra's
// algorithm specialised to unit edge weights, driven by a cost-ordered
// priority queue and parameterised by an adjacency.Strategy and a Goal.
//
// What
//
//   - Search finds a minimum-step path from a source cell to the first cell,
//     in increasing-cost order, that satisfies the Goal.
//   - The open set is a min-heap of Nodes keyed by (Cost, insertion order).
//     Equal-cost entries pop first-in first-out, so the returned path is
//     reproducible for a given grid, strategy and neighbor order.
//   - The closed set maps each finalised Position to the Node that closed it;
//     a position is closed at most once and never reopened. Paths are rebuilt
//     by following Parent positions through the closed set.
//   - Distances computes the full breadth-first distance field from a source,
//     handy for oracles and for callers that need every distance at once.
//
// Outcomes
//
//   - Found == true: Path holds (Position, Elevation) pairs source-first and
//     Steps() == len(Path)-1 (0 when the source itself is a goal).
//   - Found == false: no reachable cell satisfies the Goal under the active
//     strategy (or within MaxCost). This is a result, not an error.
//   - error: only caller mistakes (nil grid, strategy or goal, a source
//     outside the grid, an invalid option).
//
// Options
//
//   - WithMaxCost(n):  never expand beyond n steps from the source.
//   - WithOnPush(fn):  observe every node pushed onto the open set.
//   - WithOnClose(fn): observe every node as it is closed.
//
// Complexity (N = W×H cells)
//
//   - Time:   O(N log N)  each cell is pushed at most once per improving cost
//     and closed once; heap operations cost O(log N).
//   - Memory: O(N)        open set, closed set and best-open-cost map.
//
// Concurrency
//
//	Search allocates its open and closed sets per call and never mutates the
//	grid, so concurrent searches over one shared grid need no locking.
package ucs
