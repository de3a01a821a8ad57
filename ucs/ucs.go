package ucs

import (
	"fmt"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Search runs uniform-cost search on g from source, expanding neighbors with
// s, until a closed position satisfies goal or the open set is exhausted.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. s must be non-nil (ErrNilStrategy).
//  3. goal must be non-nil (ErrNilGoal).
//  4. every Option must be valid (ErrOptionViolation).
//  5. source must lie inside g (ErrSourceOutOfBounds).
//
// An unreachable goal is not an error: the returned Result has Found == false.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H
//   - Space: O(N)
func Search(g *heightmap.Grid, s adjacency.Strategy, source heightmap.Position, goal Goal, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if s == nil {
		return nil, ErrNilStrategy
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrSourceOutOfBounds, source, g.Height(), g.Width())
	}

	n := g.Height() * g.Width()
	r := &runner{
		grid:     g,
		strategy: s,
		goal:     goal,
		options:  cfg,
		open:     heap.New[entry](byCost),
		bestOpen: make(map[heightmap.Position]int, n),
		closed:   make(map[heightmap.Position]Node, n),
	}
	r.push(Node{Position: source})

	return r.process(), nil
}

// entry is an open-set element; seq breaks cost ties in insertion order.
type entry struct {
	node Node
	seq  uint64
}

// byCost orders entries by cost, then by insertion order.
func byCost(a, b entry) bool {
	if a.node.Cost != b.node.Cost {
		return a.node.Cost < b.node.Cost
	}
	return a.seq < b.seq
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	grid     *heightmap.Grid
	strategy adjacency.Strategy
	goal     Goal
	options  Options

	open     *heap.Heap[entry]
	bestOpen map[heightmap.Position]int // lowest cost queued per not-yet-closed position
	closed   map[heightmap.Position]Node
	seq      uint64
}

// push queues n and records it as the best open cost for its position.
func (r *runner) push(n Node) {
	r.bestOpen[n.Position] = n.Cost
	r.open.Push(entry{node: n, seq: r.seq})
	r.seq++
	r.options.OnPush(n)
}

// process is the main loop: pop the cheapest node, skip it if already closed,
// queue its improvable neighbors, close it and test the goal.
func (r *runner) process() *Result {
	for r.open.Size() > 0 {
		e, _ := r.open.Pop()
		u := e.node
		if _, done := r.closed[u.Position]; done {
			continue // stale duplicate
		}

		r.relax(u)

		r.closed[u.Position] = u
		delete(r.bestOpen, u.Position)
		r.options.OnClose(u)

		if r.goal.Reached(u.Position) {
			return &Result{
				Path:   r.pathTo(u.Position),
				Goal:   u.Position,
				Found:  true,
				Closed: len(r.closed),
			}
		}
	}

	return &Result{Closed: len(r.closed)}
}

// relax pushes every neighbor of u that is not closed, fits under MaxCost, and
// has no open entry at an equal or lower cost.
func (r *runner) relax(u Node) {
	next := u.Cost + 1
	if next > r.options.MaxCost {
		return
	}
	for _, v := range r.strategy.Neighbors(u.Position) {
		if _, done := r.closed[v]; done {
			continue
		}
		if best, queued := r.bestOpen[v]; queued && best <= next {
			continue
		}
		r.push(Node{Position: v, Parent: u.Position, HasParent: true, Cost: next})
	}
}

// pathTo walks Parent links from the closed goal back to the source and
// returns the steps source-first.
func (r *runner) pathTo(goal heightmap.Position) []Step {
	path := make([]Step, 0, r.closed[goal].Cost+1)
	for cur := goal; ; {
		node := r.closed[cur]
		path = append(path, Step{Position: cur, Elevation: r.grid.ElevationAt(cur)})
		if !node.HasParent {
			break
		}
		cur = node.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
