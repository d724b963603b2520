package graph

import (
	"sort"
	"strings"
)

// dfsFrame is one node on the explicit DFS stack; next indexes into the
// node's sorted forward neighbor list.
type dfsFrame struct {
	id   string
	next int
}

// Cycles detects directed cycles with an iterative three-color depth-first
// search. Each back edge yields the cycle along the current DFS path;
// cycles are canonicalized by rotating the smallest id to the front,
// deduplicated, and returned sorted. The enumeration is not exhaustive over
// all elementary cycles, but every strongly cyclic region reports at least
// one cycle, and a graph without cycles reports none.
func (g *Graph) Cycles() [][]string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current DFS path
		black = 2 // fully explored
	)

	color := make(map[string]int, len(g.nodes))
	pathIdx := make(map[string]int)
	seen := make(map[string]bool)
	var cycles [][]string

	for _, start := range g.nodes {
		if color[start.ID] != white {
			continue
		}

		stack := []dfsFrame{{id: start.ID}}
		color[start.ID] = gray
		pathIdx[start.ID] = 0

		for len(stack) > 0 {
			frame := &stack[len(stack)-1]
			neighbors := g.Neighbors(frame.id, Forward)

			if frame.next >= len(neighbors) {
				color[frame.id] = black
				delete(pathIdx, frame.id)
				stack = stack[:len(stack)-1]
				continue
			}

			next := neighbors[frame.next]
			frame.next++

			switch color[next] {
			case white:
				color[next] = gray
				pathIdx[next] = len(stack)
				stack = append(stack, dfsFrame{id: next})
			case gray:
				// Back edge: the path from next to the stack top closes
				// a cycle.
				cycle := make([]string, 0, len(stack)-pathIdx[next])
				for _, f := range stack[pathIdx[next]:] {
					cycle = append(cycle, f.id)
				}
				cycle = canonicalCycle(cycle)
				key := strings.Join(cycle, "\x00")
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, cycle)
				}
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		a, b := cycles[i], cycles[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return cycles
}

// canonicalCycle rotates the cycle so its lexicographically smallest id
// comes first. Rotations of the same cycle then compare equal.
func canonicalCycle(cycle []string) []string {
	min := 0
	for i, id := range cycle {
		if id < cycle[min] {
			min = i
		}
	}
	out := make([]string, 0, len(cycle))
	out = append(out, cycle[min:]...)
	out = append(out, cycle[:min]...)
	return out
}
