package graph

import "sort"

// Components returns the weakly connected components: maximal node sets
// connected when edge direction is ignored. Members are sorted within each
// component, and components are ordered by their first member, so the
// result is identical across runs. Isolated nodes form singleton components.
func (g *Graph) Components() [][]string {
	visited := make(map[string]bool, len(g.nodes))
	var components [][]string

	for _, n := range g.nodes {
		if visited[n.ID] {
			continue
		}

		var members []string
		queue := []string{n.ID}
		visited[n.ID] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			members = append(members, id)
			for _, next := range g.Neighbors(id, Forward) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
			for _, next := range g.Neighbors(id, Reverse) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		sort.Strings(members)
		components = append(components, members)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})
	return components
}
