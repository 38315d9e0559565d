// SPDX-License-Identifier: MIT

package core

import "sort"

// Components returns the connected components of the fixture graph as
// ascending handle lists, ordered by their smallest handle. Teams without
// games form singleton components.
//
// Breadth-first from every unvisited handle; O(V+E).
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.teams)
	visited := make([]bool, n)
	queue := make([]int, 0, n)
	var out [][]int
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		comp := []int{}
		for len(queue) > 0 {
			h := queue[0]
			queue = queue[1:]
			comp = append(comp, h)
			for _, ei := range g.adj[h] {
				e := g.edges[ei]
				next := e[0]
				if next == h {
					next = e[1]
				}
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}
