package transform

import "github.com/matzehuels/vtdesigner/pkg/pool"

// WouldCycle reports whether a structural reference from parent to child
// would create a cycle: child is parent, or child already reaches parent
// through structural references. Missing objects end a path.
func WouldCycle(p *pool.Pool, parent, child pool.ObjectID) bool {
	if parent == child {
		return true
	}

	visited := make(map[pool.ObjectID]bool)
	stack := []pool.ObjectID{child}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == parent {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true

		o, ok := p.Get(id)
		if !ok {
			continue
		}
		for _, c := range pool.Children(o) {
			if !visited[c] {
				stack = append(stack, c)
			}
		}
	}
	return false
}

// FindCycle returns the IDs along one structural cycle, starting and ending
// with the same ID, or nil if the structural graph is acyclic.
func FindCycle(p *pool.Pool) []pool.ObjectID {
	const (
		white = iota
		gray
		black
	)

	color := make(map[pool.ObjectID]int)
	var path, cycle []pool.ObjectID

	var dfs func(id pool.ObjectID) bool
	dfs = func(id pool.ObjectID) bool {
		color[id] = gray
		path = append(path, id)
		if o, ok := p.Get(id); ok {
			for _, child := range pool.Children(o) {
				switch color[child] {
				case white:
					if dfs(child) {
						return true
					}
				case gray:
					for i, v := range path {
						if v == child {
							cycle = append(append(cycle, path[i:]...), child)
							return true
						}
					}
				}
			}
		}
		path = path[:len(path)-1]
		color[id] = black
		return false
	}

	for _, id := range p.IDs() {
		if color[id] == white && dfs(id) {
			return cycle
		}
	}
	return nil
}

// BreakCycles removes every structural back edge found by a depth-first
// search from each object in pool order, and returns how many it removed.
// A back edge is removed by detaching the child from the parent object.
func BreakCycles(p *pool.Pool) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[pool.ObjectID]int)
	var backEdges [][2]pool.ObjectID

	var dfs func(id pool.ObjectID)
	dfs = func(id pool.ObjectID) {
		color[id] = gray
		if o, ok := p.Get(id); ok {
			for _, child := range pool.Children(o) {
				switch color[child] {
				case white:
					dfs(child)
				case gray:
					backEdges = append(backEdges, [2]pool.ObjectID{id, child})
				}
			}
		}
		color[id] = black
	}

	for _, id := range p.IDs() {
		if color[id] == white {
			dfs(id)
		}
	}

	removed := 0
	for _, e := range backEdges {
		if o, ok := p.Get(e[0]); ok && pool.Detach(o, e[1]) {
			removed++
		}
	}
	return removed
}
