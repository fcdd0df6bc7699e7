package workflow

import (
	"fmt"
	"sort"
)

// DAG is the dependency graph over node ids. Construction rejects
// duplicate ids, unknown references, self-dependencies, and any edge
// that would close a cycle, so a built DAG is always schedulable.
type DAG struct {
	types      map[string]NodeType
	dependsOn  map[string][]string // node -> its dependencies
	dependents map[string][]string // node -> nodes depending on it
}

// NewDAG returns an empty graph.
func NewDAG() *DAG {
	return &DAG{
		types:      make(map[string]NodeType),
		dependsOn:  make(map[string][]string),
		dependents: make(map[string][]string),
	}
}

// AddNode registers a vertex.
func (d *DAG) AddNode(id string, typ NodeType) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrUnknownNode)
	}
	if _, exists := d.types[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, id)
	}
	d.types[id] = typ
	return nil
}

// AddDependency records that node depends on dep. The edge is rejected
// if it would close a cycle, with the offending cycle in the error.
func (d *DAG) AddDependency(node, dep string) error {
	if node == dep {
		return fmt.Errorf("%w: %s", ErrSelfDependency, node)
	}
	if _, ok := d.types[node]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, node)
	}
	if _, ok := d.types[dep]; !ok {
		return fmt.Errorf("%w: %s depends on %s", ErrUnknownDependency, node, dep)
	}

	// Walking dependencies from dep: reaching node means the new edge
	// node->dep closes a cycle.
	if path := d.findPath(dep, node); path != nil {
		cycle := append([]string{node}, path...)
		return &CycleError{Cycle: cycle}
	}

	d.dependsOn[node] = append(d.dependsOn[node], dep)
	d.dependents[dep] = append(d.dependents[dep], node)
	return nil
}

// findPath returns the dependency path from -> ... -> to, or nil.
func (d *DAG) findPath(from, to string) []string {
	if from == to {
		return []string{from}
	}
	seen := map[string]bool{from: true}
	var dfs func(cur string, path []string) []string
	dfs = func(cur string, path []string) []string {
		for _, next := range d.dependsOn[cur] {
			if next == to {
				return append(append(path, cur), to)
			}
			if seen[next] {
				continue
			}
			seen[next] = true
			if found := dfs(next, path); found != nil {
				return found
			}
		}
		return nil
	}
	return dfs(from, []string{})
}

// Len returns the number of nodes.
func (d *DAG) Len() int { return len(d.types) }

// Dependencies returns the direct dependencies of a node.
func (d *DAG) Dependencies(id string) []string {
	return append([]string(nil), d.dependsOn[id]...)
}

// Downstream returns every node transitively depending on id, sorted.
func (d *DAG) Downstream(id string) []string {
	seen := make(map[string]bool)
	var walk func(string)
	walk = func(cur string) {
		for _, dep := range d.dependents[cur] {
			if !seen[dep] {
				seen[dep] = true
				walk(dep)
			}
		}
	}
	walk(id)

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// TopologicalGroups returns the execution waves: every node in a wave
// has all dependencies satisfied by strictly earlier waves. Within a
// topological level, interface nodes are promoted into their own wave
// ahead of their siblings so contracts lock before dependent-adjacent
// work starts. Waves are sorted by node id for determinism.
func (d *DAG) TopologicalGroups() ([][]string, error) {
	indegree := make(map[string]int, len(d.types))
	for id := range d.types {
		indegree[id] = len(d.dependsOn[id])
	}

	var frontier []string
	for id, deg := range indegree {
		if deg == 0 {
			frontier = append(frontier, id)
		}
	}

	var waves [][]string
	placed := 0
	for len(frontier) > 0 {
		var interfaces, rest []string
		for _, id := range frontier {
			if d.types[id] == NodeTypeInterface {
				interfaces = append(interfaces, id)
			} else {
				rest = append(rest, id)
			}
		}
		sort.Strings(interfaces)
		sort.Strings(rest)

		var level []string
		if len(interfaces) > 0 && len(rest) > 0 {
			// Contract lock first: the interface nodes form their own
			// wave and their non-interface siblings wait one wave.
			waves = append(waves, interfaces)
			level = interfaces
			frontier = rest
		} else {
			level = append(append(level, interfaces...), rest...)
			sort.Strings(level)
			waves = append(waves, level)
			frontier = nil
		}

		placed += len(level)
		next := frontier
		for _, id := range level {
			for _, dep := range d.dependents[id] {
				indegree[dep]--
				if indegree[dep] == 0 {
					next = append(next, dep)
				}
			}
		}
		frontier = next
	}

	if placed != len(d.types) {
		// Unreachable when edges come through AddDependency, which
		// rejects cycles; kept as a guard for hand-built graphs.
		var stuck []string
		for id, deg := range indegree {
			if deg > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return nil, &CycleError{Cycle: stuck}
	}
	return waves, nil
}
