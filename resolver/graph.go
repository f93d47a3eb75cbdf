/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides rule reference resolution.
package resolver

import (
	"fmt"
	"slices"

	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// DependencyGraph represents a directed graph of rule references.
// Traversals visit rule ids in sorted order, so results are deterministic.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
	order        []string
}

// BuildDependencyGraph builds a dependency graph from a list of rules.
// Each rule has an edge to every rule its pattern references, aliased or not.
func BuildDependencyGraph(rules []*rule.Rule) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, r := range rules {
		graph.nodes[r.ID] = true
		graph.order = append(graph.order, r.ID)
	}
	slices.Sort(graph.order)
	graph.order = slices.Compact(graph.order)

	for _, r := range rules {
		deps := extractDependencies(r)
		if len(deps) > 0 {
			graph.dependencies[r.ID] = deps
			for _, dep := range deps {
				graph.dependents[dep] = append(graph.dependents[dep], r.ID)
			}
		}
	}

	return graph
}

// extractDependencies returns the distinct rule ids a rule references, in pattern order.
func extractDependencies(r *rule.Rule) []string {
	var deps []string
	for _, target := range r.Pattern.Targets() {
		if !slices.Contains(deps, target) {
			deps = append(deps, target)
		}
	}
	return deps
}

// Dependencies returns the list of rules that the given rule references.
func (g *DependencyGraph) Dependencies(id string) []string {
	if deps, ok := g.dependencies[id]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the list of rules that reference the given rule.
func (g *DependencyGraph) Dependents(id string) []string {
	if deps, ok := g.dependents[id]; ok {
		return deps
	}
	return []string{}
}

// Has reports whether a rule with the given id is in the graph.
func (g *DependencyGraph) Has(id string) bool {
	return g.nodes[id]
}

// HasCycle returns true if the graph contains a circular reference.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
// The path starts and ends with the same id.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.order {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := slices.Index(path, node)
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(slices.Clone(path[cycleStart:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns rule ids in dependency order (dependencies first).
// Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", rule.ErrCyclicReference, cycle)
	}
	return g.topologicalOrder(g.order), nil
}

// topologicalOrder sorts the given nodes and everything they depend on.
// The graph must be acyclic.
func (g *DependencyGraph) topologicalOrder(nodes []string) []string {
	visited := make(map[string]bool)
	result := make([]string, 0, len(nodes))

	for _, node := range nodes {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	if g.nodes[node] {
		*stack = append(*stack, node)
	}
}

// Components partitions the rules into groups that share no references.
// Each group is sorted; groups are ordered by their first id.
func (g *DependencyGraph) Components() [][]string {
	seen := make(map[string]bool, len(g.order))
	var components [][]string

	for _, start := range g.order {
		if seen[start] {
			continue
		}
		var component []string
		queue := []string{start}
		seen[start] = true
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			component = append(component, node)
			for _, next := range slices.Concat(g.dependencies[node], g.dependents[node]) {
				if g.nodes[next] && !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
		slices.Sort(component)
		components = append(components, component)
	}

	return components
}
