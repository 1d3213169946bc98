// Package depgraph tracks the first-party import graph of a load.
// It answers the dependency questions module rules and watch mode ask:
// who imports whom, what order to visit packages in, and which packages a
// change reaches.
package depgraph

import (
	"fmt"
	"sort"
)

// Graph is a directed graph of package import paths. Edges point from an
// importer to the package it imports.
type Graph struct {
	paths     map[string]bool
	imports   map[string][]string // importer -> imported
	importers map[string][]string // imported -> importers
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		paths:     make(map[string]bool),
		imports:   make(map[string][]string),
		importers: make(map[string][]string),
	}
}

// Add registers a package path. Adding an existing path is a no-op.
func (g *Graph) Add(path string) {
	if g.paths[path] {
		return
	}
	g.paths[path] = true
	g.imports[path] = []string{}
	g.importers[path] = []string{}
}

// Link records that importer imports imported. Both packages must already
// be added; duplicate links collapse to one.
func (g *Graph) Link(importer, imported string) error {
	if !g.paths[importer] {
		return fmt.Errorf("unknown package %q", importer)
	}
	if !g.paths[imported] {
		return fmt.Errorf("unknown package %q", imported)
	}
	if importer == imported {
		return fmt.Errorf("package %q imports itself", importer)
	}

	if !contains(g.imports[importer], imported) {
		g.imports[importer] = append(g.imports[importer], imported)
	}
	if !contains(g.importers[imported], importer) {
		g.importers[imported] = append(g.importers[imported], importer)
	}
	return nil
}

// Imports returns the packages path imports directly.
func (g *Graph) Imports(path string) []string {
	return g.imports[path]
}

// Importers returns the packages that import path directly.
func (g *Graph) Importers(path string) []string {
	return g.importers[path]
}

// Paths returns every package path in the graph, sorted.
func (g *Graph) Paths() []string {
	paths := make([]string, 0, len(g.paths))
	for path := range g.paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Count returns the number of packages.
func (g *Graph) Count() int {
	return len(g.paths)
}

// LinkCount returns the number of distinct import edges.
func (g *Graph) LinkCount() int {
	count := 0
	for _, deps := range g.imports {
		count += len(deps)
	}
	return count
}

// Cycle returns an import cycle if one exists. The compiler rejects cyclic
// imports, so a cycle here means the loader handed us inconsistent data.
func (g *Graph) Cycle() ([]string, bool) {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	cameFrom := make(map[string]string)

	var cycle []string
	var visit func(path string) bool
	visit = func(path string) bool {
		visited[path] = true
		onStack[path] = true

		for _, dep := range g.imports[path] {
			if !visited[dep] {
				cameFrom[dep] = path
				if visit(dep) {
					return true
				}
			} else if onStack[dep] {
				cycle = []string{dep}
				for cur := path; cur != dep; cur = cameFrom[cur] {
					cycle = append([]string{cur}, cycle...)
				}
				cycle = append([]string{dep}, cycle...)
				return true
			}
		}

		onStack[path] = false
		return false
	}

	for _, path := range g.Paths() {
		if !visited[path] && visit(path) {
			return cycle, true
		}
	}
	return nil, false
}

// Sort returns the packages with every package after the packages it
// imports. Ties break by path, so the order is stable across runs.
func (g *Graph) Sort() ([]string, error) {
	if cycle, found := g.Cycle(); found {
		return nil, fmt.Errorf("import cycle: %v", cycle)
	}

	visited := make(map[string]bool)
	var order []string

	var visit func(path string)
	visit = func(path string) {
		if visited[path] {
			return
		}
		visited[path] = true
		deps := append([]string(nil), g.imports[path]...)
		sort.Strings(deps)
		for _, dep := range deps {
			visit(dep)
		}
		order = append(order, path)
	}

	for _, path := range g.Paths() {
		visit(path)
	}
	return order, nil
}

// Affected returns the changed packages plus everything that transitively
// imports them, sorted. Watch mode relints exactly this set.
func (g *Graph) Affected(changed ...string) []string {
	affected := make(map[string]bool)

	var mark func(path string)
	mark = func(path string) {
		if affected[path] {
			return
		}
		affected[path] = true
		for _, importer := range g.importers[path] {
			mark(importer)
		}
	}

	for _, path := range changed {
		if g.paths[path] {
			mark(path)
		}
	}

	result := make([]string, 0, len(affected))
	for path := range affected {
		result = append(result, path)
	}
	sort.Strings(result)
	return result
}

func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
