package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/astkit-labs/astkit/internal/depgraph"
	"github.com/astkit-labs/astkit/pkg/lint"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// load resolves patterns into type-checked packages, one lint pass per
// package, plus the first-party import graph between them.
type load struct {
	passes []*lint.Pass
	graph  *depgraph.Graph
	dirs   map[string]string // source dir -> package path, for watch mode
	errors []string
}

func (d *Driver) load(ctx context.Context, patterns []string) (*load, error) {
	cfg := &packages.Config{
		Mode:    loadMode,
		Context: ctx,
		Dir:     d.opts.Dir,
		Tests:   d.opts.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %v", patterns)
	}

	result := &load{
		graph: depgraph.New(),
		dirs:  make(map[string]string),
	}

	// With test loading on, a package shows up several times: the plain
	// package, a test-augmented variant, and the synthesized test binary.
	// Keep the variant with the most files per import path and skip the
	// binary outright.
	byPath := make(map[string]*packages.Package)
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.PkgPath, ".test") {
			continue
		}
		for _, loadErr := range pkg.Errors {
			result.errors = append(result.errors, loadErr.Error())
		}
		if len(pkg.Syntax) == 0 {
			continue
		}
		if prev, ok := byPath[pkg.PkgPath]; !ok || len(pkg.Syntax) > len(prev.Syntax) {
			byPath[pkg.PkgPath] = pkg
		}
	}
	if len(byPath) == 0 {
		if len(result.errors) > 0 {
			return nil, fmt.Errorf("no packages loaded: %s", result.errors[0])
		}
		return nil, fmt.Errorf("no Go packages in %v", patterns)
	}

	for path := range byPath {
		result.graph.Add(path)
	}
	for path, pkg := range byPath {
		for _, imported := range pkg.Imports {
			if imported.PkgPath == path {
				continue
			}
			if _, firstParty := byPath[imported.PkgPath]; firstParty {
				_ = result.graph.Link(path, imported.PkgPath)
			}
		}
	}

	// Dependency order keeps output stable and lints libraries before
	// their consumers.
	order, err := result.graph.Sort()
	if err != nil {
		return nil, err
	}
	for _, path := range order {
		pkg := byPath[path]
		result.passes = append(result.passes, lint.NewPass(pkg.Fset, pkg.Syntax, pkg.Types, pkg.TypesInfo))
		for _, file := range pkg.GoFiles {
			result.dirs[filepath.Dir(file)] = path
		}
	}

	d.logger.Debug("loaded packages",
		"patterns", patterns,
		"packages", len(result.passes),
		"edges", result.graph.LinkCount(),
		"load_errors", len(result.errors))

	return result, nil
}
