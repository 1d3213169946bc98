// Package driver loads Go packages and runs the registered lint rules over
// them. It owns everything between a command line pattern and a Result:
// loading, parallel rule execution, inline suppression, and watch mode.
package driver

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/astkit-labs/astkit/internal/depgraph"
	"github.com/astkit-labs/astkit/pkg/lint"
)

// Options configures a Driver.
type Options struct {
	// Patterns are package patterns as the go tool understands them.
	// Empty means ./...
	Patterns []string
	// Dir is the working directory for package loading.
	Dir string
	// Tests includes test files and test packages.
	Tests bool
	// Rules restricts the run to the listed rule IDs when non-empty.
	Rules []string
	// Config carries disabled rules, severity overrides, and rule options.
	Config *lint.Config
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Driver runs lint over a module.
type Driver struct {
	opts     Options
	logger   *slog.Logger
	analyzer *lint.Analyzer

	// Watch-mode state from the most recent load.
	mu    sync.Mutex
	dirs  map[string]string
	graph *depgraph.Graph
}

// New creates a driver. Rules must already be registered; importing
// pkg/lint/rules does that.
func New(opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if len(opts.Patterns) == 0 {
		opts.Patterns = []string{"./..."}
	}
	return &Driver{
		opts:     opts,
		logger:   logger,
		analyzer: lint.NewAnalyzer(effectiveConfig(opts)),
	}
}

// effectiveConfig folds the rule ID filter into the config by disabling
// everything the filter leaves out.
func effectiveConfig(opts Options) *lint.Config {
	config := opts.Config
	if config == nil {
		config = lint.NewConfig()
	}
	if len(opts.Rules) == 0 {
		return config
	}

	allowed := make(map[string]bool, len(opts.Rules))
	for _, id := range opts.Rules {
		allowed[id] = true
	}
	for _, rule := range lint.AllRules() {
		if !allowed[rule.ID] {
			config.Disable(rule.ID)
		}
	}
	return config
}

// Run lints the configured patterns once.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	return d.run(ctx, d.opts.Patterns)
}

func (d *Driver) run(ctx context.Context, patterns []string) (*Result, error) {
	started := time.Now()
	result := &Result{
		RunID:   uuid.New().String(),
		Started: started,
	}
	d.logger.Info("starting lint run", "run_id", result.RunID, "patterns", patterns)

	loaded, err := d.load(ctx, patterns)
	if err != nil {
		return nil, err
	}
	result.Packages = len(loaded.passes)
	result.LoadErrors = loaded.errors

	d.mu.Lock()
	d.dirs = loaded.dirs
	d.graph = loaded.graph
	d.mu.Unlock()

	findings, suppressed := d.runSourceRules(ctx, loaded)
	moduleFindings := d.runModuleRules(loaded)
	findings = append(findings, moduleFindings...)

	findings = dedupe(findings)
	sortFindings(findings)

	result.Findings = findings
	result.Suppressed = suppressed
	result.DurationMS = time.Since(started).Milliseconds()
	result.recount()

	d.logger.Info("lint run finished",
		"run_id", result.RunID,
		"packages", result.Packages,
		"findings", len(result.Findings),
		"suppressed", result.Suppressed,
		"duration_ms", result.DurationMS)

	return result, nil
}

// runSourceRules lints every package, in parallel up to GOMAXPROCS. Each
// package writes into its own slot, so slots need no locking.
func (d *Driver) runSourceRules(ctx context.Context, loaded *load) ([]Finding, int) {
	type slot struct {
		findings   []Finding
		suppressed int
	}
	slots := make([]slot, len(loaded.passes))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, pass := range loaded.passes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sup := newSuppressor(pass.Fset, pass.Files)
			for _, diag := range d.analyzer.Analyze(pass) {
				if sup.suppressed(diag) {
					slots[i].suppressed++
					continue
				}
				slots[i].findings = append(slots[i].findings, d.resolve(pass, diag))
			}
			return nil
		})
	}
	// The only error a worker returns is context cancellation; partial
	// results are still worth reporting.
	if err := eg.Wait(); err != nil {
		d.logger.Debug("source rules interrupted", "error", err)
	}

	var findings []Finding
	suppressed := 0
	for _, s := range slots {
		findings = append(findings, s.findings...)
		suppressed += s.suppressed
	}
	return findings, suppressed
}

// runModuleRules lints the whole load at once.
func (d *Driver) runModuleRules(loaded *load) []Finding {
	view := &moduleView{passes: loaded.passes, graph: loaded.graph}

	var findings []Finding
	for _, diag := range d.analyzer.AnalyzeModule(view) {
		findings = append(findings, Finding{
			RuleID:   diag.RuleID,
			Severity: diag.Severity.String(),
			severity: diag.Severity,
			Message:  diag.Message,
			Package:  diag.FilePath,
			DocURL:   diag.DocumentationURL,
		})
	}
	return findings
}

// resolve turns a diagnostic into a file-positioned finding.
func (d *Driver) resolve(pass *lint.Pass, diag lint.Diagnostic) Finding {
	f := Finding{
		RuleID:   diag.RuleID,
		Severity: diag.Severity.String(),
		severity: diag.Severity,
		Message:  diag.Message,
		DocURL:   diag.DocumentationURL,
	}
	if pass.Pkg != nil {
		f.Package = pass.Pkg.Path()
	}
	if diag.Pos.IsValid() {
		pos := pass.Position(diag.Pos)
		f.File = pos.Filename
		f.Line = pos.Line
		f.Column = pos.Column
	}
	if diag.EndPos.IsValid() {
		end := pass.Position(diag.EndPos)
		f.EndLine = end.Line
		f.EndColumn = end.Column
	}
	for _, rel := range diag.RelatedInfo {
		r := Related{Message: rel.Message}
		if rel.Pos.IsValid() {
			pos := pass.Position(rel.Pos)
			r.File = pos.Filename
			r.Line = pos.Line
			r.Column = pos.Column
		}
		f.Related = append(f.Related, r)
	}
	return f
}

// moduleView adapts a load to the context module rules see.
type moduleView struct {
	passes []*lint.Pass
	graph  *depgraph.Graph
}

func (v *moduleView) Packages() []*lint.Pass         { return v.passes }
func (v *moduleView) Imports(path string) []string   { return v.graph.Imports(path) }
func (v *moduleView) Importers(path string) []string { return v.graph.Importers(path) }
