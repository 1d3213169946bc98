package driver

import (
	"sort"
	"time"

	"github.com/astkit-labs/astkit/pkg/lint"
)

// Finding is a diagnostic resolved to file coordinates, ready to render or
// serialize. Module-level findings carry a package path and no file.
type Finding struct {
	RuleID    string    `json:"rule_id"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Package   string    `json:"package"`
	File      string    `json:"file,omitempty"`
	Line      int       `json:"line,omitempty"`
	Column    int       `json:"column,omitempty"`
	EndLine   int       `json:"end_line,omitempty"`
	EndColumn int       `json:"end_column,omitempty"`
	DocURL    string    `json:"doc_url,omitempty"`
	Related   []Related `json:"related,omitempty"`

	severity lint.Severity
}

// Related points at a second location that explains a finding.
type Related struct {
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Message string `json:"message"`
}

// Result is the outcome of one lint run.
type Result struct {
	RunID      string         `json:"run_id"`
	Started    time.Time      `json:"started_at"`
	DurationMS int64          `json:"duration_ms"`
	Packages   int            `json:"packages"`
	Findings   []Finding      `json:"findings"`
	Counts     map[string]int `json:"counts"`
	Suppressed int            `json:"suppressed,omitempty"`
	LoadErrors []string       `json:"load_errors,omitempty"`
}

// ExitCode is nonzero when findings remain after filtering or the run
// could not load its input.
func (r *Result) ExitCode() int {
	if len(r.LoadErrors) > 0 || len(r.Findings) > 0 {
		return 1
	}
	return 0
}

// FilterSeverity drops findings less severe than max and recounts. The
// renderer applies this for the --severity flag.
func (r *Result) FilterSeverity(max lint.Severity) {
	kept := r.Findings[:0]
	for _, f := range r.Findings {
		if f.severity <= max {
			kept = append(kept, f)
		}
	}
	r.Findings = kept
	r.recount()
}

func (r *Result) recount() {
	counts := make(map[string]int)
	for _, f := range r.Findings {
		counts[f.Severity]++
	}
	r.Counts = counts
}

// sortFindings orders findings for stable output: by package, then file,
// position, and rule.
func sortFindings(findings []Finding) {
	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Package != b.Package {
			return a.Package < b.Package
		}
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.RuleID < b.RuleID
	})
}

// dedupe removes repeated findings. Loading test variants of a package
// lints its non-test files twice; only one copy of each finding survives.
func dedupe(findings []Finding) []Finding {
	type key struct {
		rule, pkg, file, msg string
		line, col            int
	}
	seen := make(map[key]bool, len(findings))
	out := findings[:0]
	for _, f := range findings {
		k := key{rule: f.RuleID, pkg: f.Package, file: f.File, msg: f.Message, line: f.Line, col: f.Column}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, f)
	}
	return out
}
