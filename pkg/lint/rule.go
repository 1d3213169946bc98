package lint

// Rule is the base interface all lint rules implement.
// This provides a unified interface for both source-level and module-level rules.
type Rule interface {
	// ID returns the unique identifier, e.g., "CV01" or "MD01"
	ID() string

	// Name returns the human-readable name, e.g., "convention.sprintf_constant"
	Name() string

	// Group returns the category, e.g., "convention", "structure", "module"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)
}

// SourceRule analyzes one type-checked package at a time.
type SourceRule interface {
	Rule

	// CheckSource analyzes a package pass and returns diagnostics.
	// The opts parameter contains rule-specific options from configuration.
	CheckSource(pass *Pass, opts map[string]any) []Diagnostic
}

// ModuleRule analyzes the whole set of loaded packages at once.
// Implemented by rules that check import-graph shape and cross-package concerns.
type ModuleRule interface {
	Rule

	// CheckModule analyzes the module context and returns diagnostics.
	CheckModule(ctx ModuleContext, opts map[string]any) []Diagnostic
}

// ModuleContext provides access to the whole load for module-level rules.
// This is an interface to avoid import cycles between lint and the driver.
type ModuleContext interface {
	// Packages returns a pass for every loaded package.
	Packages() []*Pass

	// Imports returns the import paths a package depends on directly.
	Imports(path string) []string

	// Importers returns the packages that directly depend on path.
	Importers(path string) []string
}

// CheckFunc analyzes one package pass and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(pass *Pass, opts map[string]any) []Diagnostic

// ModuleCheckFunc analyzes the whole load and returns diagnostics.
type ModuleCheckFunc func(ctx ModuleContext, opts map[string]any) []Diagnostic

// RuleDef is a data-driven rule definition.
// Rules are stateless; all context comes via the check function parameters.
// Exactly one of Check and CheckModule must be set.
type RuleDef struct {
	ID          string          // Unique identifier, e.g., "CV01"
	Name        string          // Human-readable name, e.g., "convention.sprintf_constant"
	Group       string          // Category, e.g., "convention", "structure"
	Description string          // Human-readable description
	Severity    Severity        // Default severity
	Check       CheckFunc       // Source rule check function
	CheckModule ModuleCheckFunc // Module rule check function
	ConfigKeys  []string        // Configuration keys this rule accepts

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
	Type            string   `json:"type"` // "source" or "module"

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) RuleInfo {
	info := RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		ConfigKeys:      r.ConfigKeys(),
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}

	if _, ok := r.(SourceRule); ok {
		info.Type = "source"
	} else if _, ok := r.(ModuleRule); ok {
		info.Type = "module"
	}

	return info
}

// wrappedSourceDef wraps a RuleDef with a Check function to implement SourceRule.
type wrappedSourceDef struct {
	ruleDef
}

func (w *wrappedSourceDef) CheckSource(pass *Pass, opts map[string]any) []Diagnostic {
	return w.def.Check(pass, opts)
}

// wrappedModuleDef wraps a RuleDef with a CheckModule function to implement ModuleRule.
type wrappedModuleDef struct {
	ruleDef
}

func (w *wrappedModuleDef) CheckModule(ctx ModuleContext, opts map[string]any) []Diagnostic {
	return w.def.CheckModule(ctx, opts)
}

// ruleDef carries the shared metadata accessors for wrapped definitions.
type ruleDef struct {
	def RuleDef
}

func (w *ruleDef) ID() string                { return w.def.ID }
func (w *ruleDef) Name() string              { return w.def.Name }
func (w *ruleDef) Group() string             { return w.def.Group }
func (w *ruleDef) Description() string       { return w.def.Description }
func (w *ruleDef) DefaultSeverity() Severity { return w.def.Severity }
func (w *ruleDef) ConfigKeys() []string      { return w.def.ConfigKeys }
func (w *ruleDef) Rationale() string         { return w.def.Rationale }
func (w *ruleDef) BadExample() string        { return w.def.BadExample }
func (w *ruleDef) GoodExample() string       { return w.def.GoodExample }
func (w *ruleDef) Fix() string               { return w.def.Fix }

// Unwrap returns the underlying RuleDef.
func (w *ruleDef) Unwrap() RuleDef {
	return w.def
}

// WrapRuleDef wraps a RuleDef in the Rule interface matching its kind: a
// definition with Check becomes a SourceRule, one with CheckModule becomes a
// ModuleRule. A definition with neither or both panics; a rule table that
// malformed is a programming error worth failing fast on.
func WrapRuleDef(def RuleDef) Rule {
	switch {
	case def.Check != nil && def.CheckModule != nil:
		panic("lint: rule " + def.ID + " sets both Check and CheckModule")
	case def.Check != nil:
		return &wrappedSourceDef{ruleDef{def: def}}
	case def.CheckModule != nil:
		return &wrappedModuleDef{ruleDef{def: def}}
	default:
		panic("lint: rule " + def.ID + " sets neither Check nor CheckModule")
	}
}
