package lint

// Analyzer runs registered rules against type-checked packages.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs every registered source rule against the pass.
func (a *Analyzer) Analyze(pass *Pass) []Diagnostic {
	if pass == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range AllRules() {
		if rule.Check == nil {
			continue
		}
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		opts := a.config.GetRuleOptions(rule.ID)
		diags := rule.Check(pass, opts)
		diags = append(diags, pass.takeReported()...)

		diagnostics = append(diagnostics, a.finish(rule, diags)...)
	}

	return diagnostics
}

// AnalyzeModule runs every registered module rule against the whole load.
func (a *Analyzer) AnalyzeModule(ctx ModuleContext) []Diagnostic {
	if ctx == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range AllRules() {
		if rule.CheckModule == nil {
			continue
		}
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		opts := a.config.GetRuleOptions(rule.ID)
		diagnostics = append(diagnostics, a.finish(rule, rule.CheckModule(ctx, opts))...)
	}

	return diagnostics
}

// finish applies severity overrides and fills in documentation URLs.
func (a *Analyzer) finish(rule RuleDef, diags []Diagnostic) []Diagnostic {
	for i := range diags {
		diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		if diags[i].DocumentationURL == "" {
			diags[i].DocumentationURL = BuildDocURL(rule.ID)
		}
	}
	return diags
}
