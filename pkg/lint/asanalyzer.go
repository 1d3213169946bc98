package lint

import (
	"strings"

	"golang.org/x/tools/go/analysis"
)

// AsAnalyzer exports a source rule as a golang.org/x/tools/go/analysis pass,
// so it can run under vet, gopls, or a multichecker binary. Module rules
// need the whole load and cannot run per package; passing one panics.
func AsAnalyzer(def RuleDef) *analysis.Analyzer {
	if def.Check == nil {
		panic("lint: rule " + def.ID + " is not a source rule and cannot run as an analysis pass")
	}

	doc := def.Description
	if def.Rationale != "" {
		doc += "\n\n" + def.Rationale
	}

	return &analysis.Analyzer{
		Name: strings.ToLower(def.ID),
		Doc:  doc,
		Run: func(ap *analysis.Pass) (any, error) {
			pass := NewPass(ap.Fset, ap.Files, ap.Pkg, ap.TypesInfo)
			diags := def.Check(pass, nil)
			diags = append(diags, pass.takeReported()...)
			for _, d := range diags {
				ap.Report(toAnalysisDiagnostic(def.ID, d))
			}
			return nil, nil
		},
	}
}

// Analyzers exports every registered source rule via AsAnalyzer, in ID
// order, for use with multichecker.Main.
func Analyzers() []*analysis.Analyzer {
	var out []*analysis.Analyzer
	for _, def := range AllRules() {
		if def.Check != nil {
			out = append(out, AsAnalyzer(def))
		}
	}
	return out
}

func toAnalysisDiagnostic(ruleID string, d Diagnostic) analysis.Diagnostic {
	ad := analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.EndPos,
		Category: ruleID,
		Message:  d.Message,
		URL:      d.DocumentationURL,
	}
	for _, fix := range d.Fixes {
		sf := analysis.SuggestedFix{Message: fix.Description}
		for _, e := range fix.TextEdits {
			sf.TextEdits = append(sf.TextEdits, analysis.TextEdit{
				Pos:     e.Pos,
				End:     e.EndPos,
				NewText: []byte(e.NewText),
			})
		}
		ad.SuggestedFixes = append(ad.SuggestedFixes, sf)
	}
	for _, ri := range d.RelatedInfo {
		ad.Related = append(ad.Related, analysis.RelatedInformation{
			Pos:     ri.Pos,
			Message: ri.Message,
		})
	}
	return ad
}
