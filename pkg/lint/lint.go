package lint

import (
	"go/token"
	"strings"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a critical issue that should be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityWarning, false
	}
}

// Diagnostic represents a lint finding.
//
// Positions are token.Pos values relative to the pass's FileSet; the driver
// resolves them for display, and AsAnalyzer forwards them to analysis
// drivers unchanged. Module rules that have no position leave Pos zero and
// set FilePath instead.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Pos      token.Pos
	EndPos   token.Pos // Optional: end of the problematic range
	FilePath string    // Optional: for findings without a syntax position
	Fixes    []Fix     // Optional: suggested fixes

	// Remediation metadata
	DocumentationURL string        // URL to rule documentation
	RelatedInfo      []RelatedInfo // Additional locations/context
}

// RelatedInfo provides additional context for a diagnostic.
type RelatedInfo struct {
	Pos     token.Pos
	Message string
}

// Fix represents a suggested code fix.
type Fix struct {
	Description string
	TextEdits   []TextEdit
}

// TextEdit represents a text replacement.
type TextEdit struct {
	Pos     token.Pos
	EndPos  token.Pos
	NewText string
}
