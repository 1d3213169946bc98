package syntax

import (
	"go/ast"
	"go/token"
	"strings"
)

// Directive is a machine-readable comment of the form
//
//	//tool:verb arg1 arg2 -- reason
//
// following the convention of the toolchain's own //go: comments: a line
// comment with no space after the slashes, a tool name, a colon, and a verb.
// Anything after a " -- " separator is free-text rationale.
type Directive struct {
	Tool   string
	Verb   string
	Args   []string
	Reason string
	Pos    token.Pos
}

// ParseDirective interprets a single comment as a directive. Ordinary prose
// comments, block comments, and comments with a space after the slashes all
// report false.
func ParseDirective(c *ast.Comment) (Directive, bool) {
	text := c.Text
	if !strings.HasPrefix(text, "//") {
		return Directive{}, false
	}
	rest := text[2:]
	if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '/' {
		return Directive{}, false
	}

	colon := strings.IndexByte(rest, ':')
	if colon <= 0 {
		return Directive{}, false
	}
	tool := rest[:colon]
	if !directiveWord(tool) {
		return Directive{}, false
	}

	rest = rest[colon+1:]
	verb := rest
	var tail string
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		verb, tail = rest[:i], rest[i+1:]
	}
	if !directiveWord(verb) {
		return Directive{}, false
	}

	d := Directive{Tool: tool, Verb: verb, Pos: c.Slash}
	if i := strings.Index(tail, "--"); i >= 0 {
		d.Reason = strings.TrimSpace(tail[i+2:])
		tail = tail[:i]
	}
	d.Args = strings.Fields(tail)
	return d, true
}

// Directives returns every directive comment in the file, in source order.
func Directives(file *ast.File) []Directive {
	var out []Directive
	for _, group := range file.Comments {
		for _, c := range group.List {
			if d, ok := ParseDirective(c); ok {
				out = append(out, d)
			}
		}
	}
	return out
}

// DirectivesFor returns the file's directives for one tool name.
func DirectivesFor(file *ast.File, tool string) []Directive {
	var out []Directive
	for _, d := range Directives(file) {
		if d.Tool == tool {
			out = append(out, d)
		}
	}
	return out
}

func directiveWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
