// Package output renders command results as styled text, markdown, or JSON.
// The auto mode picks text when stdout is a terminal and markdown when it is
// piped, so humans and scripts each get a sensible default.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in one of the supported modes.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer. An empty or unknown mode behaves as auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// EffectiveMode resolves auto to text or markdown based on whether the
// output is a terminal.
func (r *Renderer) EffectiveMode() Mode {
	switch r.mode {
	case ModeText, ModeMarkdown, ModeJSON:
		return r.mode
	case Mode("md"):
		return ModeMarkdown
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the style set for the effective mode. Markdown and JSON
// modes get zero-value styles that render their input unchanged.
func (r *Renderer) Styles() *Styles {
	if r.styles == nil {
		if r.EffectiveMode() == ModeText {
			r.styles = colorStyles()
		} else {
			r.styles = plainStyles()
		}
	}
	return r.styles
}

// Writer returns the primary output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the writer for status lines that should not pollute
// piped output.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the output.
func (r *Renderer) Println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

// Printf writes formatted text to the output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Success prints a confirmation line. JSON mode stays silent so the stream
// remains parseable.
func (r *Renderer) Success(msg string) {
	switch r.EffectiveMode() {
	case ModeJSON:
	case ModeText:
		r.Println(r.Styles().Success.Render("✓ " + msg))
	default:
		r.Println(msg)
	}
}

// JSON writes v as indented JSON to the output.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
