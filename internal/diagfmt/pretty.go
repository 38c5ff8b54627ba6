package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/HF-Foundation/HF-CLI/internal/diag"
	"github.com/HF-Foundation/HF-CLI/internal/source"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	arrowColor  = color.New(color.FgCyan)
	caretColor  = color.New(color.FgRed, color.Bold)
)

// Render writes a human-readable form of a pipeline failure to w.
// Diagnostics without the SourceContext capability produce a single
// `<kind> error: <message>` line; diagnostics with it produce a
// source excerpt with the failing region underlined. Rendering is
// pure formatting: it always completes, writes are best-effort, and
// nothing is returned for later logic.
func Render(w io.Writer, d diag.Diagnostic, displayPath string, content []byte, opts Opts) {
	ctx, ok := d.(diag.SourceContext)
	if !ok {
		if opts.Color {
			fmt.Fprintln(w, headerColor.Sprint(d.Error()))
			return
		}
		fmt.Fprintln(w, d.Error())
		return
	}
	renderContext(w, ctx, displayPath, content, opts)
}

// renderContext draws the excerpt block. The geometry follows the
// renderer this one is compatible with:
//
//   - the underline sits on line loc.Line + span.LineDelta;
//   - its width is loc.Col + span.Width on a one-line span, and
//     span.Width alone otherwise (a deliberate approximation: the
//     widest line inside a multi-line span is not measured);
//   - the window shows two lines above the location and up to three
//     below the underline line.
func renderContext(w io.Writer, ctx diag.SourceContext, displayPath string, content []byte, opts Opts) {
	loc := ctx.Location()
	span := ctx.Span()
	lines := source.SplitLines(string(content))

	line := int(loc.Line)
	col := int(loc.Col)
	underlineLine := line + int(span.LineDelta)
	underlineLen := int(span.Width)
	if span.OneLine() {
		underlineLen = col + int(span.Width)
	}

	lineMin := line - 2
	if lineMin < 0 {
		lineMin = 0
	}
	lineMax := underlineLine + 3
	if lineMax > len(lines) {
		lineMax = len(lines)
	}

	header := "error: " + ctx.Detail()
	arrow := fmt.Sprintf("-> %s:%d:%d", displayPath, line+1, col+1)
	if opts.Color {
		header = headerColor.Sprint(header)
		arrow = arrowColor.Sprint(arrow)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, arrow)

	for i := lineMin; i < lineMax; i++ {
		fmt.Fprintf(w, "%4d | %s\n", i+1, lines[i])
		if i == underlineLine {
			underline := strings.Repeat(" ", col) + strings.Repeat("^", underlineLen)
			if opts.Color {
				underline = caretColor.Sprint(underline)
			}
			fmt.Fprintf(w, "     | %s\n", underline)
		}
	}
}
