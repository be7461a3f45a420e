package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/excerpt/internal/locator"
	"github.com/nao1215/excerpt/internal/pipeline"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs outcomes as a Markdown document: a property
// table per input followed by the excerpt in a fenced html block.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the outcomes in Markdown format.
func (w *MarkdownWriter) Write(outcomes []pipeline.Outcome) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Excerpt Report")
	md.PlainText("")

	for _, o := range outcomes {
		w.writeOutcome(md, o)
	}

	return len(md.String()), md.Build()
}

// writeOutcome writes the section for one input.
func (w *MarkdownWriter) writeOutcome(md *markdown.Markdown, o pipeline.Outcome) {
	md.H2(o.Path)
	md.PlainText("")

	if !o.Result.Found {
		md.Note(locator.NotFound)
		md.PlainText("")
		return
	}

	res := o.Result
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Encoding", o.Encoding},
			{"Length", strconv.Itoa(res.Length)},
			{"Match", formatSpan(res.Match)},
			{"Window", formatSpan(res.Window)},
		},
	})
	md.PlainText("")
	writeCode(md, res.Excerpt)
	md.PlainText("")
}

// writeCode writes text as a fenced html block. Chat text may itself hold
// a run of backticks, so the fence grows past the longest run inside.
func writeCode(md *markdown.Markdown, text string) {
	fence := codeFence(text)
	if fence == "```" {
		md.CodeBlocks(markdown.SyntaxHighlight("html"), text)
		return
	}
	md.PlainTextf("%shtml\n%s\n%s", fence, text, fence)
}

// codeFence returns a backtick fence that text cannot close.
func codeFence(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return strings.Repeat("`", max(3, longest+1))
}

// formatSpan renders a span as a half-open interval.
func formatSpan(s locator.Span) string {
	return "[" + strconv.Itoa(s.Start) + ", " + strconv.Itoa(s.End) + ")"
}
