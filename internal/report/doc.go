// Package report writes located excerpts in the supported output formats.
//
//   - TextWriter: the excerpt itself, or "Not found" (default)
//   - JSONWriter: structured JSON for tool integration
//   - MarkdownWriter: a Markdown document for sharing
//
// Writers implement the Writer interface, so the command can pick one at
// runtime and point it at stdout or a file.
package report
