package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// PrettyPrint writes err to w including the offending portion of the source,
// followed by each related location as a note.
func PrettyPrint(w io.Writer, sources SourceResolver, err Error) error {
	// Disable colors if NO_COLOR environment variable is set
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	titleColor := color.New(color.FgRed, color.Bold)
	descColor := color.New(color.Bold)

	titleColor.Fprint(w, "error")
	fmt.Fprint(w, ": ")
	descColor.Fprintf(w, "%s\n", err.Message())
	writeSnippet(w, sources, err.Span(), color.New(color.FgRed, color.Bold))

	noteColor := color.New(color.FgCyan, color.Bold)
	for _, rel := range err.Related() {
		noteColor.Fprint(w, "note")
		fmt.Fprintf(w, ": %s\n", rel.Message)
		writeSnippet(w, sources, rel.Span, noteColor)
	}
	return nil
}

func writeSnippet(w io.Writer, sources SourceResolver, span Span, offendingColor *color.Color) {
	arrowColor := color.New(color.FgCyan, color.Bold)
	filePathColor := color.New(color.Underline)
	lineNumColor := color.New(color.FgCyan, color.Bold)

	if sources == nil {
		return
	}
	fileName, text, ok := sources.Source(span.FileID)
	if !ok || span.Start < 0 || span.Start > len(text) {
		return
	}
	end := span.End
	if end > len(text) {
		end = len(text)
	}
	if end < span.Start {
		end = span.Start
	}

	startLine := strings.Count(text[:span.Start], "\n")
	lineStart := strings.LastIndex(text[:span.Start], "\n") + 1
	lineEnd := strings.Index(text[span.Start:], "\n")
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += span.Start
	}
	if end > lineEnd {
		end = lineEnd
	}

	line := text[lineStart:lineEnd]
	startInLine := span.Start - lineStart
	endInLine := end - lineStart

	arrowColor.Fprint(w, "  --> ")
	filePathColor.Fprintf(w, "%s:%d:%d\n", fileName, startLine+1, startInLine+1)
	lineNumColor.Fprint(w, "   | \n")
	lineNumColor.Fprintf(w, "%2d | ", startLine+1)
	fmt.Fprint(w, line[:startInLine])
	offendingColor.Fprint(w, line[startInLine:endInLine])
	fmt.Fprintf(w, "%s\n", line[endInLine:])

	lineNumColor.Fprint(w, "   | ")
	fmt.Fprint(w, strings.Repeat(" ", startInLine))
	if endInLine == startInLine {
		offendingColor.Fprint(w, "^ Unexpected token.\n")
	} else {
		offendingColor.Fprintf(w, "%s\n", strings.Repeat("^", endInLine-startInLine))
	}
}
