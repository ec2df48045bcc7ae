// Package errors accumulates non-fatal lexical diagnostics. The lexer
// never aborts on a malformed literal or a misaligned dedent; it records
// one Error per problem here and keeps producing tokens.
package errors

import (
	"fmt"
	"strings"

	"github.com/mnimmny/starlarky/internal/location"
)

// Error is a single diagnosable problem at a known source location.
type Error struct {
	Location location.Position
	Message  string
	Source   string // the full source buffer, for FormatError's caret
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// FormatError renders the error with a file:line:column header and a
// caret pointing at the offending column, in the style the rest of this
// corpus uses for compiler-ish diagnostics.
func (e *Error) FormatError() string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("\033[31merror\033[0m: %s\n", e.Message))
	result.WriteString(fmt.Sprintf("  \033[36m--> %s\033[0m\n", e.Location))

	lines := strings.Split(e.Source, "\n")
	if e.Location.Line > 0 && e.Location.Line <= len(lines) {
		sourceLine := lines[e.Location.Line-1]
		lineNumStr := fmt.Sprintf("%d", e.Location.Line)

		result.WriteString(fmt.Sprintf("   \033[34m%s\033[0m | %s\n", lineNumStr, sourceLine))

		col := e.Location.Column - 1
		if col < 0 {
			col = 0
		}
		spaces := strings.Repeat(" ", len(lineNumStr)) + " | " + strings.Repeat(" ", col)
		result.WriteString(fmt.Sprintf("   %s\033[31m^\033[0m\n", spaces))
	}

	return result.String()
}

// List is an append-only collection of lexical errors, owned by the
// caller for the lifetime of a Lexer: the lexer only ever appends to it.
type List struct {
	Errors   []*Error
	Filename string
	Source   string
}

// NewList creates an empty error list bound to one source file.
func NewList(filename, source string) *List {
	return &List{
		Errors:   make([]*Error, 0),
		Filename: filename,
		Source:   source,
	}
}

// Add appends one diagnostic at the given position.
func (l *List) Add(pos location.Position, message string) {
	l.Errors = append(l.Errors, &Error{
		Location: pos,
		Message:  message,
		Source:   l.Source,
	})
}

// HasErrors reports whether any diagnostics were recorded.
func (l *List) HasErrors() bool {
	return len(l.Errors) > 0
}

// Error implements the error interface so a *List can be returned/wrapped
// as a single error value by callers that want that shape.
func (l *List) Error() string {
	if len(l.Errors) == 0 {
		return "no errors"
	}
	if len(l.Errors) == 1 {
		return l.Errors[0].Error()
	}
	messages := make([]string, len(l.Errors))
	for i, e := range l.Errors {
		messages[i] = e.Error()
	}
	return strings.Join(messages, "; ")
}

// FormatErrors renders up to maxShown errors with source pointers,
// noting how many were omitted; a non-positive maxShown renders every
// error. The lexer itself never calls this; the starlex CLI calls it
// with 0, so it shows every error.
func (l *List) FormatErrors(maxShown int) string {
	if len(l.Errors) == 0 {
		return ""
	}

	var result strings.Builder

	errorsToShow := l.Errors
	if maxShown > 0 && len(errorsToShow) > maxShown {
		errorsToShow = errorsToShow[:maxShown]
	}

	switch {
	case len(l.Errors) == 1:
		result.WriteString("lexical error:\n\n")
	case maxShown <= 0 || len(l.Errors) <= maxShown:
		result.WriteString(fmt.Sprintf("lexical errors (%d):\n\n", len(l.Errors)))
	default:
		result.WriteString(fmt.Sprintf("lexical errors (showing first %d of %d):\n\n", maxShown, len(l.Errors)))
	}

	for i, e := range errorsToShow {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(e.FormatError())
	}

	if maxShown > 0 && len(l.Errors) > maxShown {
		result.WriteString(fmt.Sprintf("\n\033[33mnote:\033[0m %d additional errors not shown\n", len(l.Errors)-maxShown))
	}

	return result.String()
}
