package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/mnimmny/starlarky/internal/errors"
	"github.com/mnimmny/starlarky/internal/intern"
	"github.com/mnimmny/starlarky/internal/lexer"
	"github.com/mnimmny/starlarky/internal/source"
)

// Domain: Tokenize command
// Loads one file through internal/source, drives internal/lexer to
// EOF, and prints the resulting token stream or error list. This is
// the only place outside tests that constructs a Lexer directly — the
// CLI is a thin consumer of the package's exported surface.

// tokenLine is the JSON-lines shape for --json output.
type tokenLine struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Value any    `json:"value,omitempty"`
}

// RunTokenize implements `starlex tokenize`.
func RunTokenize(fs afero.Fs, out io.Writer, path string, restrictStringEscapes bool, jsonOutput, errorsOnly bool) error {
	buf, err := source.Load(fs, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	opts := lexer.DefaultOptions()
	opts.RestrictStringEscapes = restrictStringEscapes

	errs := errors.NewList(path, string(buf))
	pool := intern.New(intern.DefaultCapacity)
	lx := lexer.New(buf, path, opts, errs, pool)

	var lines []tokenLine
	for {
		tok := lx.NextToken()
		if !errorsOnly {
			lines = append(lines, tokenLine{Kind: tok.Kind.String(), Start: tok.Start, End: tok.End, Value: tok.Value})
		}
		if tok.Kind == lexer.EOF {
			break
		}
	}

	if errorsOnly {
		if errs.HasErrors() {
			fmt.Fprint(out, errs.FormatErrors(0))
			return errExitNonZero
		}
		return nil
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		for _, l := range lines {
			if err := enc.Encode(l); err != nil {
				return err
			}
		}
		return nil
	}

	for _, l := range lines {
		if l.Value != nil {
			fmt.Fprintf(out, "%s(%d,%d)=%v\n", l.Kind, l.Start, l.End, l.Value)
		} else {
			fmt.Fprintf(out, "%s(%d,%d)\n", l.Kind, l.Start, l.End)
		}
	}
	if errs.HasErrors() {
		fmt.Fprint(out, errs.FormatErrors(0))
	}
	return nil
}

// errExitNonZero is a sentinel the root command checks for to set the
// process exit code without printing a redundant "Error:" line for
// what is really just "errors were found", not a command failure.
var errExitNonZero = fmt.Errorf("lexical errors found")
