// Package lexer turns a UTF-8 source buffer into a stream of tokens for
// a Starlark-like dialect, synthesizing INDENT/OUTDENT/NEWLINE from an
// indentation stack, decoding string/bytes escapes, and parsing numeric
// literals. The package is deliberately narrow — no parser, no AST, no
// file I/O, no CLI, no symbol table — those live in cmd/starlex and the
// caller's own layers.
package lexer

import (
	"fmt"

	"github.com/mnimmny/starlarky/internal/errors"
	"github.com/mnimmny/starlarky/internal/intern"
	"github.com/mnimmny/starlarky/internal/location"
)

// Options configures the one caller-visible knob the lexer exposes:
// whether an unrecognized backslash escape inside a string literal is
// reported as an error in addition to being passed through literally.
type Options struct {
	RestrictStringEscapes bool
}

// DefaultOptions returns the lexer's default options: restrictive
// escape checking enabled.
func DefaultOptions() Options {
	return Options{RestrictStringEscapes: true}
}

// Lexer holds all state for scanning one source file. It is single-use:
// once EOF has been emitted, further NextToken calls keep returning EOF
// rather than reading past the buffer.
type Lexer struct {
	cursor
	file string
	opts Options
	pool *intern.Pool
	locs *location.FileLocations

	// Indentation engine state.
	indentStack      []int
	openParenDepth   int
	checkIndentation bool
	dents            int

	comments []Comment
	errs     *errors.List

	lastWasNewline bool // true iff the last emitted token other than INDENT/OUTDENT/EOF was NEWLINE
	doneEOF        bool
}

// New creates a lexer over buffer. errs receives every diagnosable
// problem as scanning proceeds; it is owned by the caller for the
// lexer's lifetime. pool may be nil, in which case a private pool is
// created for this lexer alone.
func New(buffer []byte, file string, opts Options, errs *errors.List, pool *intern.Pool) *Lexer {
	if pool == nil {
		pool = intern.New(intern.DefaultCapacity)
	}
	if errs == nil {
		errs = errors.NewList(file, string(buffer))
	}
	return &Lexer{
		cursor:           cursor{buffer: buffer, pos: 0},
		file:             file,
		opts:             opts,
		pool:             pool,
		locs:             location.New(file, buffer),
		indentStack:      []int{0},
		checkIndentation: true, // the first line is always measured for indentation
		errs:             errs,
	}
}

// Errors returns the error list this lexer has been appending to.
func (l *Lexer) Errors() *errors.List { return l.errs }

// GetComments returns an immutable snapshot of the comments collected so
// far.
func (l *Lexer) GetComments() []Comment {
	out := make([]Comment, len(l.comments))
	copy(out, l.comments)
	return out
}

// locationOf reports the (file, line, column) of a byte offset, for
// error messages.
func (l *Lexer) locationOf(offset int) location.Position {
	return l.locs.LocationOf(offset)
}

// errorf records one non-fatal diagnostic at offset.
func (l *Lexer) errorf(offset int, format string, args ...any) {
	l.errs.Add(l.locationOf(offset), fmt.Sprintf(format, args...))
}

func (l *Lexer) tok(kind Kind, start, end int, value any) Token {
	return Token{Kind: kind, Start: start, End: end, Value: value}
}

func (l *Lexer) zeroWidth(kind Kind) Token {
	return Token{Kind: kind, Start: l.pos, End: l.pos}
}

// NextToken advances the lexer and returns exactly one token. It is the
// only exported entry point for scanning; it delegates to scan and then
// maintains lastWasNewline, which governs the trailing-NEWLINE rule at
// EOF. The next call's indentation measurement is armed separately, by
// checkIndentation.
func (l *Lexer) NextToken() Token {
	t := l.scan()
	switch t.Kind {
	case NEWLINE:
		l.lastWasNewline = true
	case INDENT, OUTDENT, EOF:
		// Structural tokens don't count as "the previous token" for the
		// trailing-newline rule.
	default:
		l.lastWasNewline = false
	}
	return t
}

// scan implements the driver's dispatch order: indentation measurement
// first, then pending dents, then trivia skipping, then dispatch on the
// first significant byte.
func (l *Lexer) scan() Token {
	if l.doneEOF {
		return l.tok(EOF, len(l.buffer), len(l.buffer), nil)
	}

	if l.checkIndentation && l.openParenDepth == 0 {
		l.checkIndentation = false
		l.computeIndentation()
	}

	if l.dents != 0 {
		if l.dents > 0 {
			l.dents--
			return l.zeroWidth(INDENT)
		}
		l.dents++
		return l.zeroWidth(OUTDENT)
	}

	for {
		c := l.peek(0)

		switch {
		case c == -1:
			return l.handleEOF()

		case c == ' ' || c == '\t':
			l.next()
			continue

		case c == '\r':
			l.next()
			continue

		case c == '\\':
			// Line continuation: backslash immediately followed by a
			// newline (LF or CRLF) is trivia, never emitted.
			n := l.peek(1)
			if n == '\n' {
				l.pos += 2
				continue
			}
			if n == '\r' && l.peek(2) == '\n' {
				l.pos += 3
				continue
			}
			// Any other backslash at top level is not a valid token start.
			start := l.pos
			l.next()
			l.errorf(start, "invalid character: '\\'")
			return l.tok(ILLEGAL, start, l.pos, byte('\\'))

		case c == '\n':
			start := l.pos
			l.next()
			if l.openParenDepth > 0 {
				// Newlines inside brackets are whitespace, not statement
				// terminators.
				continue
			}
			l.checkIndentation = true
			return l.tok(NEWLINE, start, l.pos, nil)

		case c == '#':
			return l.scanComment()

		case c == '\'' || c == '"':
			start := l.pos
			l.next()
			return l.scanString(start, byte(c), STRING, false)

		case c == 'r' || c == 'R' || c == 'b' || c == 'B':
			if tok, ok := l.tryPrefixedString(); ok {
				return tok
			}
			return l.scanIdentifierOrKeyword()

		case c == '.' || isDigit(c):
			return l.scanNumberOrDot()

		case isIdentStart(c):
			return l.scanIdentifierOrKeyword()

		default:
			if tok, ok := l.scanOperator(); ok {
				return tok
			}
			start := l.pos
			ch := l.peek(0)
			l.next()
			l.errorf(start, "invalid character: '%c'", rune(ch))
			return l.tok(ILLEGAL, start, l.pos, byte(ch))
		}
	}
}

// handleEOF drains any still-open indentation levels at end of buffer
// and synthesizes a trailing NEWLINE before EOF if the previous token
// wasn't one.
func (l *Lexer) handleEOF() Token {
	if len(l.indentStack) > 1 {
		l.dents -= len(l.indentStack) - 1
		l.indentStack = l.indentStack[:1]
	}

	if !l.lastWasNewline {
		return l.tok(NEWLINE, l.pos, l.pos, nil)
	}

	if l.dents != 0 {
		l.dents++
		return l.zeroWidth(OUTDENT)
	}

	l.doneEOF = true
	return l.tok(EOF, l.pos, l.pos, nil)
}

// scanComment reads from '#' to end of line (exclusive) and records a
// Comment.
func (l *Lexer) scanComment() Token {
	start := l.pos
	for {
		c := l.peek(0)
		if c == -1 || c == '\n' {
			break
		}
		l.next()
	}
	text := string(l.buffer[start:l.pos])
	l.comments = append(l.comments, Comment{Start: start, Text: text})
	return l.tok(COMMENT, start, l.pos, text)
}

func isDigit(c int) bool { return c >= '0' && c <= '9' }

func isIdentStart(c int) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c int) bool {
	return isIdentStart(c) || isDigit(c)
}
