package lexer

import "fmt"

// Kind identifies the lexical category of a Token: a closed enumeration
// covering structural tokens (EOF, NEWLINE, INDENT, OUTDENT), literals,
// keywords, and operators/punctuation for a Starlark-family dialect.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	IDENTIFIER
	INT
	FLOAT
	STRING
	BYTE
	COMMENT

	NEWLINE
	INDENT
	OUTDENT

	// Keywords
	AND
	AS
	ASSERT
	BREAK
	CLASS
	CONTINUE
	DEF
	DEL
	ELIF
	ELSE
	EXCEPT
	FINALLY
	FOR
	FROM
	GLOBAL
	IF
	IMPORT
	IN
	IS
	LAMBDA
	LOAD
	NONLOCAL
	NOT
	OR
	PASS
	RAISE
	RETURN
	TRY
	WHILE
	WITH
	YIELD

	// 3-char operators
	RSHIFT_ASSIGN   // >>=
	LSHIFT_ASSIGN   // <<=
	FLOORDIV_ASSIGN // //=

	// 2-char operators
	EQL               // ==
	NEQ               // !=
	GE                // >=
	LE                // <=
	PLUS_ASSIGN       // +=
	MINUS_ASSIGN      // -=
	STAR_ASSIGN       // *=
	SLASH_ASSIGN      // /=
	PERCENT_ASSIGN    // %=
	CIRCUMFLEX_ASSIGN // ^=
	AMP_ASSIGN        // &=
	PIPE_ASSIGN       // |=
	STARSTAR          // **
	RSHIFT            // >>
	LSHIFT            // <<
	FLOORDIV          // //

	// 1-char punctuation/operators
	LBRACE     // {
	RBRACE     // }
	LPAREN     // (
	RPAREN     // )
	LBRACKET   // [
	RBRACKET   // ]
	COLON      // :
	COMMA      // ,
	PLUS       // +
	MINUS      // -
	PIPE       // |
	EQUALS     // =
	PERCENT    // %
	TILDE      // ~
	AMP        // &
	CIRCUMFLEX // ^
	SLASH      // /
	SEMI       // ;
	STAR       // *
	LT         // <
	GT         // >
	DOT        // .
)

var kindNames = map[Kind]string{
	ILLEGAL:    "illegal",
	EOF:        "eof",
	IDENTIFIER: "identifier",
	INT:        "int",
	FLOAT:      "float",
	STRING:     "string",
	BYTE:       "bytes",
	COMMENT:    "comment",
	NEWLINE:    "newline",
	INDENT:     "indent",
	OUTDENT:    "outdent",

	AND: "and", AS: "as", ASSERT: "assert", BREAK: "break", CLASS: "class",
	CONTINUE: "continue", DEF: "def", DEL: "del", ELIF: "elif", ELSE: "else",
	EXCEPT: "except", FINALLY: "finally", FOR: "for", FROM: "from",
	GLOBAL: "global", IF: "if", IMPORT: "import", IN: "in", IS: "is",
	LAMBDA: "lambda", LOAD: "load", NONLOCAL: "nonlocal", NOT: "not",
	OR: "or", PASS: "pass", RAISE: "raise", RETURN: "return", TRY: "try",
	WHILE: "while", WITH: "with", YIELD: "yield",

	RSHIFT_ASSIGN: ">>=", LSHIFT_ASSIGN: "<<=", FLOORDIV_ASSIGN: "//=",

	EQL: "==", NEQ: "!=", GE: ">=", LE: "<=",
	PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=",
	SLASH_ASSIGN: "/=", PERCENT_ASSIGN: "%=", CIRCUMFLEX_ASSIGN: "^=",
	AMP_ASSIGN: "&=", PIPE_ASSIGN: "|=", STARSTAR: "**",
	RSHIFT: ">>", LSHIFT: "<<", FLOORDIV: "//",

	LBRACE: "{", RBRACE: "}", LPAREN: "(", RPAREN: ")",
	LBRACKET: "[", RBRACKET: "]", COLON: ":", COMMA: ",",
	PLUS: "+", MINUS: "-", PIPE: "|", EQUALS: "=", PERCENT: "%",
	TILDE: "~", AMP: "&", CIRCUMFLEX: "^", SLASH: "/", SEMI: ";",
	STAR: "*", LT: "<", GT: ">", DOT: ".",
}

// String returns the canonical text for k (its keyword/operator spelling,
// or a descriptive lower-case name for the structural kinds).
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// keywords maps the ASCII spelling of each reserved word to its Kind.
var keywords = map[string]Kind{
	"and": AND, "as": AS, "assert": ASSERT, "break": BREAK, "class": CLASS,
	"continue": CONTINUE, "def": DEF, "del": DEL, "elif": ELIF, "else": ELSE,
	"except": EXCEPT, "finally": FINALLY, "for": FOR, "from": FROM,
	"global": GLOBAL, "if": IF, "import": IMPORT, "in": IN, "is": IS,
	"lambda": LAMBDA, "load": LOAD, "nonlocal": NONLOCAL, "not": NOT,
	"or": OR, "pass": PASS, "raise": RAISE, "return": RETURN, "try": TRY,
	"while": WHILE, "with": WITH, "yield": YIELD,
}

// lookupKeyword returns the keyword Kind for ident, or (IDENTIFIER, false)
// if ident is not reserved.
func lookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	if !ok {
		return IDENTIFIER, false
	}
	return k, true
}

// Token is one lexical unit. Value is populated only for literal and
// identifier kinds (STRING, BYTE, INT, FLOAT, IDENTIFIER, COMMENT) and
// for ILLEGAL; it is nil for every other kind, including synthetic
// INDENT/OUTDENT/NEWLINE.
//
// Value's dynamic type by Kind:
//
//	ILLEGAL    byte     (the offending byte)
//	STRING     string   (decoded text, valid UTF-8)
//	BYTE       []byte   (decoded bytes, not necessarily valid UTF-8)
//	INT        int64 or *big.Int (narrowest exact representation)
//	FLOAT      float64
//	IDENTIFIER string   (interned)
//	COMMENT    string   (raw text, including the leading '#')
type Token struct {
	Kind  Kind
	Start int
	End   int
	Value any
}

// String renders the token for debugging/CLI output.
func (t Token) String() string {
	if t.Value != nil {
		return fmt.Sprintf("%s(%d,%d)=%v", t.Kind, t.Start, t.End, t.Value)
	}
	return fmt.Sprintf("%s(%d,%d)", t.Kind, t.Start, t.End)
}

// Comment is one collected comment: its start offset and raw text,
// including the leading '#'.
type Comment struct {
	Start int
	Text  string
}
