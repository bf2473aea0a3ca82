package frontend

import "github.com/alecthomas/participle/v2/lexer"

// tokens is the lexical subset of the surface language (spec.md §6):
// numeric/boolean literals, identifiers, "$global" sigils, and the
// punctuation the grammar needs. Comments and whitespace are elided by
// the parser (see grammarParser in parser.go), never reaching the
// grammar.
//
// Rule order matters for participle's simple lexer: longer or more
// specific patterns must precede shorter ones that would otherwise
// shadow them (".." before ".", "<=" before "<", and so on). Reserved
// words lex as Keyword ahead of Ident, so `@Ident` never captures "end",
// "else" or "elsif" and a Block stops at them.
var tokens = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Float", Pattern: `\d+\.\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Global", Pattern: `\$[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Keyword", Pattern: `(?:if|elsif|else|end|unless|while|for|in|do|then|def|return|break)\b`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `\|\||&&|==|!=|<=|>=|\.\.|[-+*/%()\[\]{}.,=<>!|]`},
})
