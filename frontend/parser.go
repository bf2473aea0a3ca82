package frontend

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
)

var grammarParser = participle.MustBuild[File](
	participle.Lexer(tokens),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// parseSource parses source into the generic syntax tree. Syntax
// errors are surfaced as a single-line description, per spec.md §4.2 /
// §7 (ParseError).
func parseSource(source string) (*File, error) {
	file, err := grammarParser.ParseString("", source)
	if err != nil {
		return nil, errors.Wrap(err, "parse error")
	}
	return file, nil
}
