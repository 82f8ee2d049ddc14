package shape

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// dimsExpr is the grammar of a dims expression such as "3x3x2" or "[3, 3, 2]".
type dimsExpr struct {
	Extents []uint64 `parser:"\"[\"? ( @Int ( Sep? @Int )* )? \"]\"?"`
}

var dimsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Sep", Pattern: `[x×X*,]`},
	{Name: "Punct", Pattern: `[\[\]]`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var parseDimsExpr = participle.MustBuild[dimsExpr](
	participle.Lexer(dimsLexer),
)

// Parse reads a dims expression. Extents may be separated by 'x', '×', '*',
// ',' or blanks and optionally wrapped in brackets; "" and "[]" both denote
// the 0-dimensional prism. Zero extents are rejected with ErrZeroExtent.
func Parse(expr string) (Dims, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Dims{}, nil
	}
	parsed, err := parseDimsExpr.ParseString("", trimmed)
	if err != nil {
		return nil, fmt.Errorf("%q: %v: %w", expr, err, ErrParse)
	}
	dims, err := FromInts(parsed.Extents)
	if err != nil {
		return nil, err
	}
	if err = dims.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", expr, err)
	}

	return dims, nil
}
