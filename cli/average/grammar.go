package average

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

// Pair is one "build/query" token of a result line
type Pair struct {
	First  float64 `@Number "/"`
	Second float64 `@Number`
}

func (p Pair) Sum() float64 {
	return p.First + p.Second
}

// ResultLine is a ", " separated list of pairs
type ResultLine struct {
	Pairs []Pair `@@ ( "," @@ )*`
}

var lineParser = participle.MustBuild(
	&ResultLine{},
	participle.Lexer(getLexer()),
	participle.Elide("Whitespace"),
)

func getLexer() *stateful.Definition {
	return stateful.MustSimple([]stateful.Rule{
		{"Number", `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?|[-+]?(?i:inf|nan)`, nil},
		{"Punct", `[/,]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	})
}

// ParseLine parses one line of a result file
func ParseLine(line string) ([]Pair, error) {
	if strings.TrimSpace(line) == "" {
		return nil, fmt.Errorf("Empty line")
	}

	parsedLine := ResultLine{}
	if err := lineParser.ParseString("", line, &parsedLine); err != nil {
		return nil, fmt.Errorf("Failed to parse %q: %s", line, err)
	}

	return parsedLine.Pairs, nil
}
