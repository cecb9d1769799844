// Package interp wires the shardjs pipeline together: lexing, parsing
// and tree-walking evaluation over a single flat environment.
package interp

import (
	"io"

	"github.com/shardlabs/shardjs/pkg/interp/eval"
	"github.com/shardlabs/shardjs/pkg/interp/lexer"
	"github.com/shardlabs/shardjs/pkg/interp/parser"
)

// Run executes src, writing print output to out. It returns the value
// of the last statement, or the first parse or runtime error. On a
// parse error no part of the program is evaluated.
func Run(src string, out io.Writer) (float64, error) {
	s := lexer.NewScanner([]byte(src))
	p := parser.NewParser(s)

	program, err := p.Parse()
	if err != nil {
		return 0, err
	}

	return eval.New(out).Eval(program)
}
