// Package eval executes a shardjs program by walking its AST directly,
// without an intermediate bytecode stage.
package eval

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"fortio.org/log"

	"github.com/shardlabs/shardjs/pkg/core/env"
	"github.com/shardlabs/shardjs/pkg/interp/ast"
)

// Evaluator walks an AST against a single flat environment. One
// Evaluator serves one program run.
type Evaluator struct {
	env *env.Env
	out io.Writer
}

// New returns an evaluator with a fresh environment that writes print
// output to out.
func New(out io.Writer) *Evaluator {
	return &Evaluator{env: env.New(), out: out}
}

// Env exposes the variable store, mainly for tests and embedders.
func (e *Evaluator) Env() *env.Env { return e.env }

// Eval executes node and returns its value. The first failing
// sub-evaluation aborts the walk and propagates unchanged; side effects
// already produced (prints, variable stores) stay committed.
func (e *Evaluator) Eval(node ast.Node) (float64, error) {
	switch node := node.(type) {
	case *ast.Program:
		log.LogVf("eval program, %d statements", len(node.Statements))
		var last float64
		for _, stmt := range node.Statements {
			value, err := e.Eval(stmt)
			if err != nil {
				return 0, err
			}
			last = value
		}
		return last, nil

	case *ast.Number:
		return node.Value, nil

	case *ast.Identifier:
		value, ok := e.env.Get(node.Name)
		if !ok {
			return 0, fmt.Errorf("Undefined variable: %s", node.Name)
		}
		return value, nil

	case *ast.BinaryOp:
		left, err := e.Eval(node.Left)
		if err != nil {
			return 0, err
		}
		// the right operand is never evaluated once the left has failed
		right, err := e.Eval(node.Right)
		if err != nil {
			return 0, err
		}
		return applyBinary(node.Op, left, right)

	case *ast.LetDecl:
		value, err := e.Eval(node.Value)
		if err != nil {
			// a failing value expression leaves the environment unmodified
			return 0, err
		}
		e.env.Set(node.Name, value)
		log.LogVf("let %s = %v", node.Name, value)
		return value, nil

	case *ast.PrintCall:
		value, err := e.Eval(node.Arg)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(e.out, "%s\n", FormatNumber(value))
		return value, nil

	case *ast.IfStmt:
		condition, err := e.Eval(node.Condition)
		if err != nil {
			return 0, err
		}
		// any nonzero value is truthy
		if condition != 0 {
			return e.Eval(node.Then)
		}
		if node.Else != nil {
			return e.Eval(node.Else)
		}
		return 0, nil
	}

	return 0, fmt.Errorf("Unsupported AST node type %T", node)
}

func applyBinary(op ast.Operator, left, right float64) (float64, error) {
	switch op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		if right == 0.0 {
			return 0, errors.New("Division by zero")
		}
		return left / right, nil
	case ast.OpEqual:
		return boolValue(left == right), nil
	case ast.OpNotEqual:
		return boolValue(left != right), nil
	case ast.OpGreater:
		return boolValue(left > right), nil
	case ast.OpGreaterEqual:
		return boolValue(left >= right), nil
	case ast.OpLess:
		return boolValue(left < right), nil
	case ast.OpLessEqual:
		return boolValue(left <= right), nil
	}
	return 0, fmt.Errorf("Unknown binary operator: %s", op)
}

// boolValue encodes a comparison result: 1.0 for true, 0.0 for false.
func boolValue(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

// FormatNumber renders v as the shortest decimal form that parses back
// to the same float64.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
