package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shardlabs/shardjs/pkg/interp/ast"
	"github.com/shardlabs/shardjs/pkg/interp/eval"
	"github.com/shardlabs/shardjs/pkg/interp/lexer"
	"github.com/shardlabs/shardjs/pkg/interp/parser"
)

// evalSource parses and evaluates src, returning the final value, the
// captured print output and the evaluation error.
func evalSource(t *testing.T, src string) (float64, string, error) {
	t.Helper()
	program, err := parser.NewParser(lexer.NewScanner([]byte(src))).Parse()
	if err != nil {
		t.Fatalf("parse error for %q: %v", src, err)
	}
	var out bytes.Buffer
	value, err := eval.New(&out).Eval(program)
	return value, out.String(), err
}

func mustEval(t *testing.T, src string) float64 {
	t.Helper()
	value, _, err := evalSource(t, src)
	if err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
	return value
}

func TestEvalNumberLiteral(t *testing.T) {
	e := eval.New(&bytes.Buffer{})
	for _, want := range []float64{0, 1, -0.5, 3.14159, 1e17} {
		got, err := e.Eval(&ast.Number{Value: want})
		if err != nil {
			t.Fatalf("Number(%v): unexpected error %v", want, err)
		}
		if got != want {
			t.Errorf("Number(%v) evaluated to %v", want, got)
		}
	}
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 4 - 3", 3},
		{"20 / 4 / 5", 1},
		{"7 / 2", 3.5},
		{"1.5 + 2.25", 3.75},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := mustEval(t, tt.src); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1 < 2", 1},
		{"2 < 1", 0},
		{"2 > 1", 1},
		{"1 >= 1", 1},
		{"1 <= 0", 0},
		{"3 == 3", 1},
		{"3 != 3", 0},
		{"1 < 2 < 3", 1},     // (1<2) -> 1, then 1 < 3
		{"5 + 3 > 2 * 4", 0}, // 8 > 8
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := mustEval(t, tt.src); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	e := eval.New(&bytes.Buffer{})

	for _, left := range []float64{0, 1, -7, 1e300} {
		node := &ast.BinaryOp{
			Op:    ast.OpDiv,
			Left:  &ast.Number{Value: left},
			Right: &ast.Number{Value: 0},
		}
		_, err := e.Eval(node)
		if err == nil || !strings.Contains(err.Error(), "Division by zero") {
			t.Errorf("%v / 0: expected division by zero error, got %v", left, err)
		}
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	_, out, err := evalSource(t, "print(undefined_var);")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Undefined variable: undefined_var" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestEvalLetStoresAndReturns(t *testing.T) {
	program, err := parser.NewParser(lexer.NewScanner([]byte("let x = 6 * 7;"))).Parse()
	if err != nil {
		t.Fatal(err)
	}

	e := eval.New(&bytes.Buffer{})
	value, err := e.Eval(program)
	if err != nil {
		t.Fatal(err)
	}
	if value != 42 {
		t.Errorf("let should return the stored value, got %v", value)
	}
	if stored, ok := e.Env().Get("x"); !ok || stored != 42 {
		t.Errorf("expected x bound to 42, got %v (ok=%v)", stored, ok)
	}
}

func TestEvalFailedLetLeavesEnvUnmodified(t *testing.T) {
	program, err := parser.NewParser(lexer.NewScanner([]byte("let x = missing + 1;"))).Parse()
	if err != nil {
		t.Fatal(err)
	}

	e := eval.New(&bytes.Buffer{})
	if _, err := e.Eval(program); err == nil {
		t.Fatal("expected error")
	}
	if e.Env().Len() != 0 {
		t.Errorf("expected empty environment, got %d bindings", e.Env().Len())
	}
}

func TestEvalLetRedeclarationOverwrites(t *testing.T) {
	program, err := parser.NewParser(lexer.NewScanner([]byte("let x = 1;\nlet x = 2;"))).Parse()
	if err != nil {
		t.Fatal(err)
	}

	e := eval.New(&bytes.Buffer{})
	if _, err := e.Eval(program); err != nil {
		t.Fatal(err)
	}
	if e.Env().Len() != 1 {
		t.Errorf("expected a single binding, got %d", e.Env().Len())
	}
	if value, _ := e.Env().Get("x"); value != 2 {
		t.Errorf("expected x = 2, got %v", value)
	}
}

func TestEvalPrint(t *testing.T) {
	value, out, err := evalSource(t, "print(5 + 3);")
	if err != nil {
		t.Fatal(err)
	}
	if out != "8\n" {
		t.Errorf("expected output %q, got %q", "8\n", out)
	}
	if value != 8 {
		t.Errorf("print should return the printed value, got %v", value)
	}
}

func TestEvalIfTruthiness(t *testing.T) {
	tests := []struct {
		name string
		src  string
		out  string
	}{
		{"zero no else is noop", "if (0) print(1);", ""},
		{"nonzero takes then", "if (2 + 3) print(1);", "1\n"},
		{"negative is truthy", "if (0 - 1) print(1);", "1\n"},
		{"zero takes else", "if (0) print(1) else print(2);", "2\n"},
		{"product condition", "let x = 2;\nlet y = 3;\nif (x * y) print(x);", "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := evalSource(t, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.out {
				t.Errorf("expected output %q, got %q", tt.out, out)
			}
		})
	}
}

func TestEvalProgramReturnsLastValue(t *testing.T) {
	if got := mustEval(t, "1 + 1;\n2 + 2;\n3 + 3;"); got != 6 {
		t.Errorf("expected last statement's value 6, got %v", got)
	}
}

func TestEvalStopsAtFirstFailure(t *testing.T) {
	src := "print(1);\nlet x = 5;\nprint(nope);\nprint(3);"
	program, err := parser.NewParser(lexer.NewScanner([]byte(src))).Parse()
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	e := eval.New(&out)
	_, err = e.Eval(program)
	if err == nil || !strings.Contains(err.Error(), "Undefined variable: nope") {
		t.Fatalf("expected undefined variable error, got %v", err)
	}

	// committed side effects survive the failure
	if out.String() != "1\n" {
		t.Errorf("expected partial output %q, got %q", "1\n", out.String())
	}
	if value, ok := e.Env().Get("x"); !ok || value != 5 {
		t.Errorf("expected x still bound to 5, got %v (ok=%v)", value, ok)
	}
}

func TestEvalFirstErrorWins(t *testing.T) {
	// the left failure must surface even though the right operand would
	// also fail; the right side is never evaluated
	_, _, err := evalSource(t, "missing + 1 / 0")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Undefined variable: missing" {
		t.Errorf("expected the left operand's error, got %q", err.Error())
	}
}

func TestEvalUnknownOperator(t *testing.T) {
	e := eval.New(&bytes.Buffer{})
	node := &ast.BinaryOp{
		Op:    ast.Operator(99),
		Left:  &ast.Number{Value: 1},
		Right: &ast.Number{Value: 2},
	}
	_, err := e.Eval(node)
	if err == nil || !strings.Contains(err.Error(), "Unknown binary operator") {
		t.Errorf("expected unknown operator error, got %v", err)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{10, "10"},
		{0, "0"},
		{3.5, "3.5"},
		{0.1, "0.1"},
		{-2.25, "-2.25"},
		{1e21, "1e+21"},
	}

	for _, tt := range tests {
		if got := eval.FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
