// Package ast defines the tree representation of parsed shardjs source.
// Every non-leaf node exclusively owns its children; the tree is acyclic
// and unshared by construction.
package ast

// Operator enumerates the binary operators of the language.
type Operator uint8

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpEqual
	OpNotEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
)

var operatorNames = [...]string{
	OpAdd:          "+",
	OpSub:          "-",
	OpMul:          "*",
	OpDiv:          "/",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpLess:         "<",
	OpLessEqual:    "<=",
}

func (op Operator) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "?"
}

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	node()
}

// Expr represents a node that yields a value.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node, holding statements in declaration order.
type Program struct {
	Statements []Node
}

func (p *Program) node() {}

// Number is a numeric literal.
type Number struct {
	Value float64
}

func (n *Number) node()     {}
func (n *Number) exprNode() {}

// Identifier is a variable reference.
type Identifier struct {
	Name string
}

func (i *Identifier) node()     {}
func (i *Identifier) exprNode() {}

// BinaryOp applies Op to the values of Left and Right.
type BinaryOp struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (b *BinaryOp) node()     {}
func (b *BinaryOp) exprNode() {}

// LetDecl: let NAME = VALUE ;
type LetDecl struct {
	Name  string
	Value Expr
}

func (l *LetDecl) node() {}

// PrintCall: print ( ARG )
type PrintCall struct {
	Arg Expr
}

func (p *PrintCall) node() {}

// IfStmt: if ( CONDITION ) THEN [else ELSE]
// Else is nil when the statement has no else branch.
type IfStmt struct {
	Condition Expr
	Then      Node
	Else      Node
}

func (i *IfStmt) node() {}
