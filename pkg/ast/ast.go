// Package ast defines the boundary between the runtime kernel and the
// lexer/parser/evaluator that consumes it. The kernel never constructs
// or walks these nodes itself; a parser/evaluator outside this
// repository's scope implements Expression/Statement for its own node
// kinds and satisfies InvokeEvalScript so the eval builtin can re-enter
// it. No parser lives here, matching spec.md §1's explicit exclusion of
// the lexer/parser.
package ast

// Node is the common marker every AST node (expression or statement)
// satisfies, so code that only needs to hold or forward a node doesn't
// have to distinguish the two.
type Node interface {
	astNode()
}

// Expression is any AST node that produces a value when evaluated:
// literals, identifiers, calls, binary/unary operations, and so on. The
// node-kind set itself belongs to the parser; this interface is only
// the marker a parser's concrete expression types implement.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any AST node that performs an action without itself
// being a value: assignments, control flow, declarations. As with
// Expression, the concrete statement kinds belong to the parser.
type Statement interface {
	Node
	statementNode()
}
