/*
AST Module - Abstract Syntax Tree Node Types
==============================================

This module defines Node, the sealed interface implemented by every kind of
AST node the parser can produce. Each variant is its own struct, and
dispatch is by Go type switch - the idiomatic analogue of pattern matching
on the tagged union described in the language specification.

Trees are owned, are never mutated after construction, and are consumed (by
value) by both the evaluator and the pretty-printer; evaluating or printing
a tree never changes it, so the same tree can be evaluated repeatedly.
*/

package ast

import "github.com/DoctorDalek1963/trinity/matrixname"

// Node is implemented by every AST node type. The method is unexported so
// the set of implementations is sealed to this package.
type Node interface {
	astNode()
}

// Multiply is a binary multiplication node.
type Multiply struct {
	Left, Right Node
}

func (Multiply) astNode() {}

// Divide is a binary division node.
type Divide struct {
	Left, Right Node
}

func (Divide) astNode() {}

// Add is a binary addition node. Subtraction is lowered to Add(l,
// Negate(r)) at parse time; there is no separate Subtract node.
type Add struct {
	Left, Right Node
}

func (Add) astNode() {}

// Negate is unary minus, the unique representation of negation - the
// tokenizer never emits negative numeric literals.
type Negate struct {
	X Node
}

func (Negate) astNode() {}

// Exponent is a general exponent node. When Power is syntactically the
// single named matrix "T", the evaluator treats this node as a transpose
// instead of evaluating Power; no other named matrix carries that meaning,
// and the parser never rewrites this node - the special case is resolved
// structurally by the evaluator.
type Exponent struct {
	Base, Power Node
}

func (Exponent) astNode() {}

// Number is a numeric literal.
type Number struct {
	Value float64
}

func (Number) astNode() {}

// NamedMatrix is a reference to a matrix stored under name in the
// environment of whichever dimension consumes the lookup.
type NamedMatrix struct {
	Name matrixname.MatrixName
}

func (NamedMatrix) astNode() {}

// RotationMatrix is a 2D rotation matrix expressed in degrees.
type RotationMatrix struct {
	Degrees float64
}

func (RotationMatrix) astNode() {}

// Anon2 is an inline 2x2 matrix literal. Entries are column-major: for the
// textual form "[a b; c d]", Entries is {a, c, b, d}.
type Anon2 struct {
	Entries [4]float64
}

func (Anon2) astNode() {}

// Anon3 is an inline 3x3 matrix literal, column-major.
type Anon3 struct {
	Entries [9]float64
}

func (Anon3) astNode() {}

// TransposeName is the reserved matrix name that, as the power of an
// Exponent node, denotes transpose rather than a lookup.
const TransposeName = "T"

// IsTransposeForm reports whether power is syntactically the single named
// matrix "T", in which case an Exponent node denotes transpose.
func IsTransposeForm(power Node) bool {
	named, ok := power.(NamedMatrix)
	return ok && named.Name.String() == TransposeName
}
