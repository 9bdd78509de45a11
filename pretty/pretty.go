/*
Pretty-Printer Module - AST Rendering
======================================

This module renders an ast.Node back to the textual notation described by
the parser's grammar. It is the inverse of the parser in the sense that,
for every tree the parser produces, Parse(Print(node)) succeeds and yields
an equivalent tree, though the rendered text need not be byte-identical to
whatever text originally produced node (e.g. redundant parentheses are not
preserved). Hand-built trees do not all round-trip: a RotationMatrix with
negative Degrees prints as "rot(-d)", which the grammar does not accept,
and non-finite numbers print as "NaN", "+Inf" or "-Inf".

Numbers are formatted with strconv.FormatFloat's 'f' verb rather than 'g',
so that printed output never contains scientific notation - the tokenizer
has no rule for a leading-sign exponent marker outside a number literal's
own exponent suffix, so round-tripping a 'g'-formatted huge or tiny value
could produce text the tokenizer rejects.

Parenthesisation follows the grammar's precedence: every binary node other
than the top-level one is wrapped in parens, since the grammar does not
distinguish operator precedence for print purposes - it always reparses
correctly to add parens liberally rather than reconstruct minimal-but-
ambiguous output. An Exponent's power sub-expression is always wrapped in
braces, matching the exponent_rhs production, and is printed as its own
top-level expression inside those braces.
*/

package pretty

import (
	"strconv"
	"strings"

	"github.com/DoctorDalek1963/trinity/ast"
)

// Print renders node as top-level text - no enclosing parentheses.
func Print(node ast.Node) string {
	return print(node, true)
}

func print(node ast.Node, topLevel bool) string {
	switch n := node.(type) {
	case ast.Number:
		return formatNumber(n.Value)

	case ast.NamedMatrix:
		return n.Name.String()

	case ast.RotationMatrix:
		return "rot(" + formatNumber(n.Degrees) + ")"

	case ast.Anon2:
		e := n.Entries
		return "[" + formatNumber(e[0]) + " " + formatNumber(e[2]) + "; " +
			formatNumber(e[1]) + " " + formatNumber(e[3]) + "]"

	case ast.Anon3:
		e := n.Entries
		return "[" + formatNumber(e[0]) + " " + formatNumber(e[3]) + " " + formatNumber(e[6]) + "; " +
			formatNumber(e[1]) + " " + formatNumber(e[4]) + " " + formatNumber(e[7]) + "; " +
			formatNumber(e[2]) + " " + formatNumber(e[5]) + " " + formatNumber(e[8]) + "]"

	case ast.Negate:
		s := "-" + print(n.X, false)
		return wrap(s, topLevel)

	case ast.Add:
		s := print(n.Left, false) + " + " + print(n.Right, false)
		return wrap(s, topLevel)

	case ast.Multiply:
		s := print(n.Left, false) + " * " + print(n.Right, false)
		return wrap(s, topLevel)

	case ast.Divide:
		s := print(n.Left, false) + " / " + print(n.Right, false)
		return wrap(s, topLevel)

	case ast.Exponent:
		s := print(n.Base, false) + " ^ {" + print(n.Power, true) + "}"
		return wrap(s, topLevel)

	default:
		panic("pretty: unhandled ast.Node variant")
	}
}

func wrap(s string, topLevel bool) string {
	if topLevel {
		return s
	}
	return "(" + s + ")"
}

// formatNumber renders a float with no scientific notation, the minimum
// number of digits that round-trips exactly, and a leading minus only when
// the value really is negative.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.TrimSuffix(s, ".")
}
