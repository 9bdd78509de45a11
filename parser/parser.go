/*
Parser Module - Recursive Descent Parser
=========================================

This module implements a recursive descent parser for matrix expressions.
It constructs an Abstract Syntax Tree (ast.Node) from the token sequence
produced by the tokenizer, following the precedence grammar:

	expression     := addition
	addition       := multiplication ( ('+'|'-') multiplication )*
	multiplication := division ( '*'? division )*       // '*' is optional (juxtaposition)
	division       := exponent ( '/' exponent )*
	exponent       := term ( '^' exponent_rhs )?
	exponent_rhs   := '{' expression '}' | term
	term           := '-' term
	                | named_matrix
	                | rotation
	                | number
	                | anon2 | anon3
	                | '(' expression ')'
	rotation       := 'rot' '(' number ')'
	anon2          := '[' number number ';' number number ']'
	anon3          := '[' number number number ';' number number number ';' number number number ']'

Each precedence level is its own method, following the teacher's
one-function-per-level layout (parser/parser.go in the teacher repo), with
addition and division left-associative, multiplication chains nested to
the right ("ABC" is Multiply(A, Multiply(B, C))), and exponentiation right
associative via its braced or single-term right-hand side.

Subtraction is lowered to Add(l, Negate(r)) at parse time, so there is no
separate Subtract node in the AST. Implicit multiplication (juxtaposition)
is recognised inside the multiplication level by checking whether the next
token can start a division-level term; a leading unary minus is
deliberately excluded from that check so that "2 - 1" is parsed by the
addition level as subtraction, not swallowed as implicit multiplication of
"2" and "-1".
*/

package parser

import (
	"fmt"

	"github.com/DoctorDalek1963/trinity/ast"
	"github.com/DoctorDalek1963/trinity/matrixname"
	"github.com/DoctorDalek1963/trinity/tokenizer"
)

// UnexpectedTokenError reports a grammar failure, carrying the offending
// token window (the remaining tokens from the failure point).
type UnexpectedTokenError struct {
	Tokens []tokenizer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected tokens: %v", e.Tokens)
}

// UnconsumedInputError reports that parsing succeeded but tokens remained
// afterward.
type UnconsumedInputError struct {
	Tokens []tokenizer.Token
}

func (e *UnconsumedInputError) Error() string {
	return fmt.Sprintf("unconsumed tokens after parse: %v", e.Tokens)
}

// Parser maintains parsing state during recursive descent.
type Parser struct {
	Tokens []tokenizer.Token
	pos    int
}

// Parse tokenizes and parses expression in one step, the external entry
// point for the language.
func Parse(expression string) (ast.Node, error) {
	tokens, err := tokenizer.Tokenize(expression)
	if err != nil {
		return nil, err
	}
	p := &Parser{Tokens: tokens}
	node, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.Tokens) {
		return nil, &UnconsumedInputError{Tokens: p.Tokens[p.pos:]}
	}
	return node, nil
}

// ParseExpression parses a full expression at the lowest precedence level.
func (p *Parser) ParseExpression() (ast.Node, error) {
	return p.parseAddition()
}

func (p *Parser) peek() (tokenizer.Token, bool) {
	if p.pos >= len(p.Tokens) {
		return tokenizer.Token{}, false
	}
	return p.Tokens[p.pos], true
}

func (p *Parser) expect(t tokenizer.TokenType) error {
	tok, ok := p.peek()
	if !ok || tok.Type != t {
		return &UnexpectedTokenError{Tokens: p.Tokens[p.pos:]}
	}
	p.pos++
	return nil
}

// parseAddition handles addition and subtraction, left associative:
// a - b + c = ((a - b) + c).
func (p *Parser) parseAddition() (ast.Node, error) {
	node, err := p.parseMultiplication()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || (tok.Type != tokenizer.Plus && tok.Type != tokenizer.Minus) {
			break
		}
		p.pos++
		right, err := p.parseMultiplication()
		if err != nil {
			return nil, err
		}
		if tok.Type == tokenizer.Minus {
			right = ast.Negate{X: right}
		}
		node = ast.Add{Left: node, Right: right}
	}

	return node, nil
}

// startsDivisionLevel reports whether tok can begin a division-level
// production, used to detect implicit multiplication. A leading unary
// minus is excluded so that subtraction is never mistaken for juxtaposed
// negation.
func startsDivisionLevel(t tokenizer.TokenType) bool {
	switch t {
	case tokenizer.NamedMatrix, tokenizer.Number, tokenizer.Rot,
		tokenizer.OpenParen, tokenizer.OpenBracket:
		return true
	default:
		return false
	}
}

// parseMultiplication handles multiplication and division, with '*'
// optional between adjacent terms (implicit multiplication). The
// right-hand side of a chain recurses back into parseMultiplication
// itself rather than just parseDivision, so "ABC" parses as
// Multiply(A, Multiply(B, C)) - matrix multiplication is associative, so
// this produces the same value as a left fold would, but the specific
// nesting is part of the language's canonical AST shape.
func (p *Parser) parseMultiplication() (ast.Node, error) {
	left, err := p.parseDivision()
	if err != nil {
		return nil, err
	}

	tok, ok := p.peek()
	if !ok {
		return left, nil
	}
	if tok.Type == tokenizer.Star {
		p.pos++
	} else if !startsDivisionLevel(tok.Type) {
		return left, nil
	}

	right, err := p.parseMultiplication()
	if err != nil {
		return nil, err
	}
	return ast.Multiply{Left: left, Right: right}, nil
}

func (p *Parser) parseDivision() (ast.Node, error) {
	node, err := p.parseExponent()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.Type != tokenizer.Slash {
			break
		}
		p.pos++
		right, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		node = ast.Divide{Left: node, Right: right}
	}

	return node, nil
}

// parseExponent handles exponentiation, right associative through its
// braced-expression or single-term right-hand side.
func (p *Parser) parseExponent() (ast.Node, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	tok, ok := p.peek()
	if !ok || tok.Type != tokenizer.Caret {
		return node, nil
	}
	p.pos++

	power, err := p.parseExponentRHS()
	if err != nil {
		return nil, err
	}
	return ast.Exponent{Base: node, Power: power}, nil
}

func (p *Parser) parseExponentRHS() (ast.Node, error) {
	tok, ok := p.peek()
	if ok && tok.Type == tokenizer.OpenBrace {
		p.pos++
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenizer.CloseBrace); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return p.parseTerm()
}

// parseTerm handles the highest-precedence productions: unary minus,
// named matrices, rotations, numbers, anonymous matrices, and
// parenthesised sub-expressions.
func (p *Parser) parseTerm() (ast.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &UnexpectedTokenError{Tokens: nil}
	}

	switch tok.Type {
	case tokenizer.Minus:
		p.pos++
		child, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return ast.Negate{X: child}, nil

	case tokenizer.NamedMatrix:
		p.pos++
		name, err := matrixname.New(tok.Name)
		if err != nil {
			return nil, err
		}
		return ast.NamedMatrix{Name: name}, nil

	case tokenizer.Number:
		p.pos++
		return ast.Number{Value: tok.Value}, nil

	case tokenizer.Rot:
		p.pos++
		return p.parseRotation()

	case tokenizer.OpenParen:
		p.pos++
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenizer.CloseParen); err != nil {
			return nil, err
		}
		return inner, nil

	case tokenizer.OpenBracket:
		p.pos++
		return p.parseAnonMatrix()

	default:
		return nil, &UnexpectedTokenError{Tokens: p.Tokens[p.pos:]}
	}
}

func (p *Parser) parseRotation() (ast.Node, error) {
	if err := p.expect(tokenizer.OpenParen); err != nil {
		return nil, err
	}
	tok, ok := p.peek()
	if !ok || tok.Type != tokenizer.Number {
		return nil, &UnexpectedTokenError{Tokens: p.Tokens[p.pos:]}
	}
	p.pos++
	if err := p.expect(tokenizer.CloseParen); err != nil {
		return nil, err
	}
	return ast.RotationMatrix{Degrees: tok.Value}, nil
}

func (p *Parser) parseNumber() (float64, error) {
	tok, ok := p.peek()
	if !ok || tok.Type != tokenizer.Number {
		return 0, &UnexpectedTokenError{Tokens: p.Tokens[p.pos:]}
	}
	p.pos++
	return tok.Value, nil
}

// parseAnonMatrix parses the body of an anonymous matrix literal after the
// opening '[' has already been consumed: either the anon2 or anon3
// production, distinguished by how many numbers appear before the first
// semicolon.
func (p *Parser) parseAnonMatrix() (ast.Node, error) {
	var firstRow []float64
	for p.canStartSignedNumber() {
		v, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		firstRow = append(firstRow, v)
	}

	if err := p.expect(tokenizer.Semicolon); err != nil {
		return nil, err
	}

	switch len(firstRow) {
	case 2:
		a, b := firstRow[0], firstRow[1]
		c, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		d, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenizer.CloseBracket); err != nil {
			return nil, err
		}
		return ast.Anon2{Entries: [4]float64{a, c, b, d}}, nil

	case 3:
		a, b, c := firstRow[0], firstRow[1], firstRow[2]
		d, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		e, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		f, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenizer.Semicolon); err != nil {
			return nil, err
		}
		g, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		h, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		i, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenizer.CloseBracket); err != nil {
			return nil, err
		}
		return ast.Anon3{Entries: [9]float64{a, d, g, b, e, h, c, f, i}}, nil

	default:
		return nil, &UnexpectedTokenError{Tokens: p.Tokens[p.pos:]}
	}
}

// canStartSignedNumber reports whether the token at the cursor could begin a
// matrix-literal cell: a bare number, or a minus sign immediately followed
// by one. Used to decide when the first row of an anon matrix has ended.
func (p *Parser) canStartSignedNumber() bool {
	tok, ok := p.peek()
	if !ok {
		return false
	}
	if tok.Type == tokenizer.Number {
		return true
	}
	if tok.Type != tokenizer.Minus {
		return false
	}
	if p.pos+1 >= len(p.Tokens) {
		return false
	}
	return p.Tokens[p.pos+1].Type == tokenizer.Number
}

// parseSignedNumber parses a single matrix-literal cell: a bare number, or a
// minus sign directly followed by a number, negated. The tokenizer never
// emits negative numeric literals, so this is the only place a matrix
// literal's entries can be negative.
func (p *Parser) parseSignedNumber() (float64, error) {
	tok, ok := p.peek()
	if !ok {
		return 0, &UnexpectedTokenError{Tokens: p.Tokens[p.pos:]}
	}
	if tok.Type == tokenizer.Minus {
		p.pos++
		v, err := p.parseNumber()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.parseNumber()
}
