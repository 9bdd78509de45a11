/*
Evaluator Module - AST Reduction
==================================

This module recursively reduces an ast.Node to a matrixvalue.Value against
a pair of environments, one per dimension. Generalised from the teacher's
evaluator.Eval recursive type-switch (evaluator/evaluator.go), but typed
against the number/matrix value algebra instead of a bare float64, and
taking the environments as explicit parameters instead of the teacher's
package-level Vars map - the language specification requires the
environment to be passed in, not held as global state.

Evaluation is side-effect-free: it never mutates either environment, and
repeated evaluation of the same tree against the same environments always
produces the same result.
*/

package eval

import (
	"errors"
	"math"

	"github.com/DoctorDalek1963/trinity/ast"
	"github.com/DoctorDalek1963/trinity/environment"
	"github.com/DoctorDalek1963/trinity/intpow"
	"github.com/DoctorDalek1963/trinity/matrixvalue"
)

// ErrCannotRaiseMatrixToNonInteger is returned when a matrix is raised to
// a power that is not an integer within relative tolerance.
var ErrCannotRaiseMatrixToNonInteger = errors.New("cannot raise a matrix to a non-integer power")

// ErrCannotRaiseToMatrix is returned when anything is raised to a power
// that evaluates to a matrix.
var ErrCannotRaiseToMatrix = errors.New("cannot raise a value to a matrix power")

// ErrCannotTransposeNumber is returned by the "^T" transpose shortcut when
// the base evaluates to a number instead of a matrix.
var ErrCannotTransposeNumber = errors.New("cannot transpose a number")

// integerTolerance is the relative tolerance used to decide whether a
// computed exponent is "close enough" to an integer.
const integerTolerance = 1e-9

// Evaluate reduces node to a Value. env2 and env3 are consulted for
// NamedMatrix lookups, env2 first, then env3 if the name is absent from
// env2 - the same textual name may be defined in only one of the two
// environments, in which case the lookup resolves unambiguously; if it is
// defined in both, the 2D binding takes priority. Neither environment is
// ever mutated.
func Evaluate(node ast.Node, env2, env3 *environment.Environment) (matrixvalue.Value, error) {
	switch n := node.(type) {
	case ast.Number:
		return matrixvalue.Number(n.Value), nil

	case ast.NamedMatrix:
		m, err := lookup(n.Name.String(), env2, env3)
		if err != nil {
			return matrixvalue.Value{}, err
		}
		return matrixvalue.Matrix(m), nil

	case ast.RotationMatrix:
		return matrixvalue.Matrix(rotationMatrix(n.Degrees)), nil

	case ast.Anon2:
		return matrixvalue.Matrix(matrixvalue.NewTwo(n.Entries)), nil

	case ast.Anon3:
		return matrixvalue.Matrix(matrixvalue.NewThree(n.Entries)), nil

	case ast.Negate:
		v, err := Evaluate(n.X, env2, env3)
		if err != nil {
			return matrixvalue.Value{}, err
		}
		return matrixvalue.NegateValue(v), nil

	case ast.Add:
		l, err := Evaluate(n.Left, env2, env3)
		if err != nil {
			return matrixvalue.Value{}, err
		}
		r, err := Evaluate(n.Right, env2, env3)
		if err != nil {
			return matrixvalue.Value{}, err
		}
		return matrixvalue.AddValues(l, r)

	case ast.Multiply:
		l, err := Evaluate(n.Left, env2, env3)
		if err != nil {
			return matrixvalue.Value{}, err
		}
		r, err := Evaluate(n.Right, env2, env3)
		if err != nil {
			return matrixvalue.Value{}, err
		}
		return matrixvalue.MulValues(l, r)

	case ast.Divide:
		l, err := Evaluate(n.Left, env2, env3)
		if err != nil {
			return matrixvalue.Value{}, err
		}
		r, err := Evaluate(n.Right, env2, env3)
		if err != nil {
			return matrixvalue.Value{}, err
		}
		return matrixvalue.DivValues(l, r)

	case ast.Exponent:
		return evaluateExponent(n, env2, env3)

	default:
		panic("eval: unhandled ast.Node variant")
	}
}

func lookup(name string, env2, env3 *environment.Environment) (matrixvalue.M23, error) {
	m, err := env2.Get(name)
	if err == nil {
		return m, nil
	}
	var notDefined *environment.NameNotDefinedError
	if !errors.As(err, &notDefined) {
		// Invalid name: identical failure from either environment.
		return matrixvalue.M23{}, err
	}
	m, err3 := env3.Get(name)
	if err3 == nil {
		return m, nil
	}
	return matrixvalue.M23{}, err
}

func rotationMatrix(degrees float64) matrixvalue.M23 {
	rad := degrees * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)
	return matrixvalue.NewTwo([4]float64{c, s, -s, c})
}

// evaluateExponent implements the Exponent reduction rule of the
// specification. The transpose shortcut is checked before Power is
// evaluated at all, specifically so that the reserved name "T" never needs
// to exist in either environment.
func evaluateExponent(n ast.Exponent, env2, env3 *environment.Environment) (matrixvalue.Value, error) {
	if ast.IsTransposeForm(n.Power) {
		base, err := Evaluate(n.Base, env2, env3)
		if err != nil {
			return matrixvalue.Value{}, err
		}
		if base.IsNumber() {
			return matrixvalue.Value{}, ErrCannotTransposeNumber
		}
		return matrixvalue.Matrix(base.AsMatrix().Transpose()), nil
	}

	base, err := Evaluate(n.Base, env2, env3)
	if err != nil {
		return matrixvalue.Value{}, err
	}
	power, err := Evaluate(n.Power, env2, env3)
	if err != nil {
		return matrixvalue.Value{}, err
	}

	if power.IsMatrix() {
		return matrixvalue.Value{}, ErrCannotRaiseToMatrix
	}

	if base.IsNumber() {
		return matrixvalue.Number(math.Pow(base.AsNumber(), power.AsNumber())), nil
	}

	return evaluateMatrixPower(base.AsMatrix(), power.AsNumber())
}

func evaluateMatrixPower(m matrixvalue.M23, p float64) (matrixvalue.Value, error) {
	rounded := math.Round(p)
	if !isCloseToInteger(p, rounded) {
		return matrixvalue.Value{}, ErrCannotRaiseMatrixToNonInteger
	}

	k := uint16(math.Abs(rounded))
	result := intpow.IntegerPower(m, func(a, b matrixvalue.M23) matrixvalue.M23 {
		product, err := matrixvalue.Mul(a, b)
		if err != nil {
			// Unreachable: a and b always share m's dimension.
			panic(err)
		}
		return product
	}, matrixvalue.Identity(m.Dim()), k)

	if rounded < 0 {
		inv, err := result.Inverse()
		if err != nil {
			return matrixvalue.Value{}, err
		}
		return matrixvalue.Matrix(inv), nil
	}
	return matrixvalue.Matrix(result), nil
}

func isCloseToInteger(p, rounded float64) bool {
	if rounded == 0 {
		return math.Abs(p) < integerTolerance
	}
	return math.Abs(p-rounded)/math.Abs(rounded) < integerTolerance
}
