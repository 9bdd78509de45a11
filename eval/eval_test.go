package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoctorDalek1963/trinity/environment"
	"github.com/DoctorDalek1963/trinity/matrixvalue"
	"github.com/DoctorDalek1963/trinity/parser"
)

func evalString(t *testing.T, expr string) matrixvalue.Value {
	t.Helper()
	node, err := parser.Parse(expr)
	require.NoError(t, err)
	v, err := Evaluate(node, environment.New(matrixvalue.Dim2), environment.New(matrixvalue.Dim3))
	require.NoError(t, err)
	return v
}

func TestEvaluate_Number(t *testing.T) {
	v := evalString(t, "10")
	assert.True(t, v.IsNumber())
	assert.Equal(t, 10.0, v.AsNumber())
}

func TestEvaluate_MultiplicationOfNumbers(t *testing.T) {
	v := evalString(t, "3.2 * 5")
	assert.Equal(t, 16.0, v.AsNumber())
}

func TestEvaluate_ScalarTimesAnonMatrix(t *testing.T) {
	v := evalString(t, "3 * [2 -2.2; 1.5 10]")
	require.True(t, v.IsMatrix())
	m := v.AsMatrix()
	assert.InDelta(t, 6, m.At(0, 0), 1e-9)
	assert.InDelta(t, -6.6, m.At(0, 1), 1e-9)
	assert.InDelta(t, 4.5, m.At(1, 0), 1e-9)
	assert.InDelta(t, 30, m.At(1, 1), 1e-9)
}

func TestEvaluate_MatrixExponent(t *testing.T) {
	v := evalString(t, "[1 2; 3 2] ^ (1 + 2)")
	require.True(t, v.IsMatrix())
	m := v.AsMatrix()
	assert.InDelta(t, 25, m.At(0, 0), 1e-9)
	assert.InDelta(t, 26, m.At(0, 1), 1e-9)
	assert.InDelta(t, 39, m.At(1, 0), 1e-9)
	assert.InDelta(t, 38, m.At(1, 1), 1e-9)
}

func TestEvaluate_Rotation(t *testing.T) {
	v := evalString(t, "rot(45)")
	require.True(t, v.IsMatrix())
	m := v.AsMatrix()
	half := math.Sqrt(0.5)
	assert.InDelta(t, half, m.At(0, 0), 1e-12)
	assert.InDelta(t, -half, m.At(0, 1), 1e-12)
	assert.InDelta(t, half, m.At(1, 0), 1e-12)
	assert.InDelta(t, half, m.At(1, 1), 1e-12)
}

func TestEvaluate_Transpose(t *testing.T) {
	v := evalString(t, "[1 2; 3 4] ^ T")
	require.True(t, v.IsMatrix())
	m := v.AsMatrix()
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 3.0, m.At(0, 1))
	assert.Equal(t, 2.0, m.At(1, 0))
	assert.Equal(t, 4.0, m.At(1, 1))
}

func TestEvaluate_NonIntegerMatrixPowerErrors(t *testing.T) {
	node, err := parser.Parse("[1 0; 0 1] ^ 1.5")
	require.NoError(t, err)
	_, err = Evaluate(node, environment.New(matrixvalue.Dim2), environment.New(matrixvalue.Dim3))
	assert.ErrorIs(t, err, ErrCannotRaiseMatrixToNonInteger)
}

func TestEvaluate_SingularInverseErrors(t *testing.T) {
	node, err := parser.Parse("[0 0; 0 0] ^ -1")
	require.NoError(t, err)
	_, err = Evaluate(node, environment.New(matrixvalue.Dim2), environment.New(matrixvalue.Dim3))
	assert.ErrorIs(t, err, matrixvalue.ErrCannotInvertSingularMatrix)
}

func TestEvaluate_DivisionByMatrixErrors(t *testing.T) {
	node, err := parser.Parse("2 / [1 2; 3 4]")
	require.NoError(t, err)
	_, err = Evaluate(node, environment.New(matrixvalue.Dim2), environment.New(matrixvalue.Dim3))
	assert.ErrorIs(t, err, matrixvalue.ErrCannotDivideByMatrix)
}

func TestEvaluate_RaiseToMatrixErrors(t *testing.T) {
	node, err := parser.Parse("2 ^ {[1 0; 0 1]}")
	require.NoError(t, err)
	_, err = Evaluate(node, environment.New(matrixvalue.Dim2), environment.New(matrixvalue.Dim3))
	assert.ErrorIs(t, err, ErrCannotRaiseToMatrix)
}

func TestEvaluate_TransposeOfNumberErrors(t *testing.T) {
	node, err := parser.Parse("2 ^ T")
	require.NoError(t, err)
	_, err = Evaluate(node, environment.New(matrixvalue.Dim2), environment.New(matrixvalue.Dim3))
	assert.ErrorIs(t, err, ErrCannotTransposeNumber)
}

func TestEvaluate_NamedMatrixLookupFallsBackToThreeD(t *testing.T) {
	node, err := parser.Parse("M")
	require.NoError(t, err)

	env2 := environment.New(matrixvalue.Dim2)
	env3 := environment.New(matrixvalue.Dim3)
	require.NoError(t, env3.Set("M", matrixvalue.IdentityThree()))

	v, err := Evaluate(node, env2, env3)
	require.NoError(t, err)
	assert.True(t, v.IsMatrix())
	assert.Equal(t, matrixvalue.Dim3, v.AsMatrix().Dim())
}

func TestEvaluate_NamedMatrixNotDefinedInEitherEnvironment(t *testing.T) {
	node, err := parser.Parse("M")
	require.NoError(t, err)

	env2 := environment.New(matrixvalue.Dim2)
	env3 := environment.New(matrixvalue.Dim3)

	_, err = Evaluate(node, env2, env3)
	assert.Error(t, err)
}

func TestEvaluate_IntegerPowerByRepeatedMultiplication(t *testing.T) {
	m := matrixvalue.NewTwo([4]float64{1, 0, 0, 2})
	env2 := environment.New(matrixvalue.Dim2)
	env3 := environment.New(matrixvalue.Dim3)
	require.NoError(t, env2.Set("M", m))

	for k := 0; k <= 15; k++ {
		node, err := parser.Parse("M ^ {" + floatLiteral(k) + "}")
		require.NoError(t, err)
		v, err := Evaluate(node, env2, env3)
		require.NoError(t, err)

		want := matrixvalue.IdentityTwo()
		for i := 0; i < k; i++ {
			want, err = matrixvalue.Mul(want, m)
			require.NoError(t, err)
		}
		assert.InDelta(t, want.At(1, 1), v.AsMatrix().At(1, 1), 1e-6)
	}
}

func TestEvaluate_NegativeIntegerPowerIsInverseOfPositivePower(t *testing.T) {
	m := matrixvalue.NewTwo([4]float64{1, 0, 0, 2})
	env2 := environment.New(matrixvalue.Dim2)
	env3 := environment.New(matrixvalue.Dim3)
	require.NoError(t, env2.Set("M", m))

	for k := 1; k <= 4; k++ {
		pos, err := parser.Parse("M ^ {" + floatLiteral(k) + "}")
		require.NoError(t, err)
		neg, err := parser.Parse("M ^ {-" + floatLiteral(k) + "}")
		require.NoError(t, err)

		posV, err := Evaluate(pos, env2, env3)
		require.NoError(t, err)
		negV, err := Evaluate(neg, env2, env3)
		require.NoError(t, err)

		product, err := matrixvalue.Mul(posV.AsMatrix(), negV.AsMatrix())
		require.NoError(t, err)
		for row := 0; row < 2; row++ {
			for col := 0; col < 2; col++ {
				want := 0.0
				if row == col {
					want = 1.0
				}
				assert.InDelta(t, want, product.At(row, col), 1e-6)
			}
		}
	}
}

func floatLiteral(k int) string {
	if k == 0 {
		return "0"
	}
	digits := ""
	n := k
	if n < 0 {
		n = -n
	}
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	if digits == "" {
		digits = "0"
	}
	return digits
}
