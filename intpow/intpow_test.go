package intpow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mulFloat(a, b float64) float64 { return a * b }

func TestIntegerPower_Float(t *testing.T) {
	tests := []struct {
		base float64
		k    uint16
		want float64
	}{
		{2, 0, 1},
		{2, 1, 2},
		{2, 4, 16},
		{2, 10, 1024},
		{3, 5, 243},
	}

	for _, tt := range tests {
		got := IntegerPower(tt.base, mulFloat, 1, tt.k)
		assert.InDelta(t, tt.want, got, 1e-9)
	}
}

type mat2 [4]float64

func mulMat2(a, b mat2) mat2 {
	return mat2{
		a[0]*b[0] + a[2]*b[1], a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3], a[1]*b[2] + a[3]*b[3],
	}
}

func TestIntegerPower_Matrix(t *testing.T) {
	identity := mat2{1, 0, 0, 1}
	m := mat2{2, 0, 0, 2} // column-major diag(2,2)

	got := IntegerPower(m, mulMat2, identity, 4)
	assert.InDelta(t, 16, got[0], 1e-9)
	assert.InDelta(t, 16, got[3], 1e-9)

	zero := IntegerPower(m, mulMat2, identity, 0)
	assert.Equal(t, identity, zero)
}
