package pretty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoctorDalek1963/trinity/ast"
	"github.com/DoctorDalek1963/trinity/matrixname"
	"github.com/DoctorDalek1963/trinity/parser"
)

func TestPrint_MultiplyOfAdd(t *testing.T) {
	node := ast.Multiply{
		Left: ast.NamedMatrix{Name: matrixname.MustNew("M")},
		Right: ast.Add{
			Left:  ast.Number{Value: 1},
			Right: ast.Number{Value: 2},
		},
	}
	assert.Equal(t, "M * (1 + 2)", Print(node))
}

func TestPrint_TopLevelBinaryIsNotWrapped(t *testing.T) {
	node := ast.Add{Left: ast.Number{Value: 1}, Right: ast.Number{Value: 2}}
	assert.Equal(t, "1 + 2", Print(node))
}

func TestPrint_AnonMatrix(t *testing.T) {
	node := ast.Anon2{Entries: [4]float64{2, 1.5, -2.2, 10}}
	assert.Equal(t, "[2 -2.2; 1.5 10]", Print(node))
}

func TestPrint_Exponent(t *testing.T) {
	node := ast.Exponent{
		Base:  ast.NamedMatrix{Name: matrixname.MustNew("M")},
		Power: ast.Number{Value: 2},
	}
	assert.Equal(t, "M ^ {2}", Print(node))
}

func TestPrint_RoundTripsThroughParser(t *testing.T) {
	exprs := []string{
		"10",
		"3.2 * 5",
		"3 * [2 -2.2; 1.5 10]",
		"rot(45)",
	}
	for _, expr := range exprs {
		node, err := parser.Parse(expr)
		require.NoError(t, err)

		printed := Print(node)
		reparsed, err := parser.Parse(printed)
		require.NoError(t, err, "round-tripping %q produced %q", expr, printed)
		assert.Equal(t, node, reparsed)
	}
}
