package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoctorDalek1963/trinity/matrixvalue"
)

func withTempWorkingDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func renderNumber(v matrixvalue.Value) string {
	return "number"
}

func TestAddHistory_CreatesFileAndAppends(t *testing.T) {
	withTempWorkingDir(t)

	require.NoError(t, AddHistory("2 + 2", matrixvalue.Number(4), renderNumber))
	require.NoError(t, AddHistory("3 * 3", matrixvalue.Number(9), renderNumber))

	data, err := os.ReadFile(filepath.Join(".", historyFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2 + 2")
	assert.Contains(t, string(data), "3 * 3")
}

func TestShowHistory_NoFile(t *testing.T) {
	withTempWorkingDir(t)
	assert.NoError(t, ShowHistory())
}
