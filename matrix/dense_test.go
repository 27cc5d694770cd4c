package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsweep/matrix"
)

// TestNewDense_ZeroInitialized verifies that a fresh Dense is all zeros.
func TestNewDense_ZeroInitialized(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())

	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, 0.0, v, "fresh Dense must be zero at [%d,%d]", i, j)
		}
	}
}

// TestNewDense_InvalidDimensions checks rejection of non-positive sizes.
func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -5},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDense(%d,%d)", tc.rows, tc.cols)
	}
}

// TestIdentity verifies the identity construction.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

// TestAtSet_Bounds checks out-of-range access errors for both accessors.
func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.Set(-1, 0, 1.0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.Set(0, 2, 1.0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestClone_Independence ensures a clone does not alias the original.
func TestClone_Independence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7.0))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, -3.0))

	orig, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, orig, "mutating the clone must not touch the original")
}

// TestRow_CopySemantics ensures Row returns a copy, not a view.
func TestRow_CopySemantics(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 5.0))

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 5}, row)

	row[2] = 99.0
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "mutating the returned slice must not touch the matrix")

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}
